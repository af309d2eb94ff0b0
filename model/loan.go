// model/loan.go
package model

// Loan is the stored row. A nil ReturnDate means the loan is outstanding.
type Loan struct {
	ID         int64 `json:"LoanID"`
	BookID     int64 `json:"BookID"`
	MemberID   int64 `json:"MemberID"`
	IssueDate  Date  `json:"LoanDate"`
	DueDate    Date  `json:"DueDate"`
	ReturnDate *Date `json:"ReturnDate"`
}

type CreateLoanReq struct {
	MemberID   int64 `json:"MemberID" validate:"required,gt=0"`
	BookID     int64 `json:"BookID" validate:"required,gt=0"`
	IssueDate  Date  `json:"LoanDate"`
	DueDate    Date  `json:"DueDate"`
	ReturnDate *Date `json:"ReturnDate,omitempty"`
}

type UpdateLoanReq struct {
	MemberID   *int64 `json:"MemberID,omitempty" validate:"omitnil,gt=0"`
	BookID     *int64 `json:"BookID,omitempty" validate:"omitnil,gt=0"`
	IssueDate  *Date  `json:"LoanDate,omitempty"`
	DueDate    *Date  `json:"DueDate,omitempty"`
	ReturnDate *Date  `json:"ReturnDate,omitempty"`
}
