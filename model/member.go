// model/member.go
package model

type MembershipStatus string

const (
	StatusMember MembershipStatus = "Member"
	StatusAdmin  MembershipStatus = "Admin"
)

func (s MembershipStatus) Valid() bool { return s == StatusMember || s == StatusAdmin }

type Member struct {
	ID               int64            `json:"MemberID"`
	LastName         string           `json:"LastName"`
	FirstName        string           `json:"FirstName"`
	Address          string           `json:"Address"`
	Email            string           `json:"Email"`
	Phone            string           `json:"Phone"`
	BirthDate        Date             `json:"BirthDate"`
	JoinDate         Date             `json:"JoinDate"`
	MembershipStatus MembershipStatus `json:"MembershipStatus"`
}

// FullName is "First Last".
func (m Member) FullName() string { return m.FirstName + " " + m.LastName }

type CreateMemberReq struct {
	LastName         string           `json:"LastName" validate:"required,max=200"`
	FirstName        string           `json:"FirstName" validate:"required,max=200"`
	Address          string           `json:"Address" validate:"required,max=500"`
	Email            string           `json:"Email" validate:"required,email"`
	Phone            string           `json:"Phone" validate:"required,max=50"`
	BirthDate        Date             `json:"BirthDate"`
	JoinDate         *Date            `json:"JoinDate,omitempty"`
	MembershipStatus MembershipStatus `json:"MembershipStatus" validate:"required,oneof=Member Admin"`
}

type UpdateMemberReq struct {
	LastName         *string           `json:"LastName,omitempty" validate:"omitnil,min=1,max=200"`
	FirstName        *string           `json:"FirstName,omitempty" validate:"omitnil,min=1,max=200"`
	Address          *string           `json:"Address,omitempty" validate:"omitnil,min=1,max=500"`
	Email            *string           `json:"Email,omitempty" validate:"omitnil,email"`
	Phone            *string           `json:"Phone,omitempty" validate:"omitnil,min=1,max=50"`
	BirthDate        *Date             `json:"BirthDate,omitempty"`
	JoinDate         *Date             `json:"JoinDate,omitempty"`
	MembershipStatus *MembershipStatus `json:"MembershipStatus,omitempty" validate:"omitnil,oneof=Member Admin"`
}
