package model

// BookView is a book with its author embedded when it has one.
type BookView struct {
	Book
	Author *Author `json:"author,omitempty"`
}

// LoanView is the loan read-model: the stored loan plus its book (with
// author), its member, and the derived borrower name and returned flag.
type LoanView struct {
	Loan
	Book         *BookView `json:"book,omitempty"`
	Member       *Member   `json:"member,omitempty"`
	BorrowerName string    `json:"BorrowerName"`
	Returned     bool      `json:"Returned"`
}

func NewBookView(b Book, a *Author) BookView {
	v := BookView{Book: b}
	if b.AuthorID != nil && a != nil && a.ID == *b.AuthorID {
		v.Author = a
	}
	return v
}

func NewLoanView(l Loan, b *BookView, m *Member) LoanView {
	v := LoanView{
		Loan:     l,
		Book:     b,
		Member:   m,
		Returned: l.ReturnDate != nil,
	}
	if m != nil {
		v.BorrowerName = m.FullName()
	}
	return v
}
