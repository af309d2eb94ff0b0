package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestNewBookView(t *testing.T) {
	a := &Author{ID: 7, LastName: "Mann", FirstName: "Thomas", BirthDate: ptr("06-06-1875")}

	v := NewBookView(Book{ID: 1, Title: "Buddenbrooks", AuthorID: ptr(int64(7))}, a)
	require.Same(t, a, v.Author)

	v = NewBookView(Book{ID: 2, Title: "Anonymous"}, a)
	require.Nil(t, v.Author, "no author id, nothing embedded")

	v = NewBookView(Book{ID: 3, Title: "Mismatch", AuthorID: ptr(int64(8))}, a)
	require.Nil(t, v.Author)
}

func TestNewLoanView(t *testing.T) {
	issue := NewDate(2024, time.March, 1)
	due := NewDate(2024, time.March, 15)
	m := &Member{ID: 4, FirstName: "Erika", LastName: "Mustermann"}
	b := &BookView{Book: Book{ID: 1, Title: "Buddenbrooks"}}

	got := NewLoanView(Loan{ID: 9, BookID: 1, MemberID: 4, IssueDate: issue, DueDate: due}, b, m)
	want := LoanView{
		Loan:         Loan{ID: 9, BookID: 1, MemberID: 4, IssueDate: issue, DueDate: due},
		Book:         b,
		Member:       m,
		BorrowerName: "Erika Mustermann",
		Returned:     false,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("loan view mismatch (-want +got):\n%s", diff)
	}

	ret := NewDate(2024, time.March, 10)
	got = NewLoanView(Loan{ID: 9, IssueDate: issue, DueDate: due, ReturnDate: &ret}, nil, nil)
	require.True(t, got.Returned)
	require.Empty(t, got.BorrowerName)
}

func TestLoanViewJSON(t *testing.T) {
	issue := NewDate(2024, time.March, 1)
	v := NewLoanView(
		Loan{ID: 9, BookID: 1, MemberID: 4, IssueDate: issue, DueDate: issue},
		&BookView{Book: Book{ID: 1, Title: "Buddenbrooks", AuthorID: ptr(int64(7))}, Author: &Author{ID: 7, LastName: "Mann"}},
		&Member{ID: 4, FirstName: "Erika", LastName: "Mustermann"},
	)
	b, err := json.Marshal(v)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	require.Equal(t, float64(9), m["LoanID"])
	require.Equal(t, "2024-03-01", m["LoanDate"])
	require.Equal(t, "Erika Mustermann", m["BorrowerName"])
	require.Equal(t, false, m["Returned"])
	require.Nil(t, m["ReturnDate"])

	book := m["book"].(map[string]any)
	require.Equal(t, "Buddenbrooks", book["Title"])
	require.Equal(t, "Mann", book["author"].(map[string]any)["LastName"])
	require.Equal(t, "Erika", m["member"].(map[string]any)["FirstName"])
}
