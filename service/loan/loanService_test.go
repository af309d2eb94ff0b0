package loansvc_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stefa-ie/buecheria-library-app/model"
	loansvc "github.com/stefa-ie/buecheria-library-app/service/loan"
	"github.com/stefa-ie/buecheria-library-app/util/apperr"
	"github.com/stefa-ie/buecheria-library-app/util/database"
	"github.com/stefa-ie/buecheria-library-app/util/database/dbtest"
)

type loanStore struct {
	rows map[int64]model.Loan
	next int64
}

func (s *loanStore) List(ctx context.Context, _ database.DBTX) ([]model.LoanView, error) {
	out := []model.LoanView{}
	for _, l := range s.rows {
		out = append(out, model.NewLoanView(l, nil, nil))
	}
	return out, nil
}
func (s *loanStore) Get(ctx context.Context, _ database.DBTX, id int64) (*model.LoanView, error) {
	l, ok := s.rows[id]
	if !ok {
		return nil, apperr.Newf(apperr.ErrNotFound, "loan %d not found", id)
	}
	v := model.NewLoanView(l, nil, &model.Member{ID: l.MemberID, FirstName: "Erika", LastName: "Mustermann"})
	return &v, nil
}
func (s *loanStore) Create(ctx context.Context, _ database.DBTX, l *model.Loan) error {
	s.next++
	l.ID = s.next
	s.rows[l.ID] = *l
	return nil
}
func (s *loanStore) Update(ctx context.Context, _ database.DBTX, l *model.Loan) error {
	s.rows[l.ID] = *l
	return nil
}
func (s *loanStore) Delete(ctx context.Context, _ database.DBTX, id int64) error {
	delete(s.rows, id)
	return nil
}

type bookMock struct{ known map[int64]bool }

func (m bookMock) Get(ctx context.Context, _ database.DBTX, id int64) (*model.BookView, error) {
	if !m.known[id] {
		return nil, apperr.Newf(apperr.ErrNotFound, "book %d not found", id)
	}
	return &model.BookView{Book: model.Book{ID: id}}, nil
}

type memberMock struct{ known map[int64]bool }

func (m memberMock) Get(ctx context.Context, _ database.DBTX, id int64) (*model.Member, error) {
	if !m.known[id] {
		return nil, apperr.Newf(apperr.ErrNotFound, "member %d not found", id)
	}
	return &model.Member{ID: id}, nil
}

func newSvc() (loansvc.Service, *loanStore) {
	st := &loanStore{rows: map[int64]model.Loan{}}
	return loansvc.New(&dbtest.Runner{}, st,
		bookMock{known: map[int64]bool{1: true, 2: true}},
		memberMock{known: map[int64]bool{10: true}}), st
}

func d(day int) model.Date { return model.NewDate(2024, time.March, day) }

func TestCreate(t *testing.T) {
	s, st := newSvc()
	v, err := s.Create(context.Background(), model.CreateLoanReq{BookID: 1, MemberID: 10, IssueDate: d(1), DueDate: d(15)})
	require.NoError(t, err)
	require.Equal(t, "Erika Mustermann", v.BorrowerName)
	require.False(t, v.Returned)
	require.Len(t, st.rows, 1)
}

func TestCreate_InvalidReferences(t *testing.T) {
	s, st := newSvc()
	_, err := s.Create(context.Background(), model.CreateLoanReq{BookID: 3, MemberID: 10, IssueDate: d(1), DueDate: d(2)})
	require.Equal(t, apperr.ErrInvalidReference, apperr.Code(err))
	_, err = s.Create(context.Background(), model.CreateLoanReq{BookID: 1, MemberID: 11, IssueDate: d(1), DueDate: d(2)})
	require.Equal(t, apperr.ErrInvalidReference, apperr.Code(err))
	require.Empty(t, st.rows)
}

func TestCreate_DateRules(t *testing.T) {
	s, _ := newSvc()
	ret := d(1)
	cases := map[string]model.CreateLoanReq{
		"missing issue":   {BookID: 1, MemberID: 10, DueDate: d(2)},
		"missing due":     {BookID: 1, MemberID: 10, IssueDate: d(2)},
		"due before":      {BookID: 1, MemberID: 10, IssueDate: d(5), DueDate: d(4)},
		"return before":   {BookID: 1, MemberID: 10, IssueDate: d(5), DueDate: d(9), ReturnDate: &ret},
		"missing book id": {MemberID: 10, IssueDate: d(1), DueDate: d(2)},
	}
	for name, req := range cases {
		_, err := s.Create(context.Background(), req)
		require.Equal(t, apperr.ErrValidation, apperr.Code(err), name)
	}

	same := d(5)
	_, err := s.Create(context.Background(), model.CreateLoanReq{BookID: 1, MemberID: 10, IssueDate: d(5), DueDate: d(5), ReturnDate: &same})
	require.NoError(t, err, "same-day return is allowed")
}

func TestUpdate_ReturnAndPartial(t *testing.T) {
	s, st := newSvc()
	v, err := s.Create(context.Background(), model.CreateLoanReq{BookID: 1, MemberID: 10, IssueDate: d(1), DueDate: d(15)})
	require.NoError(t, err)

	same, err := s.Update(context.Background(), v.ID, model.UpdateLoanReq{})
	require.NoError(t, err)
	require.Equal(t, v.Loan, same.Loan)

	ret := d(10)
	got, err := s.Update(context.Background(), v.ID, model.UpdateLoanReq{ReturnDate: &ret})
	require.NoError(t, err)
	require.True(t, got.Returned)
	require.Equal(t, d(15), got.DueDate)

	book := int64(99)
	_, err = s.Update(context.Background(), v.ID, model.UpdateLoanReq{BookID: &book})
	require.Equal(t, apperr.ErrInvalidReference, apperr.Code(err))
	require.Equal(t, int64(1), st.rows[v.ID].BookID)

	early := d(1)
	late := d(20)
	_, err = s.Update(context.Background(), v.ID, model.UpdateLoanReq{IssueDate: &late, DueDate: &early})
	require.Equal(t, apperr.ErrValidation, apperr.Code(err))
}

func TestDelete(t *testing.T) {
	s, _ := newSvc()
	v, err := s.Create(context.Background(), model.CreateLoanReq{BookID: 2, MemberID: 10, IssueDate: d(1), DueDate: d(2)})
	require.NoError(t, err)

	snap, err := s.Delete(context.Background(), v.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), snap.BookID)

	_, err = s.Get(context.Background(), v.ID)
	require.Equal(t, apperr.ErrNotFound, apperr.Code(err))
}
