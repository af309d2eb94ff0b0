package loansvc

import (
	"context"

	"github.com/stefa-ie/buecheria-library-app/model"
	"github.com/stefa-ie/buecheria-library-app/util/apperr"
	"github.com/stefa-ie/buecheria-library-app/util/database"
)

type Repo interface {
	List(ctx context.Context, q database.DBTX) ([]model.LoanView, error)
	Get(ctx context.Context, q database.DBTX, id int64) (*model.LoanView, error)
	Create(ctx context.Context, q database.DBTX, l *model.Loan) error
	Update(ctx context.Context, q database.DBTX, l *model.Loan) error
	Delete(ctx context.Context, q database.DBTX, id int64) error
}

type BookRepo interface {
	Get(ctx context.Context, q database.DBTX, id int64) (*model.BookView, error)
}

type MemberRepo interface {
	Get(ctx context.Context, q database.DBTX, id int64) (*model.Member, error)
}

type Service interface {
	List(ctx context.Context) ([]model.LoanView, error)
	Get(ctx context.Context, id int64) (*model.LoanView, error)
	Create(ctx context.Context, req model.CreateLoanReq) (*model.LoanView, error)
	Update(ctx context.Context, id int64, req model.UpdateLoanReq) (*model.LoanView, error)
	Delete(ctx context.Context, id int64) (*model.LoanView, error)
}

type service struct {
	db database.Runner
	r  Repo
	br BookRepo
	mr MemberRepo
}

func New(db database.Runner, r Repo, br BookRepo, mr MemberRepo) Service {
	return &service{db: db, r: r, br: br, mr: mr}
}

func (s *service) List(ctx context.Context) ([]model.LoanView, error) {
	return s.r.List(ctx, s.db.Reader())
}

func (s *service) Get(ctx context.Context, id int64) (*model.LoanView, error) {
	return s.r.Get(ctx, s.db.Reader(), id)
}

func (s *service) Create(ctx context.Context, req model.CreateLoanReq) (*model.LoanView, error) {
	l := &model.Loan{
		BookID:     req.BookID,
		MemberID:   req.MemberID,
		IssueDate:  req.IssueDate,
		DueDate:    req.DueDate,
		ReturnDate: req.ReturnDate,
	}
	if l.BookID <= 0 || l.MemberID <= 0 {
		return nil, apperr.New(apperr.ErrValidation, "BookID and MemberID are required")
	}
	if err := checkDates(l); err != nil {
		return nil, err
	}

	var out *model.LoanView
	err := s.db.WithTx(ctx, func(ctx context.Context, tx database.DBTX) error {
		if err := s.checkRefs(ctx, tx, l); err != nil {
			return err
		}
		if err := s.r.Create(ctx, tx, l); err != nil {
			return err
		}
		v, err := s.r.Get(ctx, tx, l.ID)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *service) Update(ctx context.Context, id int64, req model.UpdateLoanReq) (*model.LoanView, error) {
	var out *model.LoanView
	err := s.db.WithTx(ctx, func(ctx context.Context, tx database.DBTX) error {
		cur, err := s.r.Get(ctx, tx, id)
		if err != nil {
			return err
		}
		l := cur.Loan
		if req.BookID != nil {
			l.BookID = *req.BookID
		}
		if req.MemberID != nil {
			l.MemberID = *req.MemberID
		}
		if req.IssueDate != nil {
			l.IssueDate = *req.IssueDate
		}
		if req.DueDate != nil {
			l.DueDate = *req.DueDate
		}
		if req.ReturnDate != nil {
			l.ReturnDate = req.ReturnDate
		}
		if err := checkDates(&l); err != nil {
			return err
		}
		if req.BookID != nil || req.MemberID != nil {
			if err := s.checkRefs(ctx, tx, &l); err != nil {
				return err
			}
		}
		if err := s.r.Update(ctx, tx, &l); err != nil {
			return err
		}
		v, err := s.r.Get(ctx, tx, id)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *service) Delete(ctx context.Context, id int64) (*model.LoanView, error) {
	var snap *model.LoanView
	err := s.db.WithTx(ctx, func(ctx context.Context, tx database.DBTX) error {
		v, err := s.r.Get(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := s.r.Delete(ctx, tx, id); err != nil {
			return err
		}
		snap = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *service) checkRefs(ctx context.Context, q database.DBTX, l *model.Loan) error {
	if _, err := s.br.Get(ctx, q, l.BookID); err != nil {
		if apperr.Is(err, apperr.ErrNotFound) {
			return apperr.Newf(apperr.ErrInvalidReference, "book %d does not exist", l.BookID)
		}
		return err
	}
	if _, err := s.mr.Get(ctx, q, l.MemberID); err != nil {
		if apperr.Is(err, apperr.ErrNotFound) {
			return apperr.Newf(apperr.ErrInvalidReference, "member %d does not exist", l.MemberID)
		}
		return err
	}
	return nil
}

func checkDates(l *model.Loan) error {
	switch {
	case l.IssueDate.IsZero():
		return apperr.New(apperr.ErrValidation, "LoanDate is required")
	case l.DueDate.IsZero():
		return apperr.New(apperr.ErrValidation, "DueDate is required")
	case l.DueDate.Before(l.IssueDate):
		return apperr.New(apperr.ErrValidation, "DueDate cannot be before LoanDate")
	case l.ReturnDate != nil && l.ReturnDate.Before(l.IssueDate):
		return apperr.New(apperr.ErrValidation, "ReturnDate cannot be before LoanDate")
	}
	return nil
}
