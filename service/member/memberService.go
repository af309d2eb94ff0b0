package membersvc

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/stefa-ie/buecheria-library-app/model"
	"github.com/stefa-ie/buecheria-library-app/util/apperr"
	"github.com/stefa-ie/buecheria-library-app/util/database"
)

type Repo interface {
	List(ctx context.Context, q database.DBTX) ([]model.Member, error)
	Get(ctx context.Context, q database.DBTX, id int64) (*model.Member, error)
	Create(ctx context.Context, q database.DBTX, m *model.Member) error
	Update(ctx context.Context, q database.DBTX, m *model.Member) error
	Delete(ctx context.Context, q database.DBTX, id int64) error
}

type Service interface {
	List(ctx context.Context) ([]model.Member, error)
	Get(ctx context.Context, id int64) (*model.Member, error)
	Create(ctx context.Context, req model.CreateMemberReq) (*model.Member, error)
	Update(ctx context.Context, id int64, req model.UpdateMemberReq) (*model.Member, error)
	// Delete fails with a conflict while loans still reference the member.
	Delete(ctx context.Context, id int64) (*model.Member, error)
}

type service struct {
	db database.Runner
	r  Repo
}

func New(db database.Runner, r Repo) Service { return &service{db: db, r: r} }

func (s *service) List(ctx context.Context) ([]model.Member, error) {
	return s.r.List(ctx, s.db.Reader())
}

func (s *service) Get(ctx context.Context, id int64) (*model.Member, error) {
	return s.r.Get(ctx, s.db.Reader(), id)
}

func (s *service) Create(ctx context.Context, req model.CreateMemberReq) (*model.Member, error) {
	m := &model.Member{
		LastName:         strings.TrimSpace(req.LastName),
		FirstName:        strings.TrimSpace(req.FirstName),
		Address:          strings.TrimSpace(req.Address),
		Email:            strings.TrimSpace(req.Email),
		Phone:            strings.TrimSpace(req.Phone),
		BirthDate:        req.BirthDate,
		JoinDate:         model.Today(),
		MembershipStatus: req.MembershipStatus,
	}
	if req.JoinDate != nil {
		m.JoinDate = *req.JoinDate
	}
	if err := check(m); err != nil {
		return nil, err
	}
	if err := s.db.WithTx(ctx, func(ctx context.Context, tx database.DBTX) error {
		return s.r.Create(ctx, tx, m)
	}); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) Update(ctx context.Context, id int64, req model.UpdateMemberReq) (*model.Member, error) {
	var out *model.Member
	err := s.db.WithTx(ctx, func(ctx context.Context, tx database.DBTX) error {
		m, err := s.r.Get(ctx, tx, id)
		if err != nil {
			return err
		}
		set(&m.LastName, req.LastName)
		set(&m.FirstName, req.FirstName)
		set(&m.Address, req.Address)
		set(&m.Email, req.Email)
		set(&m.Phone, req.Phone)
		if req.BirthDate != nil {
			m.BirthDate = *req.BirthDate
		}
		if req.JoinDate != nil {
			m.JoinDate = *req.JoinDate
		}
		if req.MembershipStatus != nil {
			m.MembershipStatus = *req.MembershipStatus
		}
		if err := check(m); err != nil {
			return err
		}
		if err := s.r.Update(ctx, tx, m); err != nil {
			return err
		}
		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *service) Delete(ctx context.Context, id int64) (*model.Member, error) {
	var snap *model.Member
	err := s.db.WithTx(ctx, func(ctx context.Context, tx database.DBTX) error {
		m, err := s.r.Get(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := s.r.Delete(ctx, tx, id); err != nil {
			return err
		}
		snap = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

func set(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

// validate re-checks merged records, which struct tags on the request
// types never see.
var validate = validator.New(validator.WithRequiredStructEnabled())

func check(m *model.Member) error {
	switch {
	case m.LastName == "", m.FirstName == "", m.Address == "", m.Email == "", m.Phone == "":
		return apperr.New(apperr.ErrValidation, "LastName, FirstName, Address, Email and Phone are required")
	case m.BirthDate.IsZero():
		return apperr.New(apperr.ErrValidation, "BirthDate is required")
	case !m.MembershipStatus.Valid():
		return apperr.Newf(apperr.ErrValidation, "MembershipStatus must be Member or Admin, got %q", m.MembershipStatus)
	}
	if err := validate.Var(m.Email, "required,email"); err != nil {
		return apperr.Newf(apperr.ErrValidation, "invalid email %q", m.Email)
	}
	return nil
}
