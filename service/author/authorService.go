package authorsvc

import (
	"context"
	"strings"

	"github.com/stefa-ie/buecheria-library-app/model"
	"github.com/stefa-ie/buecheria-library-app/util/apperr"
	"github.com/stefa-ie/buecheria-library-app/util/database"
	"github.com/stefa-ie/buecheria-library-app/util/datex"
)

type Repo interface {
	List(ctx context.Context, q database.DBTX) ([]model.Author, error)
	Get(ctx context.Context, q database.DBTX, id int64) (*model.Author, error)
	Create(ctx context.Context, q database.DBTX, a *model.Author) error
	Update(ctx context.Context, q database.DBTX, a *model.Author) error
	Delete(ctx context.Context, q database.DBTX, id int64) error
}

type Service interface {
	List(ctx context.Context) ([]model.Author, error)
	Get(ctx context.Context, id int64) (*model.Author, error)
	Create(ctx context.Context, req model.CreateAuthorReq) (*model.Author, error)
	// Update applies only the fields present in req.
	Update(ctx context.Context, id int64, req model.UpdateAuthorReq) (*model.Author, error)
	// Delete removes the author and returns the record as it was.
	// Books by the author are kept and lose their author reference.
	Delete(ctx context.Context, id int64) (*model.Author, error)
}

type service struct {
	db database.Runner
	r  Repo
}

func New(db database.Runner, r Repo) Service { return &service{db: db, r: r} }

func (s *service) List(ctx context.Context) ([]model.Author, error) {
	return s.r.List(ctx, s.db.Reader())
}

func (s *service) Get(ctx context.Context, id int64) (*model.Author, error) {
	return s.r.Get(ctx, s.db.Reader(), id)
}

func (s *service) Create(ctx context.Context, req model.CreateAuthorReq) (*model.Author, error) {
	a, err := FromCreate(req)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithTx(ctx, func(ctx context.Context, tx database.DBTX) error {
		return s.r.Create(ctx, tx, a)
	}); err != nil {
		return nil, err
	}
	return a, nil
}

// FromCreate validates req and builds the author it describes. The birth
// date, when given, is normalized.
func FromCreate(req model.CreateAuthorReq) (*model.Author, error) {
	a := &model.Author{
		LastName:  strings.TrimSpace(req.LastName),
		FirstName: strings.TrimSpace(req.FirstName),
	}
	if a.LastName == "" || a.FirstName == "" {
		return nil, apperr.New(apperr.ErrValidation, "LastName and FirstName are required")
	}
	bd, err := normalize(req.BirthDate)
	if err != nil {
		return nil, err
	}
	a.BirthDate = bd
	return a, nil
}

func (s *service) Update(ctx context.Context, id int64, req model.UpdateAuthorReq) (*model.Author, error) {
	var out *model.Author
	err := s.db.WithTx(ctx, func(ctx context.Context, tx database.DBTX) error {
		a, err := s.r.Get(ctx, tx, id)
		if err != nil {
			return err
		}
		if req.LastName != nil {
			a.LastName = strings.TrimSpace(*req.LastName)
		}
		if req.FirstName != nil {
			a.FirstName = strings.TrimSpace(*req.FirstName)
		}
		if a.LastName == "" || a.FirstName == "" {
			return apperr.New(apperr.ErrValidation, "LastName and FirstName cannot be empty")
		}
		if req.BirthDate != nil {
			if a.BirthDate, err = normalize(req.BirthDate); err != nil {
				return err
			}
		}
		if err := s.r.Update(ctx, tx, a); err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *service) Delete(ctx context.Context, id int64) (*model.Author, error) {
	var snap *model.Author
	err := s.db.WithTx(ctx, func(ctx context.Context, tx database.DBTX) error {
		a, err := s.r.Get(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := s.r.Delete(ctx, tx, id); err != nil {
			return err
		}
		snap = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// normalize maps an absent or blank birth date to nil.
func normalize(s *string) (*string, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	v, err := datex.NormalizeBirthDate(*s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
