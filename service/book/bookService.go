package booksvc

import (
	"context"
	"strings"

	"github.com/stefa-ie/buecheria-library-app/model"
	authorsvc "github.com/stefa-ie/buecheria-library-app/service/author"
	"github.com/stefa-ie/buecheria-library-app/util/apperr"
	"github.com/stefa-ie/buecheria-library-app/util/database"
)

type Repo interface {
	List(ctx context.Context, q database.DBTX) ([]model.BookView, error)
	Get(ctx context.Context, q database.DBTX, id int64) (*model.BookView, error)
	Create(ctx context.Context, q database.DBTX, b *model.Book) error
	Update(ctx context.Context, q database.DBTX, b *model.Book) error
	Delete(ctx context.Context, q database.DBTX, id int64) error
}

// AuthorRepo is the part of the author store a book needs.
type AuthorRepo interface {
	Get(ctx context.Context, q database.DBTX, id int64) (*model.Author, error)
	Create(ctx context.Context, q database.DBTX, a *model.Author) error
}

type Service interface {
	List(ctx context.Context) ([]model.BookView, error)
	Get(ctx context.Context, id int64) (*model.BookView, error)
	Create(ctx context.Context, req model.CreateBookReq) (*model.BookView, error)
	Update(ctx context.Context, id int64, req model.UpdateBookReq) (*model.BookView, error)
	Delete(ctx context.Context, id int64) (*model.BookView, error)
}

type service struct {
	db database.Runner
	r  Repo
	ar AuthorRepo
}

func New(db database.Runner, r Repo, ar AuthorRepo) Service {
	return &service{db: db, r: r, ar: ar}
}

func (s *service) List(ctx context.Context) ([]model.BookView, error) {
	return s.r.List(ctx, s.db.Reader())
}

func (s *service) Get(ctx context.Context, id int64) (*model.BookView, error) {
	return s.r.Get(ctx, s.db.Reader(), id)
}

func (s *service) Create(ctx context.Context, req model.CreateBookReq) (*model.BookView, error) {
	if req.AuthorID != nil && req.NewAuthor != nil {
		return nil, apperr.New(apperr.ErrValidation, "supply either AuthorID or NewAuthor, not both")
	}
	b := &model.Book{
		Title:           strings.TrimSpace(req.Title),
		AuthorID:        req.AuthorID,
		Isbn:            strings.TrimSpace(req.Isbn),
		PublicationDate: req.PublicationDate,
		Genre:           strings.TrimSpace(req.Genre),
		Available:       true,
		CoverURL:        blankToNil(req.CoverURL),
	}
	if req.Available != nil {
		b.Available = *req.Available
	}
	if b.Title == "" || b.Isbn == "" {
		return nil, apperr.New(apperr.ErrValidation, "Title and Isbn are required")
	}

	var newAuthor *model.Author
	if req.NewAuthor != nil {
		a, err := authorsvc.FromCreate(*req.NewAuthor)
		if err != nil {
			return nil, err
		}
		newAuthor = a
	}

	var out *model.BookView
	err := s.db.WithTx(ctx, func(ctx context.Context, tx database.DBTX) error {
		if newAuthor != nil {
			if err := s.ar.Create(ctx, tx, newAuthor); err != nil {
				return err
			}
			b.AuthorID = &newAuthor.ID
		} else if err := s.checkAuthor(ctx, tx, b.AuthorID); err != nil {
			return err
		}

		if err := s.r.Create(ctx, tx, b); err != nil {
			return err
		}
		v, err := s.r.Get(ctx, tx, b.ID)
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

func (s *service) Update(ctx context.Context, id int64, req model.UpdateBookReq) (*model.BookView, error) {
	var out *model.BookView
	err := s.db.WithTx(ctx, func(ctx context.Context, tx database.DBTX) error {
		cur, err := s.r.Get(ctx, tx, id)
		if err != nil {
			return err
		}
		b := cur.Book
		if req.Title != nil {
			b.Title = strings.TrimSpace(*req.Title)
		}
		if req.AuthorID != nil {
			if err := s.checkAuthor(ctx, tx, req.AuthorID); err != nil {
				return err
			}
			b.AuthorID = req.AuthorID
		}
		if req.Isbn != nil {
			b.Isbn = strings.TrimSpace(*req.Isbn)
		}
		if req.PublicationDate != nil {
			b.PublicationDate = req.PublicationDate
		}
		if req.Genre != nil {
			b.Genre = strings.TrimSpace(*req.Genre)
		}
		if req.Available != nil {
			b.Available = *req.Available
		}
		if req.CoverURL != nil {
			b.CoverURL = blankToNil(req.CoverURL)
		}
		if b.Title == "" || b.Isbn == "" {
			return apperr.New(apperr.ErrValidation, "Title and Isbn cannot be empty")
		}

		if err := s.r.Update(ctx, tx, &b); err != nil {
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

func (s *service) Delete(ctx context.Context, id int64) (*model.BookView, error) {
	var snap *model.BookView
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

func (s *service) checkAuthor(ctx context.Context, q database.DBTX, id *int64) error {
	if id == nil {
		return nil
	}
	if _, err := s.ar.Get(ctx, q, *id); err != nil {
		if apperr.Is(err, apperr.ErrNotFound) {
			return apperr.Newf(apperr.ErrInvalidReference, "author %d does not exist", *id)
		}
		return err
	}
	return nil
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
