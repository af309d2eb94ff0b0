package bookrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stefa-ie/buecheria-library-app/model"
	"github.com/stefa-ie/buecheria-library-app/util/apperr"
	"github.com/stefa-ie/buecheria-library-app/util/database"
)

type Repo interface {
	// List returns books that have an author, with the author embedded.
	List(ctx context.Context, q database.DBTX) ([]model.BookView, error)
	Get(ctx context.Context, q database.DBTX, id int64) (*model.BookView, error)
	Create(ctx context.Context, q database.DBTX, b *model.Book) error
	Update(ctx context.Context, q database.DBTX, b *model.Book) error
	Delete(ctx context.Context, q database.DBTX, id int64) error
}

type repo struct{}

func New() Repo { return repo{} }

const selectView = `
SELECT b.id, b.title, b.author_id, b.isbn, b.publication_date, b.genre, b.available, b.cover_url,
       a.id, a.last_name, a.first_name, a.birth_date
FROM books b`

func (repo) List(ctx context.Context, q database.DBTX) ([]model.BookView, error) {
	rows, err := q.QueryContext(ctx, selectView+`
JOIN authors a ON a.id = b.author_id
ORDER BY b.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.BookView{}
	for rows.Next() {
		var r viewRow
		if err := rows.Scan(r.dest()...); err != nil {
			return nil, err
		}
		out = append(out, r.view())
	}
	return out, rows.Err()
}

func (repo) Get(ctx context.Context, q database.DBTX, id int64) (*model.BookView, error) {
	var r viewRow
	err := q.QueryRowContext(ctx, selectView+`
LEFT JOIN authors a ON a.id = b.author_id
WHERE b.id = $1`, id).Scan(r.dest()...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.Newf(apperr.ErrNotFound, "book %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	v := r.view()
	return &v, nil
}

func (repo) Create(ctx context.Context, q database.DBTX, b *model.Book) error {
	const sq = `
INSERT INTO books (title, author_id, isbn, publication_date, genre, available, cover_url)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`
	err := q.QueryRowContext(ctx, sq,
		b.Title, b.AuthorID, b.Isbn, b.PublicationDate, b.Genre, b.Available, b.CoverURL,
	).Scan(&b.ID)
	return apperr.FromStore(err, apperr.ErrInvalidReference)
}

func (repo) Update(ctx context.Context, q database.DBTX, b *model.Book) error {
	const sq = `
UPDATE books
SET title = $1, author_id = $2, isbn = $3, publication_date = $4,
    genre = $5, available = $6, cover_url = $7
WHERE id = $8`
	res, err := q.ExecContext(ctx, sq,
		b.Title, b.AuthorID, b.Isbn, b.PublicationDate, b.Genre, b.Available, b.CoverURL, b.ID)
	if err != nil {
		return apperr.FromStore(err, apperr.ErrInvalidReference)
	}
	return affected(res, b.ID)
}

func (repo) Delete(ctx context.Context, q database.DBTX, id int64) error {
	res, err := q.ExecContext(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		if err = apperr.FromStore(err, apperr.ErrConflict); apperr.Is(err, apperr.ErrConflict) {
			return apperr.Wrap(apperr.ErrConflict, "book still has loans", err)
		}
		return err
	}
	return affected(res, id)
}

func affected(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.Newf(apperr.ErrNotFound, "book %d not found", id)
	}
	return nil
}

// viewRow is the scan target for a book joined with its optional author.
type viewRow struct {
	Book      model.Book
	AuthorID  *int64
	LastName  *string
	FirstName *string
	BirthDate *string
}

func (r *viewRow) dest() []any {
	return []any{
		&r.Book.ID, &r.Book.Title, &r.Book.AuthorID, &r.Book.Isbn, &r.Book.PublicationDate,
		&r.Book.Genre, &r.Book.Available, &r.Book.CoverURL,
		&r.AuthorID, &r.LastName, &r.FirstName, &r.BirthDate,
	}
}

func (r *viewRow) view() model.BookView {
	var a *model.Author
	if r.AuthorID != nil {
		a = &model.Author{ID: *r.AuthorID, BirthDate: r.BirthDate}
		if r.LastName != nil {
			a.LastName = *r.LastName
		}
		if r.FirstName != nil {
			a.FirstName = *r.FirstName
		}
	}
	return model.NewBookView(r.Book, a)
}
