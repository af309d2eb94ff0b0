package authorrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stefa-ie/buecheria-library-app/model"
	"github.com/stefa-ie/buecheria-library-app/util/apperr"
	"github.com/stefa-ie/buecheria-library-app/util/database"
)

type Repo interface {
	List(ctx context.Context, q database.DBTX) ([]model.Author, error)
	Get(ctx context.Context, q database.DBTX, id int64) (*model.Author, error)
	Create(ctx context.Context, q database.DBTX, a *model.Author) error
	Update(ctx context.Context, q database.DBTX, a *model.Author) error
	Delete(ctx context.Context, q database.DBTX, id int64) error
}

type repo struct{}

func New() Repo { return repo{} }

func (repo) List(ctx context.Context, q database.DBTX) ([]model.Author, error) {
	const sq = `
SELECT id, last_name, first_name, birth_date
FROM authors
ORDER BY id`
	rows, err := q.QueryContext(ctx, sq)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Author{}
	for rows.Next() {
		var a model.Author
		if err := rows.Scan(&a.ID, &a.LastName, &a.FirstName, &a.BirthDate); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (repo) Get(ctx context.Context, q database.DBTX, id int64) (*model.Author, error) {
	const sq = `
SELECT id, last_name, first_name, birth_date
FROM authors
WHERE id = $1`
	var a model.Author
	err := q.QueryRowContext(ctx, sq, id).Scan(&a.ID, &a.LastName, &a.FirstName, &a.BirthDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.Newf(apperr.ErrNotFound, "author %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (repo) Create(ctx context.Context, q database.DBTX, a *model.Author) error {
	const sq = `
INSERT INTO authors (last_name, first_name, birth_date)
VALUES ($1, $2, $3)
RETURNING id`
	err := q.QueryRowContext(ctx, sq, a.LastName, a.FirstName, a.BirthDate).Scan(&a.ID)
	return apperr.FromStore(err, apperr.ErrInvalidReference)
}

func (repo) Update(ctx context.Context, q database.DBTX, a *model.Author) error {
	const sq = `
UPDATE authors
SET last_name = $1, first_name = $2, birth_date = $3
WHERE id = $4`
	res, err := q.ExecContext(ctx, sq, a.LastName, a.FirstName, a.BirthDate, a.ID)
	if err != nil {
		return apperr.FromStore(err, apperr.ErrInvalidReference)
	}
	return affected(res)
}

func (repo) Delete(ctx context.Context, q database.DBTX, id int64) error {
	res, err := q.ExecContext(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return apperr.FromStore(err, apperr.ErrConflict)
	}
	return affected(res)
}

func affected(res interface{ RowsAffected() (int64, error) }) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.New(apperr.ErrNotFound, "author not found")
	}
	return nil
}
