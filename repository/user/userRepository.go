package userrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/stefa-ie/buecheria-library-app/model"
	"github.com/stefa-ie/buecheria-library-app/util/apperr"
	"github.com/stefa-ie/buecheria-library-app/util/database"
)

type Repo interface {
	Create(ctx context.Context, q database.DBTX, u *model.User) error
	ByUsername(ctx context.Context, q database.DBTX, username string) (*model.User, error)
}

type repo struct{}

func New() Repo { return repo{} }

func (repo) Create(ctx context.Context, q database.DBTX, u *model.User) error {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC().Truncate(time.Second)
	}
	err := q.QueryRowContext(ctx, `
		INSERT INTO users (username, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		u.Username, u.PasswordHash, string(u.Role), u.CreatedAt,
	).Scan(&u.ID)
	return apperr.FromStore(err, apperr.ErrInvalidReference)
}

func (repo) ByUsername(ctx context.Context, q database.DBTX, username string) (*model.User, error) {
	u := &model.User{}
	err := q.QueryRowContext(ctx, `
        SELECT id, username, password_hash, role, created_at
        FROM users
        WHERE username = $1`,
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.New(apperr.ErrNotFound, "user not found")
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
