package memberrepo

import (
	"context"
	"database/sql"
	"errors"

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

type repo struct{}

func New() Repo { return repo{} }

const selectMember = `
SELECT id, last_name, first_name, address, email, phone, birth_date, join_date, membership_status
FROM members`

func scan(row interface{ Scan(...any) error }, m *model.Member) error {
	return row.Scan(&m.ID, &m.LastName, &m.FirstName, &m.Address, &m.Email, &m.Phone,
		&m.BirthDate, &m.JoinDate, &m.MembershipStatus)
}

func (repo) List(ctx context.Context, q database.DBTX) ([]model.Member, error) {
	rows, err := q.QueryContext(ctx, selectMember+`
ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Member{}
	for rows.Next() {
		var m model.Member
		if err := scan(rows, &m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (repo) Get(ctx context.Context, q database.DBTX, id int64) (*model.Member, error) {
	var m model.Member
	err := scan(q.QueryRowContext(ctx, selectMember+`
WHERE id = $1`, id), &m)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.Newf(apperr.ErrNotFound, "member %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (repo) Create(ctx context.Context, q database.DBTX, m *model.Member) error {
	const sq = `
INSERT INTO members (last_name, first_name, address, email, phone, birth_date, join_date, membership_status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`
	err := q.QueryRowContext(ctx, sq,
		m.LastName, m.FirstName, m.Address, m.Email, m.Phone, m.BirthDate, m.JoinDate, string(m.MembershipStatus),
	).Scan(&m.ID)
	return apperr.FromStore(err, apperr.ErrInvalidReference)
}

func (repo) Update(ctx context.Context, q database.DBTX, m *model.Member) error {
	const sq = `
UPDATE members
SET last_name = $1, first_name = $2, address = $3, email = $4, phone = $5,
    birth_date = $6, join_date = $7, membership_status = $8
WHERE id = $9`
	res, err := q.ExecContext(ctx, sq,
		m.LastName, m.FirstName, m.Address, m.Email, m.Phone, m.BirthDate, m.JoinDate, string(m.MembershipStatus), m.ID)
	if err != nil {
		return apperr.FromStore(err, apperr.ErrInvalidReference)
	}
	return affected(res, m.ID)
}

func (repo) Delete(ctx context.Context, q database.DBTX, id int64) error {
	res, err := q.ExecContext(ctx, `DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		if err = apperr.FromStore(err, apperr.ErrConflict); apperr.Is(err, apperr.ErrConflict) {
			return apperr.Wrap(apperr.ErrConflict, "member still has loans", err)
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
		return apperr.Newf(apperr.ErrNotFound, "member %d not found", id)
	}
	return nil
}
