package loanrepo

import (
	"context"
	"database/sql"
	"errors"

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

type repo struct{}

func New() Repo { return repo{} }

// Book and member are LEFT joined so a loan row is never dropped by the
// read-model, even if its references were removed outside the application.
const selectView = `
SELECT l.id, l.book_id, l.member_id, l.issue_date, l.due_date, l.return_date,
       b.id, b.title, b.author_id, b.isbn, b.publication_date, b.genre, b.available, b.cover_url,
       a.id, a.last_name, a.first_name, a.birth_date,
       m.id, m.last_name, m.first_name, m.address, m.email, m.phone, m.birth_date, m.join_date, m.membership_status
FROM loans l
LEFT JOIN books b ON b.id = l.book_id
LEFT JOIN authors a ON a.id = b.author_id
LEFT JOIN members m ON m.id = l.member_id`

type viewRow struct {
	loan model.Loan

	bookID          *int64
	title           *string
	bookAuthorID    *int64
	isbn            *string
	publicationDate *model.Date
	genre           *string
	available       *bool
	coverURL        *string

	authorID        *int64
	authorLast      *string
	authorFirst     *string
	authorBirthDate *string

	memberID  *int64
	lastName  *string
	firstName *string
	address   *string
	email     *string
	phone     *string
	birthDate *model.Date
	joinDate  *model.Date
	status    *string
}

func (r *viewRow) dest() []any {
	return []any{
		&r.loan.ID, &r.loan.BookID, &r.loan.MemberID, &r.loan.IssueDate, &r.loan.DueDate, &r.loan.ReturnDate,
		&r.bookID, &r.title, &r.bookAuthorID, &r.isbn, &r.publicationDate, &r.genre, &r.available, &r.coverURL,
		&r.authorID, &r.authorLast, &r.authorFirst, &r.authorBirthDate,
		&r.memberID, &r.lastName, &r.firstName, &r.address, &r.email, &r.phone,
		&r.birthDate, &r.joinDate, &r.status,
	}
}

func (r *viewRow) view() model.LoanView {
	var bv *model.BookView
	if r.bookID != nil {
		b := model.Book{
			ID:              *r.bookID,
			Title:           deref(r.title),
			AuthorID:        r.bookAuthorID,
			Isbn:            deref(r.isbn),
			PublicationDate: r.publicationDate,
			Genre:           deref(r.genre),
			Available:       r.available != nil && *r.available,
			CoverURL:        r.coverURL,
		}
		var a *model.Author
		if r.authorID != nil {
			a = &model.Author{
				ID:        *r.authorID,
				LastName:  deref(r.authorLast),
				FirstName: deref(r.authorFirst),
				BirthDate: r.authorBirthDate,
			}
		}
		v := model.NewBookView(b, a)
		bv = &v
	}

	var m *model.Member
	if r.memberID != nil {
		m = &model.Member{
			ID:               *r.memberID,
			LastName:         deref(r.lastName),
			FirstName:        deref(r.firstName),
			Address:          deref(r.address),
			Email:            deref(r.email),
			Phone:            deref(r.phone),
			MembershipStatus: model.MembershipStatus(deref(r.status)),
		}
		if r.birthDate != nil {
			m.BirthDate = *r.birthDate
		}
		if r.joinDate != nil {
			m.JoinDate = *r.joinDate
		}
	}
	return model.NewLoanView(r.loan, bv, m)
}

func (repo) List(ctx context.Context, q database.DBTX) ([]model.LoanView, error) {
	rows, err := q.QueryContext(ctx, selectView+`
ORDER BY l.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.LoanView{}
	for rows.Next() {
		var r viewRow
		if err := rows.Scan(r.dest()...); err != nil {
			return nil, err
		}
		out = append(out, r.view())
	}
	return out, rows.Err()
}

func (repo) Get(ctx context.Context, q database.DBTX, id int64) (*model.LoanView, error) {
	var r viewRow
	err := q.QueryRowContext(ctx, selectView+`
WHERE l.id = $1`, id).Scan(r.dest()...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.Newf(apperr.ErrNotFound, "loan %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	v := r.view()
	return &v, nil
}

func (repo) Create(ctx context.Context, q database.DBTX, l *model.Loan) error {
	const sq = `
INSERT INTO loans (book_id, member_id, issue_date, due_date, return_date)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`
	err := q.QueryRowContext(ctx, sq, l.BookID, l.MemberID, l.IssueDate, l.DueDate, l.ReturnDate).Scan(&l.ID)
	return apperr.FromStore(err, apperr.ErrInvalidReference)
}

func (repo) Update(ctx context.Context, q database.DBTX, l *model.Loan) error {
	const sq = `
UPDATE loans
SET book_id = $1, member_id = $2, issue_date = $3, due_date = $4, return_date = $5
WHERE id = $6`
	res, err := q.ExecContext(ctx, sq, l.BookID, l.MemberID, l.IssueDate, l.DueDate, l.ReturnDate, l.ID)
	if err != nil {
		return apperr.FromStore(err, apperr.ErrInvalidReference)
	}
	return affected(res, l.ID)
}

func (repo) Delete(ctx context.Context, q database.DBTX, id int64) error {
	res, err := q.ExecContext(ctx, `DELETE FROM loans WHERE id = $1`, id)
	if err != nil {
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
		return apperr.Newf(apperr.ErrNotFound, "loan %d not found", id)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
