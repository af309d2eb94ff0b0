package authorrepo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stefa-ie/buecheria-library-app/model"
	authorrepo "github.com/stefa-ie/buecheria-library-app/repository/author"
	"github.com/stefa-ie/buecheria-library-app/util/apperr"
	"github.com/stefa-ie/buecheria-library-app/util/database/dbtest"
)

func TestAuthorCRUD(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	r := authorrepo.New()
	q := db.Reader()

	bd := "06-06-1875"
	a := &model.Author{LastName: "Mann", FirstName: "Thomas", BirthDate: &bd}
	require.NoError(t, r.Create(ctx, q, a))
	require.NotZero(t, a.ID)
	require.NoError(t, r.Create(ctx, q, &model.Author{LastName: "Kafka", FirstName: "Franz"}))

	got, err := r.Get(ctx, q, a.ID)
	require.NoError(t, err)
	require.Equal(t, a, got)

	list, err := r.List(ctx, q)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Mann", list[0].LastName)
	require.Nil(t, list[1].BirthDate)

	got.FirstName = "Heinrich"
	got.BirthDate = nil
	require.NoError(t, r.Update(ctx, q, got))
	again, err := r.Get(ctx, q, a.ID)
	require.NoError(t, err)
	require.Equal(t, "Heinrich", again.FirstName)
	require.Nil(t, again.BirthDate)

	require.NoError(t, r.Delete(ctx, q, a.ID))
	_, err = r.Get(ctx, q, a.ID)
	require.Equal(t, apperr.ErrNotFound, apperr.Code(err))
}

func TestAuthorMissing(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	r := authorrepo.New()

	_, err := r.Get(ctx, db.Reader(), 99)
	require.Equal(t, apperr.ErrNotFound, apperr.Code(err))

	err = r.Update(ctx, db.Reader(), &model.Author{ID: 99, LastName: "X", FirstName: "Y"})
	require.Equal(t, apperr.ErrNotFound, apperr.Code(err))

	err = r.Delete(ctx, db.Reader(), 99)
	require.Equal(t, apperr.ErrNotFound, apperr.Code(err))
}

func TestAuthorDeleteDetachesBooks(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	r := authorrepo.New()
	q := db.Reader()

	a := &model.Author{LastName: "Mann", FirstName: "Thomas"}
	require.NoError(t, r.Create(ctx, q, a))
	_, err := q.ExecContext(ctx, `INSERT INTO books (title, author_id, isbn) VALUES ($1, $2, $3)`, "Buddenbrooks", a.ID, "978-3")
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, q, a.ID))

	var authorID *int64
	require.NoError(t, q.QueryRowContext(ctx, `SELECT author_id FROM books WHERE isbn = $1`, "978-3").Scan(&authorID))
	require.Nil(t, authorID)
}
