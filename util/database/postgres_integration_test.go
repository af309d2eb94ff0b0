//go:build integration
// +build integration

package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/stefa-ie/buecheria-library-app/model"
	authorrepo "github.com/stefa-ie/buecheria-library-app/repository/author"
	bookrepo "github.com/stefa-ie/buecheria-library-app/repository/book"
	loanrepo "github.com/stefa-ie/buecheria-library-app/repository/loan"
	memberrepo "github.com/stefa-ie/buecheria-library-app/repository/member"
	booksvc "github.com/stefa-ie/buecheria-library-app/service/book"
	"github.com/stefa-ie/buecheria-library-app/util/apperr"
	"github.com/stefa-ie/buecheria-library-app/util/database"
)

func setupPostgres(t *testing.T) *database.DB {
	t.Helper()
	ctx := context.Background()

	pg, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("library"),
		postgres.WithUsername("library"),
		postgres.WithPassword("library"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	t.Cleanup(func() { _ = pg.Terminate(context.Background()) })

	connStr, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.New(ctx, database.DriverPostgres, connStr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate(ctx))
	return db
}

func TestPostgres_LibraryFlow(t *testing.T) {
	ctx := context.Background()
	db := setupPostgres(t)

	books := booksvc.New(db, bookrepo.New(), authorrepo.New())
	v, err := books.Create(ctx, model.CreateBookReq{
		Title: "Der Zauberberg", Isbn: "978-3-10-048111-5",
		NewAuthor: &model.CreateAuthorReq{LastName: "Mann", FirstName: "Thomas", BirthDate: ptr("1875")},
	})
	require.NoError(t, err)
	require.NotNil(t, v.Author)
	require.Equal(t, "1875", *v.Author.BirthDate)

	_, err = books.Create(ctx, model.CreateBookReq{Title: "Dup", Isbn: "978-3-10-048111-5"})
	require.Equal(t, apperr.ErrConflict, apperr.Code(err))

	missing := int64(999)
	_, err = books.Create(ctx, model.CreateBookReq{Title: "X", Isbn: "x", AuthorID: &missing})
	require.Equal(t, apperr.ErrInvalidReference, apperr.Code(err))

	m := &model.Member{LastName: "Mustermann", FirstName: "Erika", Address: "A", Email: "e@example.com",
		Phone: "1", BirthDate: model.NewDate(1985, 4, 2), JoinDate: model.Today(), MembershipStatus: model.StatusMember}
	require.NoError(t, memberrepo.New().Create(ctx, db.Reader(), m))

	l := &model.Loan{BookID: v.ID, MemberID: m.ID, IssueDate: model.NewDate(2024, 3, 1), DueDate: model.NewDate(2024, 3, 15)}
	require.NoError(t, loanrepo.New().Create(ctx, db.Reader(), l))

	lv, err := loanrepo.New().Get(ctx, db.Reader(), l.ID)
	require.NoError(t, err)
	require.Equal(t, "Erika Mustermann", lv.BorrowerName)
	require.Equal(t, "Mann", lv.Book.Author.LastName)
	require.Equal(t, "2024-03-01", lv.IssueDate.String())

	_, err = books.Delete(ctx, v.ID)
	require.Equal(t, apperr.ErrConflict, apperr.Code(err))
}

func ptr(s string) *string { return &s }
