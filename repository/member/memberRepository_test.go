package memberrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stefa-ie/buecheria-library-app/model"
	memberrepo "github.com/stefa-ie/buecheria-library-app/repository/member"
	"github.com/stefa-ie/buecheria-library-app/util/apperr"
	"github.com/stefa-ie/buecheria-library-app/util/database/dbtest"
)

func newMember(email string) *model.Member {
	return &model.Member{
		LastName:         "Mustermann",
		FirstName:        "Erika",
		Address:          "Hauptstr. 1, Berlin",
		Email:            email,
		Phone:            "+49 30 123456",
		BirthDate:        model.NewDate(1985, time.April, 2),
		JoinDate:         model.NewDate(2024, time.January, 10),
		MembershipStatus: model.StatusMember,
	}
}

func TestMemberCRUD(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	q := db.Reader()
	r := memberrepo.New()

	m := newMember("erika@example.com")
	require.NoError(t, r.Create(ctx, q, m))
	require.NotZero(t, m.ID)

	got, err := r.Get(ctx, q, m.ID)
	require.NoError(t, err)
	require.Equal(t, m, got)

	got.MembershipStatus = model.StatusAdmin
	got.Phone = "0"
	require.NoError(t, r.Update(ctx, q, got))

	list, err := r.List(ctx, q)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, model.StatusAdmin, list[0].MembershipStatus)
	require.Equal(t, "0", list[0].Phone)

	require.NoError(t, r.Delete(ctx, q, m.ID))
	_, err = r.Get(ctx, q, m.ID)
	require.Equal(t, apperr.ErrNotFound, apperr.Code(err))
}

func TestMemberConstraints(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	q := db.Reader()
	r := memberrepo.New()

	require.NoError(t, r.Create(ctx, q, newMember("dup@example.com")))
	err := r.Create(ctx, q, newMember("dup@example.com"))
	require.Equal(t, apperr.ErrConflict, apperr.Code(err))
	require.Equal(t, "email already registered", err.Error())

	bad := newMember("other@example.com")
	bad.MembershipStatus = "Guest"
	require.Equal(t, apperr.ErrValidation, apperr.Code(r.Create(ctx, q, bad)))

	require.Equal(t, apperr.ErrNotFound, apperr.Code(r.Delete(ctx, q, 12345)))
}
