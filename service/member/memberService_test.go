package membersvc_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stefa-ie/buecheria-library-app/model"
	membersvc "github.com/stefa-ie/buecheria-library-app/service/member"
	"github.com/stefa-ie/buecheria-library-app/util/apperr"
	"github.com/stefa-ie/buecheria-library-app/util/database"
	"github.com/stefa-ie/buecheria-library-app/util/database/dbtest"
)

type repoMock struct {
	getFn    func(ctx context.Context, id int64) (*model.Member, error)
	createFn func(ctx context.Context, m *model.Member) error
	updateFn func(ctx context.Context, m *model.Member) error
	deleteFn func(ctx context.Context, id int64) error
}

func (m *repoMock) List(ctx context.Context, _ database.DBTX) ([]model.Member, error) {
	return nil, nil
}
func (m *repoMock) Get(ctx context.Context, _ database.DBTX, id int64) (*model.Member, error) {
	return m.getFn(ctx, id)
}
func (m *repoMock) Create(ctx context.Context, _ database.DBTX, mem *model.Member) error {
	return m.createFn(ctx, mem)
}
func (m *repoMock) Update(ctx context.Context, _ database.DBTX, mem *model.Member) error {
	return m.updateFn(ctx, mem)
}
func (m *repoMock) Delete(ctx context.Context, _ database.DBTX, id int64) error {
	return m.deleteFn(ctx, id)
}

func validReq() model.CreateMemberReq {
	return model.CreateMemberReq{
		LastName:         "Mustermann",
		FirstName:        "Erika",
		Address:          "Hauptstr. 1",
		Email:            "erika@example.com",
		Phone:            "123",
		BirthDate:        model.NewDate(1985, time.April, 2),
		MembershipStatus: model.StatusMember,
	}
}

func TestCreate_JoinDateDefaultsToToday(t *testing.T) {
	m := &repoMock{createFn: func(ctx context.Context, mem *model.Member) error {
		mem.ID = 1
		return nil
	}}
	got, err := membersvc.New(&dbtest.Runner{}, m).Create(context.Background(), validReq())
	require.NoError(t, err)
	require.Equal(t, model.Today(), got.JoinDate)

	req := validReq()
	jd := model.NewDate(2020, time.May, 5)
	req.JoinDate = &jd
	got, err = membersvc.New(&dbtest.Runner{}, m).Create(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, jd, got.JoinDate)
}

func TestCreate_Validation(t *testing.T) {
	s := membersvc.New(&dbtest.Runner{}, &repoMock{})

	noBirth := validReq()
	noBirth.BirthDate = model.Date{}
	badEmail := validReq()
	badEmail.Email = "not-an-email"
	badStatus := validReq()
	badStatus.MembershipStatus = "Guest"
	noPhone := validReq()
	noPhone.Phone = "  "
	displayName := validReq()
	displayName.Email = "Erika Mustermann <erika@example.com>"

	for name, req := range map[string]model.CreateMemberReq{
		"birth": noBirth, "email": badEmail, "status": badStatus, "phone": noPhone,
		"display name email": displayName,
	} {
		_, err := s.Create(context.Background(), req)
		require.Equal(t, apperr.ErrValidation, apperr.Code(err), name)
	}
}

func TestUpdate_PartialAndValidated(t *testing.T) {
	cur := model.Member{ID: 2, LastName: "Mustermann", FirstName: "Erika", Address: "A", Email: "e@example.com",
		Phone: "1", BirthDate: model.NewDate(1985, 4, 2), JoinDate: model.NewDate(2024, 1, 1),
		MembershipStatus: model.StatusMember}
	var saved *model.Member
	m := &repoMock{
		getFn: func(ctx context.Context, id int64) (*model.Member, error) {
			c := cur
			return &c, nil
		},
		updateFn: func(ctx context.Context, mem *model.Member) error {
			saved = mem
			return nil
		},
	}
	s := membersvc.New(&dbtest.Runner{}, m)

	got, err := s.Update(context.Background(), 2, model.UpdateMemberReq{})
	require.NoError(t, err)
	require.Equal(t, cur, *got)

	admin := model.StatusAdmin
	got, err = s.Update(context.Background(), 2, model.UpdateMemberReq{MembershipStatus: &admin})
	require.NoError(t, err)
	require.Equal(t, model.StatusAdmin, saved.MembershipStatus)
	require.Equal(t, "Erika", got.FirstName)

	saved = nil
	for _, bad := range []string{"nope", "Erika <e@example.com>"} {
		_, err = s.Update(context.Background(), 2, model.UpdateMemberReq{Email: &bad})
		require.Equal(t, apperr.ErrValidation, apperr.Code(err), bad)
		require.Nil(t, saved)
	}
}

func TestDelete_ConflictPropagates(t *testing.T) {
	m := &repoMock{
		getFn: func(ctx context.Context, id int64) (*model.Member, error) {
			return &model.Member{ID: id}, nil
		},
		deleteFn: func(ctx context.Context, id int64) error {
			return apperr.New(apperr.ErrConflict, "member still has loans")
		},
	}
	_, err := membersvc.New(&dbtest.Runner{}, m).Delete(context.Background(), 1)
	require.Equal(t, apperr.ErrConflict, apperr.Code(err))
}
