package authsvc

import (
	"context"
	"strings"
	"time"

	"github.com/stefa-ie/buecheria-library-app/model"
	"github.com/stefa-ie/buecheria-library-app/util/apperr"
	"github.com/stefa-ie/buecheria-library-app/util/database"
	"github.com/stefa-ie/buecheria-library-app/util/hash"
	jwtutil "github.com/stefa-ie/buecheria-library-app/util/jwt"
)

type Repo interface {
	Create(ctx context.Context, q database.DBTX, u *model.User) error
	ByUsername(ctx context.Context, q database.DBTX, username string) (*model.User, error)
}

type Service interface {
	Login(ctx context.Context, req model.LoginReq) (*model.TokenResp, error)
	CreateUser(ctx context.Context, req model.CreateUserReq) (*model.User, error)
}

type service struct {
	db     database.Runner
	r      Repo
	secret string
	ttl    time.Duration
}

func New(db database.Runner, r Repo, secret string, ttl time.Duration) Service {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &service{db: db, r: r, secret: secret, ttl: ttl}
}

func (s *service) Login(ctx context.Context, req model.LoginReq) (*model.TokenResp, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, apperr.New(apperr.ErrValidation, "username and password are required")
	}

	u, err := s.r.ByUsername(ctx, s.db.Reader(), username)
	if err != nil {
		if apperr.Is(err, apperr.ErrNotFound) {
			hash.Burn(req.Password)
			return nil, apperr.New(apperr.ErrUnauthorized, "incorrect username or password")
		}
		return nil, err
	}
	if !hash.Check(u.PasswordHash, req.Password) {
		return nil, apperr.New(apperr.ErrUnauthorized, "incorrect username or password")
	}

	token, err := jwtutil.Issue(s.secret, u.Username, string(u.Role), s.ttl)
	if err != nil {
		return nil, err
	}
	return &model.TokenResp{
		AccessToken: token,
		TokenType:   "bearer",
		Username:    u.Username,
		Role:        u.Role,
	}, nil
}

func (s *service) CreateUser(ctx context.Context, req model.CreateUserReq) (*model.User, error) {
	username := strings.TrimSpace(req.Username)
	role := req.Role
	if role == "" {
		role = model.RoleUser
	}
	switch {
	case len(username) < 3:
		return nil, apperr.New(apperr.ErrValidation, "username must be at least 3 characters")
	case len(req.Password) < 8:
		return nil, apperr.New(apperr.ErrValidation, "password must be at least 8 characters")
	case !role.Valid():
		return nil, apperr.Newf(apperr.ErrValidation, "unknown role %q", role)
	}

	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	u := &model.User{Username: username, PasswordHash: hashed, Role: role}
	if err := s.db.WithTx(ctx, func(ctx context.Context, tx database.DBTX) error {
		return s.r.Create(ctx, tx, u)
	}); err != nil {
		return nil, err
	}
	return u, nil
}
