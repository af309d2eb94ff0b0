package jwtx

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/stefa-ie/buecheria-library-app/model"
	jwtutil "github.com/stefa-ie/buecheria-library-app/util/jwt"
)

// ContextKey is where the auth middleware stores the verified claims.
const ContextKey = "user"

type Identity struct {
	Username string     `json:"username"`
	Role     model.Role `json:"role"`
}

func (i Identity) IsAdmin() bool { return i.Role == model.RoleAdmin }

func IdentityFromContext(c echo.Context) (Identity, error) {
	claims, ok := c.Get(ContextKey).(*jwtutil.Claims)
	if !ok || claims == nil {
		return Identity{}, errors.New("no jwt claims in context")
	}
	if claims.Subject == "" {
		return Identity{}, errors.New("sub missing in claims")
	}
	return Identity{Username: claims.Subject, Role: model.Role(claims.Role)}, nil
}
