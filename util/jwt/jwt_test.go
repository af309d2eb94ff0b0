package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	tok, err := Issue("s3cret", "admin", "admin", 30*time.Minute)
	require.NoError(t, err)

	c, err := Parse(tok, "s3cret")
	require.NoError(t, err)
	require.Equal(t, "admin", c.Subject)
	require.Equal(t, "admin", c.Role)
	require.WithinDuration(t, time.Now().Add(30*time.Minute), c.ExpiresAt.Time, 5*time.Second)
}

func TestParse_Rejects(t *testing.T) {
	good, err := Issue("s3cret", "alice", "user", time.Minute)
	require.NoError(t, err)

	_, err = Parse(good, "other")
	require.Error(t, err, "wrong secret")

	expired, err := Issue("s3cret", "alice", "user", -time.Minute)
	require.NoError(t, err)
	_, err = Parse(expired, "s3cret")
	require.Error(t, err, "expired")

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "alice"},
	})
	s, err := noExp.SignedString([]byte("s3cret"))
	require.NoError(t, err)
	_, err = Parse(s, "s3cret")
	require.Error(t, err, "missing exp")

	noSub, err := Issue("s3cret", "", "user", time.Minute)
	require.NoError(t, err)
	_, err = Parse(noSub, "s3cret")
	require.Error(t, err, "missing sub")

	hs512 := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "alice", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute))},
	})
	s, err = hs512.SignedString([]byte("s3cret"))
	require.NoError(t, err)
	_, err = Parse(s, "s3cret")
	require.Error(t, err, "unexpected alg")

	_, err = Parse("", "s3cret")
	require.Error(t, err, "empty token")
}
