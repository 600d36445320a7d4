package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"foodorder/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	actorContextKey = "actor"
	minSecretLength = 16
)

// Claims is the token payload issued by the identity service. The subject is
// the user id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenVerifier checks HS256 bearer tokens. Tokens are issued elsewhere.
type TokenVerifier struct {
	secret []byte
}

func NewTokenVerifier(secret string) (*TokenVerifier, error) {
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("jwt secret must be at least %d characters", minSecretLength)
	}
	return &TokenVerifier{secret: []byte(secret)}, nil
}

// Verify returns the actor a valid, unexpired token speaks for.
func (v *TokenVerifier) Verify(raw string) (kernel.Actor, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims,
		func(*jwt.Token) (any, error) { return v.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return kernel.Actor{}, err
	}

	userID, err := kernel.ParseUUID("sub", claims.Subject)
	if err != nil {
		return kernel.Actor{}, err
	}
	return kernel.NewActor(userID, kernel.Role(claims.Role))
}

// Authenticate rejects requests without a valid bearer token and stores the
// actor for the handlers.
func (v *TokenVerifier) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			return respond(c, http.StatusUnauthorized, "missing bearer token")
		}

		actor, err := v.Verify(raw)
		if err != nil {
			return respond(c, http.StatusUnauthorized, "invalid token")
		}
		c.Set(actorContextKey, actor)
		return next(c)
	}
}

var errNoActor = errors.New("request is not authenticated")

func actorFrom(c echo.Context) (kernel.Actor, error) {
	actor, ok := c.Get(actorContextKey).(kernel.Actor)
	if !ok {
		return kernel.Actor{}, errNoActor
	}
	return actor, nil
}
