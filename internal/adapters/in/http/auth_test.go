package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpadapter "foodorder/internal/adapters/in/http"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "unit-test-secret-0123"

func sign(t *testing.T, method jwt.SigningMethod, key any, claims httpadapter.Claims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return signed
}

func claimsFor(subject, role string, expires time.Time) httpadapter.Claims {
	return httpadapter.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
}

func TestNewTokenVerifier_RejectsShortSecret(t *testing.T) {
	_, err := httpadapter.NewTokenVerifier("short")

	assert.Error(t, err)
}

func TestVerify(t *testing.T) {
	verifier, err := httpadapter.NewTokenVerifier(secret)
	require.NoError(t, err)
	userID := kernel.NewUUID()
	later := time.Now().Add(time.Hour)

	actor, err := verifier.Verify(sign(t, jwt.SigningMethodHS256, []byte(secret),
		claimsFor(userID.String(), "courier", later)))
	require.NoError(t, err)
	assert.Equal(t, kernel.Actor{UserID: userID, Role: kernel.RoleCourier}, actor)

	tests := map[string]string{
		"expired":      sign(t, jwt.SigningMethodHS256, []byte(secret), claimsFor(userID.String(), "courier", time.Now().Add(-time.Minute))),
		"wrong key":    sign(t, jwt.SigningMethodHS256, []byte("another-secret-0123"), claimsFor(userID.String(), "courier", later)),
		"wrong alg":    sign(t, jwt.SigningMethodHS512, []byte(secret), claimsFor(userID.String(), "courier", later)),
		"bad subject":  sign(t, jwt.SigningMethodHS256, []byte(secret), claimsFor("42", "courier", later)),
		"unknown role": sign(t, jwt.SigningMethodHS256, []byte(secret), claimsFor(userID.String(), "chef", later)),
		"garbage":      "not.a.token",
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := verifier.Verify(raw)
			assert.Error(t, err)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	verifier, err := httpadapter.NewTokenVerifier(secret)
	require.NoError(t, err)
	e := echo.New()
	handler := verifier.Authenticate(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	tests := map[string]struct {
		header   string
		expected int
	}{
		"missing": {header: "", expected: http.StatusUnauthorized},
		"basic":   {header: "Basic abc", expected: http.StatusUnauthorized},
		"invalid": {header: "Bearer nope", expected: http.StatusUnauthorized},
		"valid": {
			header: "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret),
				claimsFor(kernel.NewUUID().String(), "customer", time.Now().Add(time.Hour))),
			expected: http.StatusNoContent,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()

			require.NoError(t, handler(e.NewContext(req, rec)))
			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}
