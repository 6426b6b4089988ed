package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// TokenContextKey holds the raw bearer token for downstream handlers: the
// persistence adapter forwards it to the remote API on save.
const TokenContextKey = "access_token"

// SubjectContextKey holds the verified token subject.
const SubjectContextKey = "subject"

// ErrMissingBearer is returned when the Authorization header is absent or
// not a bearer token.
var ErrMissingBearer = errors.New("missing bearer token")

// RequireBearer protects mutating builder routes. It verifies the
// Authorization bearer token as an HS256 JWT when a secret is configured;
// with no secret configured the token is passed through unverified, which
// keeps local development workable against a stub API.
func RequireBearer(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"code":    "unauthorized",
					"message": "a bearer token is required",
				})
			}

			if secret != "" {
				claims := jwt.MapClaims{}
				parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
					if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
						return nil, errors.New("unexpected signing method")
					}
					return []byte(secret), nil
				})
				if err != nil || !parsed.Valid {
					return c.JSON(http.StatusUnauthorized, map[string]string{
						"code":    "unauthorized",
						"message": "invalid or expired token",
					})
				}
				if sub, err := claims.GetSubject(); err == nil {
					c.Set(SubjectContextKey, sub)
				}
			}

			c.Set(TokenContextKey, token)
			return next(c)
		}
	}
}

// Token retrieves the bearer token stored by RequireBearer.
func Token(c echo.Context) string {
	if tok, ok := c.Get(TokenContextKey).(string); ok {
		return tok
	}
	return ""
}

func bearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) || len(header) == len(prefix) {
		return "", ErrMissingBearer
	}
	return strings.TrimPrefix(header, prefix), nil
}
