package auth

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	AuthorizationHeader = "Authorization"
	bearer              = "Bearer "

	RoleLibrarian = "LIBRARIAN"
	RoleAdmin     = "ADMIN"
)

var jwtKey = []byte(envOr("JWT_KEY", "dev-secret"))

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

type Profile struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type Claims struct {
	Profile Profile `json:"profile"`
	jwt.RegisteredClaims
}

type ctxKey struct{}

type authInfo struct {
	username string
	role     string
}

func SetAuthContext(ctx context.Context, username, role string) context.Context {
	return context.WithValue(ctx, ctxKey{}, authInfo{username: username, role: role})
}

// Actor returns the authenticated staff username from ctx.
func Actor(ctx context.Context) (string, error) {
	info, ok := ctx.Value(ctxKey{}).(authInfo)
	if !ok || info.username == "" {
		return "", errors.New("no authenticated actor in context")
	}
	return info.username, nil
}

func Role(ctx context.Context) string {
	info, _ := ctx.Value(ctxKey{}).(authInfo)
	return info.role
}

// NewToken mints a staff token. Used by the identity tooling and tests.
func NewToken(username, role string, ttl time.Duration) (string, error) {
	claims := &Claims{
		Profile: Profile{Username: username, Role: role},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtKey)
}

// Middleware authenticates staff requests and stores the actor on the request
// context.
func Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authorization := c.Request().Header.Get(AuthorizationHeader)
		if authorization == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "No Authorization Header")
		}
		if !strings.HasPrefix(authorization, bearer) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization Header")
		}
		tokenStr := strings.TrimPrefix(authorization, bearer)
		claims := new(Claims)

		token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
			return jwtKey, nil
		})
		if err != nil || !token.Valid {
			return echo.NewHTTPError(http.StatusUnauthorized, "JwtAccessDenied")
		}
		if time.Now().After(claims.ExpiresAt.Time) {
			return echo.NewHTTPError(http.StatusUnauthorized, "TokenExpired")
		}

		req := c.Request()
		ctx := SetAuthContext(req.Context(), claims.Profile.Username, claims.Profile.Role)
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}
