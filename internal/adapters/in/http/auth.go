package http

import (
	"errors"
	"net/http"
	"strings"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Roles carried in the JWT. Drivers act on their own assignments, so driver
// endpoints derive the driver identity from the token instead of the body.
const (
	RoleClient        = "client"
	RoleDriver        = "driver"
	RoleDispatcher    = "dispatcher"
	RoleAdministrator = "administrator"
)

const principalContextKey = "principal"

// Principal represents the authenticated caller extracted from the JWT.
type Principal struct {
	ID   kernel.UUID
	Role string
}

type authClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates the Bearer token on every request and stores the
// resulting principal in the request context. Only HS256 tokens are
// accepted.
func AuthMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			principal, err := parseBearer(ctx.Request().Header.Get(echo.HeaderAuthorization), secret)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, commands.Result{Message: "unauthorized"})
			}

			ctx.Set(principalContextKey, principal)
			return next(ctx)
		}
	}
}

// RequireRoles rejects requests whose principal is not in the allowed set.
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			principal, ok := principalFrom(ctx)
			if !ok {
				return ctx.JSON(http.StatusUnauthorized, commands.Result{Message: "unauthorized"})
			}

			for _, role := range roles {
				if principal.Role == role {
					return next(ctx)
				}
			}

			return ctx.JSON(http.StatusForbidden, commands.Result{Message: "forbidden"})
		}
	}
}

func principalFrom(ctx echo.Context) (Principal, bool) {
	principal, ok := ctx.Get(principalContextKey).(Principal)
	return principal, ok
}

func parseBearer(header, secret string) (Principal, error) {
	if secret == "" {
		return Principal{}, errors.New("jwt secret is empty")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return Principal{}, errors.New("invalid authorization header")
	}

	token, err := jwt.ParseWithClaims(
		strings.TrimSpace(parts[1]),
		&authClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		},
	)
	if err != nil || !token.Valid {
		if err == nil {
			err = errors.New("invalid token")
		}
		return Principal{}, err
	}

	claims, ok := token.Claims.(*authClaims)
	if !ok || claims.Subject == "" || claims.Role == "" {
		return Principal{}, errors.New("invalid claims")
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return Principal{}, err
	}

	return Principal{ID: id, Role: strings.ToLower(claims.Role)}, nil
}
