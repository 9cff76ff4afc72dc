package http

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"meatdelivery/internal/core/domain/model/kernel"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
)

// Role is the "role" claim of an access token.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleCourier  Role = "delivery-boy"
	RoleAdmin    Role = "admin"
)

const actorKey = "actor"

// Actor is the authenticated caller. Tokens are issued by the identity
// service; this service only verifies them.
type Actor struct {
	ID   kernel.UUID
	Role Role
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

var errMissingToken = echo.NewHTTPError(http.StatusUnauthorized, "authorization header format must be 'Bearer <token>'")

// Authenticate verifies an HS256 bearer token and stores the Actor from its
// "sub" and "role" claims on the context.
func Authenticate(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				return errMissingToken
			}

			actor, err := parseToken(raw, secret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token").SetInternal(err)
			}

			c.Set(actorKey, actor)
			return next(c)
		}
	}
}

func parseToken(raw string, secret []byte) (Actor, error) {
	token, err := jwt.Parse(raw, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return Actor{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Actor{}, errors.New("invalid token")
	}

	sub, _ := claims["sub"].(string)
	id, err := kernel.UUIDFromString(sub)
	if err != nil {
		return Actor{}, fmt.Errorf("sub claim: %w", err)
	}

	role := Role(fmt.Sprint(claims["role"]))
	switch role {
	case RoleCustomer, RoleCourier, RoleAdmin:
	default:
		return Actor{}, fmt.Errorf("unknown role %q", role)
	}

	return Actor{ID: id, Role: role}, nil
}

// RequireRole lets only the listed roles through. It must run after Authenticate.
func RequireRole(roles ...Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !slices.Contains(roles, actorFrom(c).Role) {
				return echo.NewHTTPError(http.StatusForbidden, "access denied")
			}
			return next(c)
		}
	}
}

func actorFrom(c echo.Context) Actor {
	a, _ := c.Get(actorKey).(Actor)
	return a
}

// SignToken issues a token the way the identity service does. Used by tooling
// and tests.
func SignToken(secret []byte, userID kernel.UUID, role Role, claims jwt.MapClaims) (string, error) {
	all := jwt.MapClaims{"sub": userID.String(), "role": string(role)}
	for k, v := range claims {
		all[k] = v
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, all).SignedString(secret)
}
