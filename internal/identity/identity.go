// Package identity resolves the authenticated account from the JWT the
// middleware stored in the request context. Handlers read identity only
// through this package; there is no ambient session state.
package identity

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// UserID extracts the account UUID from JWT claims in context.
func UserID(c *fiber.Ctx) (uuid.UUID, error) {
	claims, err := Claims(c)
	if err != nil {
		return uuid.Nil, err
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}

	return uuid.Parse(sub)
}

// Role extracts the role claim. The admin middleware re-checks the role in
// the database, so a stale claim can never grant admin access.
func Role(c *fiber.Ctx) string {
	claims, err := Claims(c)
	if err != nil {
		return ""
	}
	role, _ := claims["role"].(string)
	return role
}

func Claims(c *fiber.Ctx) (jwt.MapClaims, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return nil, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}
