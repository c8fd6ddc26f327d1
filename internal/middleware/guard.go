// Package middleware holds the request-level auth guard.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mfvaldes/projhub/internal/auth"
)

// IdentityKey is where the guard leaves the authenticated identity in
// fiber locals.
const IdentityKey = "identity"

// bearerScheme is matched byte-for-byte; a lowercase "bearer" is
// rejected. Documented policy, do not relax without confirmation.
const bearerScheme = "Bearer"

// Guard gates a route on a valid bearer token. Rejection is terminal for
// the request; on success the decoded identity is attached to locals and
// the request context before the wrapped handler runs.
func Guard(codec auth.TokenCodec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return auth.ErrMissingAuthHeader
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != bearerScheme {
			return auth.ErrBadAuthHeader
		}

		claims, err := codec.Verify(parts[1])
		if err != nil {
			return err
		}

		identity := claims.Identity()
		c.Locals(IdentityKey, identity)
		c.SetUserContext(auth.WithIdentity(c.UserContext(), identity))

		return c.Next()
	}
}

// IdentityFrom pulls the guard-attached identity out of a fiber context.
func IdentityFrom(c *fiber.Ctx) (auth.Identity, bool) {
	identity, ok := c.Locals(IdentityKey).(auth.Identity)
	return identity, ok
}
