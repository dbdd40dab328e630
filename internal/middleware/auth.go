package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Olelouer/backend-chatop/internal/auth/domain"
	"github.com/Olelouer/backend-chatop/internal/auth/service"
	autherror "github.com/Olelouer/backend-chatop/internal/errors"
	"github.com/Olelouer/backend-chatop/internal/logging"
)

const localsUserKey = "currentUser"

const bearerPrefix = "Bearer "

// Authenticate resolves the bearer token into an identity and binds it to the
// request's Locals. A request without an Authorization header continues
// unauthenticated; an expired, malformed or badly signed token is rejected
// with 401 before any handler runs.
func Authenticate(tokens service.TokenGenerator, users domain.UserRepository, log logging.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Next()
		}

		if !strings.HasPrefix(header, bearerPrefix) {
			return unauthorized(c)
		}

		subject, err := tokens.ExtractSubject(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			return unauthorized(c)
		}

		user, err := users.GetByEmail(c.Context(), subject)
		if err != nil {
			log.Error(c.Context(), "identity lookup failed", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "internal server error",
			})
		}
		if user == nil {
			// Identity deleted after the token was issued: the token still
			// carries a valid signature but no longer proves anything.
			return c.Next()
		}

		c.Locals(localsUserKey, user)

		return c.Next()
	}
}

// RequireUser rejects any request that reached this point without a bound
// identity.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := CurrentUser(c); err != nil {
			return unauthorized(c)
		}
		return c.Next()
	}
}

// CurrentUser returns the identity Authenticate bound for this request, or
// ErrUnauthenticated when none is bound.
func CurrentUser(c *fiber.Ctx) (*domain.User, error) {
	user, ok := c.Locals(localsUserKey).(*domain.User)
	if !ok || user == nil {
		return nil, autherror.ErrUnauthenticated
	}
	return user, nil
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "unauthorized",
	})
}
