package server

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mmarinn/dayder/internal/auth"
	"github.com/mmarinn/dayder/internal/store"
)

const currentUserKey = "current_user"

// requireUser resolves the actor behind the bearer token and stores it in
// the request locals. Every protected route sits behind this middleware.
func (s *Server) requireUser(c *fiber.Ctx) error {
	raw, ok := bearerToken(c)
	if !ok {
		return auth.ErrCouldNotValidate
	}

	user, err := s.auth.CurrentUser(c.UserContext(), raw)
	if err != nil {
		return err
	}

	c.Locals(currentUserKey, user)
	return c.Next()
}

// requireAdmin gates the route on the admin role. Must run after
// requireUser.
func (s *Server) requireAdmin(c *fiber.Ctx) error {
	if _, err := s.adminGate.Check(currentUser(c)); err != nil {
		return err
	}
	return c.Next()
}

// currentUser returns the actor stored by requireUser, or nil when the
// middleware did not run.
func currentUser(c *fiber.Ctx) *store.User {
	user, _ := c.Locals(currentUserKey).(*store.User)
	return user
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(c *fiber.Ctx) (string, bool) {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return "", false
	}

	const scheme = "bearer "
	if len(header) <= len(scheme) || !strings.EqualFold(header[:len(scheme)], scheme) {
		return "", false
	}

	token := strings.TrimSpace(header[len(scheme):])
	return token, token != ""
}
