// Package server wires the HTTP surface: routing, request middleware, and
// the translation of rich errors into API responses.
package server

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/goliatone/go-errors"

	"github.com/mmarinn/dayder/internal/auth"
	"github.com/mmarinn/dayder/internal/store"
)

// Server holds the HTTP app and its collaborators.
type Server struct {
	app           *fiber.App
	auth          *auth.Authenticator
	users         *store.Users
	announcements *store.Announcements
	adminGate     *auth.RoleGate
	logger        auth.Logger
}

// Option mutates the server at construction time.
type Option func(*Server)

// WithLogger overrides the server logger.
func WithLogger(logger auth.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New assembles the fiber app with all routes registered.
func New(authn *auth.Authenticator, users *store.Users, announcements *store.Announcements, opts ...Option) *Server {
	s := &Server{
		auth:          authn,
		users:         users,
		announcements: announcements,
		adminGate:     auth.RequireRoles(store.RoleAdmin),
		logger:        defaultLogger{},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	s.app = fiber.New(fiber.Config{
		AppName:      "dayder",
		ErrorHandler: s.errorHandler,
	})

	s.app.Use(fiberrecover.New())
	s.app.Use(fiberlogger.New())

	s.registerRoutes()

	return s
}

// App exposes the underlying fiber app, used by tests to issue requests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen blocks serving HTTP on the given address.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown gracefully drains in-flight requests.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) registerRoutes() {
	s.app.Post("/token", s.handleLogin)

	s.app.Get("/users/me", s.requireUser, s.handleUsersMe)
	s.app.Get("/users", s.requireUser, s.requireAdmin, s.handleUsersList)
	s.app.Post("/users", s.requireUser, s.requireAdmin, s.handleUserCreate)
	s.app.Get("/users/:id", s.requireUser, s.requireAdmin, s.handleUserGet)
	s.app.Delete("/users/:id", s.requireUser, s.requireAdmin, s.handleUserDelete)

	announcements := s.app.Group("/announcements", s.requireUser)
	announcements.Get("/", s.handleAnnouncementsList)
	announcements.Post("/", s.handleAnnouncementCreate)
	announcements.Get("/:id", s.handleAnnouncementGet)
	announcements.Put("/:id", s.handleAnnouncementUpdate)
	announcements.Delete("/:id", s.handleAnnouncementDelete)
}

// errorHandler translates rich errors into the API error envelope. The
// envelope mirrors the reference deployment: a "detail" message plus an
// optional machine-readable code.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"detail": fiberErr.Message})
	}

	var richErr *errors.Error
	if !errors.As(err, &richErr) {
		richErr = errors.Wrap(err, errors.CategoryInternal, "An unexpected server error occurred").
			WithCode(errors.CodeInternal)
	}

	status := richErr.Code
	if status == 0 {
		status = statusFromCategory(richErr.Category)
	}

	if status == http.StatusUnauthorized {
		c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed: %s %s: %v", c.Method(), c.Path(), richErr)
		// Never leak store internals to the client.
		return c.Status(status).JSON(fiber.Map{"detail": "Internal server error"})
	}

	body := fiber.Map{"detail": richErr.Message}
	if richErr.TextCode != "" {
		body["code"] = richErr.TextCode
	}
	return c.Status(status).JSON(body)
}

func statusFromCategory(category errors.Category) int {
	switch category {
	case errors.CategoryAuth:
		return http.StatusUnauthorized
	case errors.CategoryAuthz:
		return http.StatusForbidden
	case errors.CategoryNotFound:
		return http.StatusNotFound
	case errors.CategoryConflict:
		return http.StatusConflict
	case errors.CategoryValidation, errors.CategoryBadInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

type defaultLogger struct{}

func (defaultLogger) Debug(format string, args ...any) { printLog("DBG", format, args...) }
func (defaultLogger) Info(format string, args ...any)  { printLog("INF", format, args...) }
func (defaultLogger) Warn(format string, args ...any)  { printLog("WRN", format, args...) }
func (defaultLogger) Error(format string, args ...any) { printLog("ERR", format, args...) }

func printLog(level, format string, args ...any) {
	if len(format) == 0 || format[len(format)-1] != '\n' {
		format += "\n"
	}
	fmt.Printf("["+level+"] HTTP "+format, args...)
}
