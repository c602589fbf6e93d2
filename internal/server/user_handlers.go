package server

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
	"github.com/google/uuid"

	"github.com/mmarinn/dayder/internal/auth"
	"github.com/mmarinn/dayder/internal/store"
)

// CreateUserRequest is the admin payload for creating a user record.
type CreateUserRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
	Email    string `form:"email" json:"email"`
	FullName string `form:"full_name" json:"full_name"`
	Role     string `form:"role" json:"role"`
	Disabled bool   `form:"disabled" json:"disabled"`
}

// Validate will run validation rules
func (r CreateUserRequest) Validate() *errors.Error {
	return errors.ValidateWithOzzo(func() error {
		return validation.ValidateStruct(&r,
			validation.Field(&r.Username, validation.Required, validation.Length(3, 64)),
			validation.Field(&r.Password, validation.Required, validation.Length(8, 128)),
			validation.Field(&r.Email, is.Email),
			validation.Field(&r.Role, validation.By(validRole)),
		)
	}, "Invalid user payload")
}

func validRole(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, ok := store.ParseRole(s); !ok {
		return validation.NewError("validation_role", "must be one of: user, admin")
	}
	return nil
}

func (s *Server) handleUserCreate(c *fiber.Ctx) error {
	payload := new(CreateUserRequest)
	if err := c.BodyParser(payload); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "Invalid user payload").
			WithCode(errors.CodeBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return err
	}

	hash, err := auth.HashPassword(payload.Password)
	if err != nil {
		return err
	}

	role := store.RoleUser
	if payload.Role != "" {
		role, _ = store.ParseRole(payload.Role)
	}

	user, err := s.users.Create(c.UserContext(), &store.User{
		Username:     payload.Username,
		Email:        payload.Email,
		FullName:     payload.FullName,
		PasswordHash: hash,
		Disabled:     payload.Disabled,
		Role:         role,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(user)
}

func (s *Server) handleUsersList(c *fiber.Ctx) error {
	page, err := s.users.List(c.UserContext(), listParams(c))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (s *Server) handleUserGet(c *fiber.Ctx) error {
	id, err := parseID(c, "user id")
	if err != nil {
		return err
	}

	user, err := s.users.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

func (s *Server) handleUserDelete(c *fiber.Ctx) error {
	id, err := parseID(c, "user id")
	if err != nil {
		return err
	}

	if err := s.users.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// listParams reads the pagination query params shared by list endpoints.
func listParams(c *fiber.Ctx) store.ListParams {
	return store.ListParams{
		Page: c.QueryInt("page", 1),
		Size: c.QueryInt("size", store.DefaultPageSize),
	}.Normalize()
}

// parseID reads the :id route param as a UUID.
func parseID(c *fiber.Ctx, what string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, errors.CategoryBadInput, "Invalid "+what).
			WithCode(errors.CodeBadRequest)
	}
	return id, nil
}
