package server

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"

	"github.com/mmarinn/dayder/internal/store"
)

// AnnouncementRequest is the payload for creating or updating an
// announcement.
type AnnouncementRequest struct {
	Title       string `form:"title" json:"title"`
	Description string `form:"description" json:"description"`
	Thumbnail   string `form:"thumbnail" json:"thumbnail"`
}

// Validate will run validation rules
func (r AnnouncementRequest) Validate() *errors.Error {
	return errors.ValidateWithOzzo(func() error {
		return validation.ValidateStruct(&r,
			validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
			validation.Field(&r.Description, validation.Required),
			validation.Field(&r.Thumbnail, is.URL),
		)
	}, "Invalid announcement payload")
}

func (s *Server) handleAnnouncementsList(c *fiber.Ctx) error {
	page, err := s.announcements.List(c.UserContext(), listParams(c))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (s *Server) handleAnnouncementGet(c *fiber.Ctx) error {
	id, err := parseID(c, "announcement id")
	if err != nil {
		return err
	}

	item, err := s.announcements.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(item)
}

func (s *Server) handleAnnouncementCreate(c *fiber.Ctx) error {
	payload := new(AnnouncementRequest)
	if err := c.BodyParser(payload); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "Invalid announcement payload").
			WithCode(errors.CodeBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return err
	}

	item, err := s.announcements.Create(c.UserContext(), &store.Announcement{
		Title:       payload.Title,
		Description: payload.Description,
		Thumbnail:   payload.Thumbnail,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(item)
}

func (s *Server) handleAnnouncementUpdate(c *fiber.Ctx) error {
	id, err := parseID(c, "announcement id")
	if err != nil {
		return err
	}

	payload := new(AnnouncementRequest)
	if err := c.BodyParser(payload); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "Invalid announcement payload").
			WithCode(errors.CodeBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return err
	}

	item, err := s.announcements.Update(c.UserContext(), &store.Announcement{
		ID:          id,
		Title:       payload.Title,
		Description: payload.Description,
		Thumbnail:   payload.Thumbnail,
	})
	if err != nil {
		return err
	}

	return c.JSON(item)
}

func (s *Server) handleAnnouncementDelete(c *fiber.Ctx) error {
	id, err := parseID(c, "announcement id")
	if err != nil {
		return err
	}

	if err := s.announcements.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
