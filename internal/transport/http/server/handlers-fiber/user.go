package handlers_fiber

import (
	"net/http"

	"entity-registry/internal/mapper"
	"entity-registry/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// PostUsers registers a user from a raw JSON object.
func (h *Handler) PostUsers(c *fiber.Ctx) error {
	var body map[string]any
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return invalidBody(c)
	}

	usr, err := h.uc.RegisterUser(c.UserContext(), body)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		User dto.User `json:"user"`
	}{User: mapper.ToDTOUser(usr)})
}

// GetUsers lists users in registration order.
func (h *Handler) GetUsers(c *fiber.Ctx) error {
	users, err := h.uc.ListUsers(c.UserContext())
	if err != nil {
		h.log.Errorw("failed to list users", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Users []dto.User `json:"users"`
	}{Users: mapper.ToDTOUserList(users)})
}

// GetUsersLookup returns the first user registered with ?email=.
func (h *Handler) GetUsersLookup(c *fiber.Ctx) error {
	usr, err := h.uc.FindUser(c.UserContext(), c.Query("email"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		User dto.User `json:"user"`
	}{User: mapper.ToDTOUser(usr)})
}
