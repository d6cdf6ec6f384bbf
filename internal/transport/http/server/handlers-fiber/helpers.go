package handlers_fiber

import (
	"errors"
	"net/http"

	"entity-registry/internal/entities"
	"entity-registry/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	body := dto.ErrorBody{Code: dto.CodeInternal, Message: "internal error"}

	var (
		vErr *entities.ValidationError
		mErr *entities.MissingFieldError
	)
	switch {
	case errors.As(err, &vErr):
		status = http.StatusBadRequest
		body = dto.ErrorBody{Code: dto.CodeValidation, Message: vErr.Reason, Field: vErr.Field}
	case errors.As(err, &mErr):
		status = http.StatusBadRequest
		body = dto.ErrorBody{Code: dto.CodeMissingField, Message: mErr.Error(), Field: mErr.Field}
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		body = dto.ErrorBody{Code: dto.CodeInvalidArgument, Message: err.Error()}
	case errors.Is(err, entities.ErrUserNotFound), errors.Is(err, entities.ErrAccountNotFound):
		status = http.StatusNotFound
		body = dto.ErrorBody{Code: dto.CodeNotFound, Message: err.Error()}
	case errors.Is(err, entities.ErrInsufficientFunds):
		status = http.StatusConflict
		body = dto.ErrorBody{Code: dto.CodeInsufficientFunds, Message: "insufficient balance"}
	}

	return c.Status(status).JSON(dto.ErrorResponse{Error: body})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: dto.ErrorBody{Code: dto.CodeInvalidArgument, Message: "invalid body"},
	})
}
