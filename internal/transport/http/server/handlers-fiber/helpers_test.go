package handlers_fiber

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"entity-registry/internal/entities"
	"entity-registry/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    dto.ErrorCode
		message string
		field   string
	}{
		{
			name:    "validation",
			err:     &entities.ValidationError{Field: "email", Reason: "Invalid email"},
			status:  http.StatusBadRequest,
			code:    dto.CodeValidation,
			message: "Invalid email",
			field:   "email",
		},
		{
			name:    "missing_field_wrapped",
			err:     fmt.Errorf("decode: %w", &entities.MissingFieldError{Field: "age"}),
			status:  http.StatusBadRequest,
			code:    dto.CodeMissingField,
			message: `missing required field "age"`,
			field:   "age",
		},
		{
			name:    "user_not_found",
			err:     entities.ErrUserNotFound,
			status:  http.StatusNotFound,
			code:    dto.CodeNotFound,
			message: "user not found",
		},
		{
			name:    "account_not_found",
			err:     entities.ErrAccountNotFound,
			status:  http.StatusNotFound,
			code:    dto.CodeNotFound,
			message: "account not found",
		},
		{
			name:    "insufficient_funds",
			err:     entities.ErrInsufficientFunds,
			status:  http.StatusConflict,
			code:    dto.CodeInsufficientFunds,
			message: "insufficient balance",
		},
		{
			name:    "invalid_argument",
			err:     fmt.Errorf("%w: email is required", entities.ErrInvalidArgument),
			status:  http.StatusBadRequest,
			code:    dto.CodeInvalidArgument,
			message: "invalid argument: email is required",
		},
		{
			name:    "internal",
			err:     fmt.Errorf("connection refused"),
			status:  http.StatusInternalServerError,
			code:    dto.CodeInternal,
			message: "internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return writeError(c, tt.err)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.status, resp.StatusCode)

			var body dto.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, tt.code, body.Error.Code)
			require.Equal(t, tt.message, body.Error.Message)
			require.Equal(t, tt.field, body.Error.Field)
		})
	}
}
