// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"entity-registry/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the registry HTTP API on top of the usecase layer.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log.Named("http"),
		uc:  usecase,
	}
}

// RegisterHandlers mounts all routes on r.
func RegisterHandlers(r fiber.Router, h *Handler) {
	r.Post("/users", h.PostUsers)
	r.Get("/users", h.GetUsers)
	r.Get("/users/lookup", h.GetUsersLookup)

	r.Post("/accounts", h.PostAccounts)
	r.Get("/accounts", h.GetAccounts)
	r.Post("/accounts/transfer", h.PostAccountsTransfer)
	r.Get("/accounts/:number", h.GetAccount)
	r.Post("/accounts/:number/deposit", h.PostAccountDeposit)
	r.Post("/accounts/:number/withdraw", h.PostAccountWithdraw)

	r.Get("/stats", h.GetStats)
}
