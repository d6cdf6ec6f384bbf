package handlers_fiber

import (
	"net/http"

	"entity-registry/internal/mapper"
	"entity-registry/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

type accountResponse struct {
	Account dto.Account `json:"account"`
}

// PostAccounts opens an account from a raw JSON object.
func (h *Handler) PostAccounts(c *fiber.Ctx) error {
	var body map[string]any
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}

	acc, err := h.uc.OpenAccount(c.UserContext(), body)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(accountResponse{Account: mapper.ToDTOAccount(acc)})
}

// GetAccounts lists accounts in opening order.
func (h *Handler) GetAccounts(c *fiber.Ctx) error {
	list, err := h.uc.ListAccounts(c.UserContext())
	if err != nil {
		h.log.Errorw("failed to list accounts", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Accounts []dto.Account `json:"accounts"`
	}{Accounts: mapper.ToDTOAccountList(list)})
}

// GetAccount returns the first account with the path number.
func (h *Handler) GetAccount(c *fiber.Ctx) error {
	acc, err := h.uc.Account(c.UserContext(), c.Params("number"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(accountResponse{Account: mapper.ToDTOAccount(acc)})
}

// PostAccountDeposit adds funds.
func (h *Handler) PostAccountDeposit(c *fiber.Ctx) error {
	var body dto.AmountRequest
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	acc, err := h.uc.Deposit(c.UserContext(), c.Params("number"), body.Amount)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(accountResponse{Account: mapper.ToDTOAccount(acc)})
}

// PostAccountWithdraw removes funds.
func (h *Handler) PostAccountWithdraw(c *fiber.Ctx) error {
	var body dto.AmountRequest
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	acc, err := h.uc.Withdraw(c.UserContext(), c.Params("number"), body.Amount)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(accountResponse{Account: mapper.ToDTOAccount(acc)})
}

// PostAccountsTransfer moves funds between two accounts.
func (h *Handler) PostAccountsTransfer(c *fiber.Ctx) error {
	var body dto.TransferRequest
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	from, to, err := h.uc.Transfer(c.UserContext(), body.From, body.To, body.Amount)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.TransferResponse{
		From: mapper.ToDTOAccount(from),
		To:   mapper.ToDTOAccount(to),
	})
}
