// Package dto contains HTTP request and response bodies.
package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ErrorCode classifies an error response.
type ErrorCode string

// Error codes returned in ErrorResponse.
const (
	CodeValidation        ErrorCode = "VALIDATION"
	CodeMissingField      ErrorCode = "MISSING_FIELD"
	CodeInvalidArgument   ErrorCode = "INVALID_ARGUMENT"
	CodeNotFound          ErrorCode = "NOT_FOUND"
	CodeInsufficientFunds ErrorCode = "INSUFFICIENT_FUNDS"
	CodeInternal          ErrorCode = "INTERNAL"
)

// ErrorBody is the error payload.
type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

// ErrorResponse wraps ErrorBody.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// User is the transport form of a user.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"created_at"`
}

// Account is the transport form of an account.
type Account struct {
	Number      string          `json:"account_number"`
	Balance     decimal.Decimal `json:"balance"`
	AccountType string          `json:"account_type"`
	CardType    string          `json:"card_type,omitempty"`
	BankName    string          `json:"bank_name"`
}

// AmountRequest is the body of deposit and withdraw.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// TransferRequest is the body of a transfer.
type TransferRequest struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Amount decimal.Decimal `json:"amount"`
}

// TransferResponse returns both sides of a transfer.
type TransferResponse struct {
	From Account `json:"from"`
	To   Account `json:"to"`
}
