package usecase

import (
	"context"

	"entity-registry/internal/entities"

	"github.com/shopspring/decimal"
)

// UserUsecaseInterface abstracts user-related operations for delivery layer.
type UserUsecaseInterface interface {
	RegisterUser(ctx context.Context, data map[string]any) (*entities.User, error)
	FindUser(ctx context.Context, email string) (*entities.User, error)
	ListUsers(ctx context.Context) ([]*entities.User, error)
	ImportUsers(ctx context.Context, records []map[string]any) (entities.ImportResult, error)
}

// AccountUsecaseInterface abstracts account-related operations.
type AccountUsecaseInterface interface {
	OpenAccount(ctx context.Context, data map[string]any) (*entities.Account, error)
	Account(ctx context.Context, number string) (*entities.Account, error)
	ListAccounts(ctx context.Context) ([]*entities.Account, error)
	Deposit(ctx context.Context, number string, amount decimal.Decimal) (*entities.Account, error)
	Withdraw(ctx context.Context, number string, amount decimal.Decimal) (*entities.Account, error)
	Transfer(ctx context.Context, from, to string, amount decimal.Decimal) (*entities.Account, *entities.Account, error)
}

// StatsUsecaseInterface abstracts statistics operations.
type StatsUsecaseInterface interface {
	Stats(ctx context.Context) (entities.Stats, error)
}
