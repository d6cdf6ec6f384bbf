// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"entity-registry/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface stores users in insertion order. Email is not unique;
// lookups return the first user added with that email.
type UserInterface interface {
	AddUser(ctx context.Context, user *entities.User) error
	FindUserByEmail(ctx context.Context, email string) (*entities.User, error)
	ListUsers(ctx context.Context) ([]*entities.User, error)
	CountUsers(ctx context.Context) (int, error)
}

// AccountInterface stores accounts in insertion order, keyed by number
// with the same first-match rule as users.
type AccountInterface interface {
	AddAccount(ctx context.Context, acc *entities.Account) error
	FindAccountByNumber(ctx context.Context, number string) (*entities.Account, error)
	ListAccounts(ctx context.Context) ([]*entities.Account, error)
	CountAccounts(ctx context.Context) (int, error)
	// SaveBalances persists the balances of the given accounts atomically.
	SaveBalances(ctx context.Context, accounts ...*entities.Account) error
}
