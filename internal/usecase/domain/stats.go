// Package domain contains application services orchestrating domain logic by statistics.
package domain

import (
	"context"
	"fmt"

	"entity-registry/internal/entities"
)

// Stats returns stored counts and construction tallies.
func (u *Usecase) Stats(ctx context.Context) (entities.Stats, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	users, err := u.repo.CountUsers(ctx)
	if err != nil {
		return entities.Stats{}, fmt.Errorf("count users: %w", err)
	}
	accounts, err := u.repo.CountAccounts(ctx)
	if err != nil {
		return entities.Stats{}, fmt.Errorf("count accounts: %w", err)
	}

	return entities.Stats{
		StoredUsers:     users,
		StoredAccounts:  accounts,
		UsersCreated:    u.factory.UsersCreated(),
		AccountsCreated: u.factory.AccountsCreated(),
	}, nil
}
