// Package domain contains application Usecases orchestrating domain logic by user.
package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"entity-registry/internal/entities"
)

// RegisterUser builds a user from raw input and appends it to the repository.
func (u *Usecase) RegisterUser(ctx context.Context, data map[string]any) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	user, err := u.factory.UserFromMap(data)
	if err != nil {
		u.log.Infow("user rejected", "error", err)
		return nil, err
	}
	if err := u.repo.AddUser(ctx, user); err != nil {
		return nil, fmt.Errorf("add user: %w", err)
	}
	u.log.Infow("user registered", "id", user.ID(), "email", user.Email())
	return user, nil
}

// FindUser returns the first registered user with email.
func (u *Usecase) FindUser(ctx context.Context, email string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email is required", entities.ErrInvalidArgument)
	}
	return u.repo.FindUserByEmail(ctx, email)
}

// ListUsers returns users in registration order.
func (u *Usecase) ListUsers(ctx context.Context) ([]*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListUsers(ctx)
}

// ImportUsers registers every valid record. Records that fail validation
// are skipped and reported; a storage error aborts the batch.
func (u *Usecase) ImportUsers(ctx context.Context, records []map[string]any) (entities.ImportResult, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	res := entities.ImportResult{Failed: make([]entities.ImportFailure, 0)}
	for i, rec := range records {
		user, err := u.factory.UserFromMap(rec)
		if err != nil {
			if !errors.Is(err, entities.ErrValidation) && !errors.Is(err, entities.ErrMissingField) {
				return res, err
			}
			u.log.Warnw("import record skipped", "index", i, "error", err)
			res.Failed = append(res.Failed, entities.ImportFailure{Index: i, Error: err.Error()})
			continue
		}
		if err := u.repo.AddUser(ctx, user); err != nil {
			return res, fmt.Errorf("add user %d: %w", i, err)
		}
		res.Imported++
	}

	u.log.Infow("users imported", "imported", res.Imported, "failed", len(res.Failed))
	return res, nil
}
