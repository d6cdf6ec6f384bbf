// Package domain contains application services orchestrating domain logic by account.
package domain

import (
	"context"
	"fmt"
	"strings"

	"entity-registry/internal/entities"

	"github.com/shopspring/decimal"
)

// OpenAccount builds an account from raw input and stores it.
func (u *Usecase) OpenAccount(ctx context.Context, data map[string]any) (*entities.Account, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	acc, err := u.factory.AccountFromMap(data)
	if err != nil {
		u.log.Infow("account rejected", "error", err)
		return nil, err
	}
	if err := u.repo.AddAccount(ctx, acc); err != nil {
		return nil, fmt.Errorf("add account: %w", err)
	}
	u.log.Infow("account opened", "account_number", acc.Number(), "type", acc.Type())
	return acc, nil
}

// Account returns the first account with number.
func (u *Usecase) Account(ctx context.Context, number string) (*entities.Account, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if strings.TrimSpace(number) == "" {
		return nil, fmt.Errorf("%w: account_number is required", entities.ErrInvalidArgument)
	}
	return u.repo.FindAccountByNumber(ctx, number)
}

// ListAccounts returns accounts in opening order.
func (u *Usecase) ListAccounts(ctx context.Context) ([]*entities.Account, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListAccounts(ctx)
}

// Deposit adds amount to the account balance.
func (u *Usecase) Deposit(ctx context.Context, number string, amount decimal.Decimal) (*entities.Account, error) {
	return u.updateBalance(ctx, number, func(acc *entities.Account) error {
		_, err := acc.Deposit(amount)
		return err
	})
}

// Withdraw removes amount from the account balance.
func (u *Usecase) Withdraw(ctx context.Context, number string, amount decimal.Decimal) (*entities.Account, error) {
	return u.updateBalance(ctx, number, func(acc *entities.Account) error {
		_, err := acc.Withdraw(amount)
		return err
	})
}

// Transfer moves amount between two accounts and returns both updated.
func (u *Usecase) Transfer(ctx context.Context, from, to string, amount decimal.Decimal) (*entities.Account, *entities.Account, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if from == "" || to == "" {
		return nil, nil, fmt.Errorf("%w: from and to are required", entities.ErrInvalidArgument)
	}
	if from == to {
		return nil, nil, fmt.Errorf("%w: cannot transfer to the same account", entities.ErrInvalidArgument)
	}

	u.balanceMu.Lock()
	defer u.balanceMu.Unlock()

	src, err := u.repo.FindAccountByNumber(ctx, from)
	if err != nil {
		return nil, nil, err
	}
	dst, err := u.repo.FindAccountByNumber(ctx, to)
	if err != nil {
		return nil, nil, err
	}

	if err := src.Transfer(amount, dst); err != nil {
		u.log.Infow("transfer rejected", "from", from, "to", to, "amount", amount, "error", err)
		return nil, nil, err
	}
	if err := u.repo.SaveBalances(ctx, src, dst); err != nil {
		return nil, nil, fmt.Errorf("save balances: %w", err)
	}

	u.log.Infow("transfer done", "from", from, "to", to, "amount", amount)
	return src, dst, nil
}

func (u *Usecase) updateBalance(ctx context.Context, number string, apply func(*entities.Account) error) (*entities.Account, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if strings.TrimSpace(number) == "" {
		return nil, fmt.Errorf("%w: account_number is required", entities.ErrInvalidArgument)
	}

	u.balanceMu.Lock()
	defer u.balanceMu.Unlock()

	acc, err := u.repo.FindAccountByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if err := apply(acc); err != nil {
		return nil, err
	}
	if err := u.repo.SaveBalances(ctx, acc); err != nil {
		return nil, fmt.Errorf("save balance: %w", err)
	}
	u.log.Infow("balance updated", "account_number", number, "balance", acc.Balance())
	return acc, nil
}
