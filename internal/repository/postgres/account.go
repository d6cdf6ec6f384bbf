package postgres

import (
	"context"
	"errors"
	"fmt"

	"entity-registry/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

const (
	insertAccountQuery   = `INSERT INTO accounts(number, balance, account_type, card_number) VALUES ($1,$2::numeric,$3,$4)`
	selectAccountColumns = `SELECT number, balance::text, account_type, card_number FROM accounts`
	selectAccountByNum   = selectAccountColumns + ` WHERE number=$1 ORDER BY seq LIMIT 1`
	selectAccountsQuery  = selectAccountColumns + ` ORDER BY seq`
	countAccountsQuery   = `SELECT COUNT(*) FROM accounts`
	updateBalanceQuery   = `
UPDATE accounts SET balance = $2::numeric
WHERE seq = (SELECT seq FROM accounts WHERE number=$1 ORDER BY seq LIMIT 1)`

	checkViolation = "23514"
)

// AddAccount appends an account row.
func (p *Postgres) AddAccount(ctx context.Context, acc *entities.Account) error {
	if _, err := p.db.Exec(ctx, insertAccountQuery,
		acc.Number(), acc.Balance().String(), string(acc.Type()), acc.CardNumber()); err != nil {
		p.log.Errorw("failed to insert account", "error", err, "account_number", acc.Number())
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// FindAccountByNumber returns the earliest inserted account with number.
func (p *Postgres) FindAccountByNumber(ctx context.Context, number string) (*entities.Account, error) {
	acc, err := scanAccount(p.db.QueryRow(ctx, selectAccountByNum, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrAccountNotFound
		}
		p.log.Errorw("failed to select account", "error", err, "account_number", number)
		return nil, fmt.Errorf("find account: %w", err)
	}
	return acc, nil
}

// ListAccounts returns all accounts ordered by insertion.
func (p *Postgres) ListAccounts(ctx context.Context) ([]*entities.Account, error) {
	rows, err := p.db.Query(ctx, selectAccountsQuery)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	res := make([]*entities.Account, 0)
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		res = append(res, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}
	return res, nil
}

// CountAccounts returns the number of stored accounts.
func (p *Postgres) CountAccounts(ctx context.Context) (int, error) {
	var n int
	if err := p.db.QueryRow(ctx, countAccountsQuery).Scan(&n); err != nil {
		return 0, fmt.Errorf("count accounts: %w", err)
	}
	return n, nil
}

// SaveBalances updates all balances in one transaction.
func (p *Postgres) SaveBalances(ctx context.Context, accounts ...*entities.Account) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, acc := range accounts {
		tag, err := tx.Exec(ctx, updateBalanceQuery, acc.Number(), acc.Balance().String())
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == checkViolation {
				return entities.ErrInsufficientFunds
			}
			p.log.Errorw("failed to update balance", "error", err, "account_number", acc.Number())
			return fmt.Errorf("update balance: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return entities.ErrAccountNotFound
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}
	p.log.Infow("balances saved", "accounts", len(accounts))
	return nil
}

func scanAccount(row pgx.Row) (*entities.Account, error) {
	var number, balance, typ, card string
	if err := row.Scan(&number, &balance, &typ, &card); err != nil {
		return nil, err
	}
	bal, err := decimal.NewFromString(balance)
	if err != nil {
		return nil, fmt.Errorf("parse balance %q: %w", balance, err)
	}
	return entities.NewAccount(number, bal, entities.AccountType(typ), card)
}
