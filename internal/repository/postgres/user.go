package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entity-registry/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	insertUserQuery   = `INSERT INTO users(id, name, email, age, created_at) VALUES ($1,$2,$3,$4,$5)`
	selectUserByEmail = `SELECT id, name, email, age, created_at FROM users WHERE email=$1 ORDER BY seq LIMIT 1`
	selectUsersQuery  = `SELECT id, name, email, age, created_at FROM users ORDER BY seq`
	countUsersQuery   = `SELECT COUNT(*) FROM users`
)

// AddUser appends a user row; seq preserves insertion order.
func (p *Postgres) AddUser(ctx context.Context, user *entities.User) error {
	if _, err := p.db.Exec(ctx, insertUserQuery,
		user.ID(), user.Name(), user.Email(), user.Age(), user.CreatedAt()); err != nil {
		p.log.Errorw("failed to insert user", "error", err, "email", user.Email())
		return fmt.Errorf("insert user: %w", err)
	}
	p.log.Debugw("user added", "id", user.ID(), "email", user.Email())
	return nil
}

// FindUserByEmail returns the earliest inserted user with email.
func (p *Postgres) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	u, err := scanUser(p.db.QueryRow(ctx, selectUserByEmail, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		p.log.Errorw("failed to select user", "error", err, "email", email)
		return nil, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}

// ListUsers returns all users ordered by insertion.
func (p *Postgres) ListUsers(ctx context.Context) ([]*entities.User, error) {
	rows, err := p.db.Query(ctx, selectUsersQuery)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]*entities.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			p.log.Errorw("failed to scan user", "error", err)
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

// CountUsers returns the number of stored users.
func (p *Postgres) CountUsers(ctx context.Context) (int, error) {
	var n int
	if err := p.db.QueryRow(ctx, countUsersQuery).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var (
		id        uuid.UUID
		name      string
		email     string
		age       int
		createdAt time.Time
	)
	if err := row.Scan(&id, &name, &email, &age, &createdAt); err != nil {
		return nil, err
	}
	return entities.RestoreUser(id, name, email, age, createdAt.UTC())
}
