// Package memory implements the repository as ordered in-process slices.
package memory

import (
	"context"
	"sync"

	"entity-registry/internal/entities"

	"go.uber.org/zap"
)

// Memory keeps entities in insertion order. Duplicate keys are allowed and
// lookups scan from the oldest entry, so the first insert wins.
type Memory struct {
	log *zap.SugaredLogger

	mu       sync.RWMutex
	users    []*entities.User
	accounts []*entities.Account
}

// New creates an empty in-memory repository.
func New(log *zap.SugaredLogger) *Memory {
	return &Memory{log: log.Named("repo.memory")}
}

// OnStart is a no-op.
func (m *Memory) OnStart(_ context.Context) error {
	m.log.Infow("memory repository ready")
	return nil
}

// OnStop is a no-op; contents live until the process exits.
func (m *Memory) OnStop(_ context.Context) error {
	return nil
}

// AddUser appends user. Users are immutable, so the pointer is stored as is.
func (m *Memory) AddUser(_ context.Context, user *entities.User) error {
	m.mu.Lock()
	m.users = append(m.users, user)
	n := len(m.users)
	m.mu.Unlock()

	m.log.Debugw("user added", "email", user.Email(), "stored", n)
	return nil
}

// FindUserByEmail returns the first user added with email.
func (m *Memory) FindUserByEmail(_ context.Context, email string) (*entities.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

// ListUsers returns users in insertion order.
func (m *Memory) ListUsers(_ context.Context) ([]*entities.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := make([]*entities.User, len(m.users))
	copy(res, m.users)
	return res, nil
}

// CountUsers returns the number of stored users.
func (m *Memory) CountUsers(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.users), nil
}

// AddAccount appends a copy of acc.
func (m *Memory) AddAccount(_ context.Context, acc *entities.Account) error {
	m.mu.Lock()
	m.accounts = append(m.accounts, acc.Clone())
	n := len(m.accounts)
	m.mu.Unlock()

	m.log.Debugw("account added", "account_number", acc.Number(), "stored", n)
	return nil
}

// FindAccountByNumber returns a copy of the first account with number.
func (m *Memory) FindAccountByNumber(_ context.Context, number string) (*entities.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if i := m.accountIndex(number); i >= 0 {
		return m.accounts[i].Clone(), nil
	}
	return nil, entities.ErrAccountNotFound
}

// ListAccounts returns copies of all accounts in insertion order.
func (m *Memory) ListAccounts(_ context.Context) ([]*entities.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := make([]*entities.Account, 0, len(m.accounts))
	for _, a := range m.accounts {
		res = append(res, a.Clone())
	}
	return res, nil
}

// CountAccounts returns the number of stored accounts.
func (m *Memory) CountAccounts(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.accounts), nil
}

// SaveBalances replaces the stored copies of accounts. Nothing is written
// unless every account is found.
func (m *Memory) SaveBalances(_ context.Context, accounts ...*entities.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := make([]int, len(accounts))
	for i, a := range accounts {
		idx[i] = m.accountIndex(a.Number())
		if idx[i] < 0 {
			return entities.ErrAccountNotFound
		}
	}
	for i, a := range accounts {
		m.accounts[idx[i]] = a.Clone()
	}
	return nil
}

func (m *Memory) accountIndex(number string) int {
	for i, a := range m.accounts {
		if a.Number() == number {
			return i
		}
	}
	return -1
}
