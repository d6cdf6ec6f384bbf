package memory

import (
	"context"
	"fmt"
	"testing"

	"entity-registry/internal/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRepo(t *testing.T) *Memory {
	t.Helper()
	m := New(zap.NewNop().Sugar())
	require.NoError(t, m.OnStart(context.Background()))
	t.Cleanup(func() { _ = m.OnStop(context.Background()) })
	return m
}

func mustUser(t *testing.T, name, email string, age int) *entities.User {
	t.Helper()
	u, err := entities.NewUser(name, email, age)
	require.NoError(t, err)
	return u
}

func mustAccount(t *testing.T, number, balance string) *entities.Account {
	t.Helper()
	a, err := entities.NewAccount(number, decimal.RequireFromString(balance), entities.AccountSavings, "")
	require.NoError(t, err)
	return a
}

func TestFindUserOnEmptyRepository(t *testing.T) {
	m := newRepo(t)
	for _, email := range []string{"", "alice@test.com", "x"} {
		u, err := m.FindUserByEmail(context.Background(), email)
		require.Nil(t, u)
		require.ErrorIs(t, err, entities.ErrUserNotFound)
	}
}

func TestAddAndFindUser(t *testing.T) {
	ctx := context.Background()
	m := newRepo(t)

	u, err := entities.UserFromMap(map[string]any{"name": "Alice", "email": "alice@test.com", "age": 25})
	require.NoError(t, err)
	require.NoError(t, m.AddUser(ctx, u))

	found, err := m.FindUserByEmail(ctx, "alice@test.com")
	require.NoError(t, err)
	require.Same(t, u, found)

	_, err = m.FindUserByEmail(ctx, "bob@test.com")
	require.ErrorIs(t, err, entities.ErrUserNotFound)
}

func TestFindUserFirstMatchWithDuplicates(t *testing.T) {
	ctx := context.Background()
	m := newRepo(t)

	first := mustUser(t, "First", "dup@test.com", 20)
	second := mustUser(t, "Second", "dup@test.com", 30)
	other := mustUser(t, "Other", "other@test.com", 40)

	for _, u := range []*entities.User{first, other, second} {
		require.NoError(t, m.AddUser(ctx, u))
	}

	found, err := m.FindUserByEmail(ctx, "dup@test.com")
	require.NoError(t, err)
	require.Same(t, first, found)

	n, err := m.CountUsers(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestListUsersKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	m := newRepo(t)

	var want []*entities.User
	for i := 1; i <= 5; i++ {
		u := mustUser(t, fmt.Sprintf("user%d", i), fmt.Sprintf("u%d@test.com", i), i)
		want = append(want, u)
		require.NoError(t, m.AddUser(ctx, u))
	}

	got, err := m.ListUsers(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got)

	got[0] = nil
	again, err := m.ListUsers(ctx)
	require.NoError(t, err)
	require.Same(t, want[0], again[0])
}

func TestAccountsAreStoredAsCopies(t *testing.T) {
	ctx := context.Background()
	m := newRepo(t)

	acc := mustAccount(t, "ACC001", "100")
	require.NoError(t, m.AddAccount(ctx, acc))

	_, err := acc.Deposit(decimal.NewFromInt(50))
	require.NoError(t, err)

	stored, err := m.FindAccountByNumber(ctx, "ACC001")
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(100).Equal(stored.Balance()))

	require.NoError(t, m.SaveBalances(ctx, acc))
	stored, err = m.FindAccountByNumber(ctx, "ACC001")
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(150).Equal(stored.Balance()))
}

func TestSaveBalancesAllOrNothing(t *testing.T) {
	ctx := context.Background()
	m := newRepo(t)

	a := mustAccount(t, "ACC001", "100")
	require.NoError(t, m.AddAccount(ctx, a))

	ghost := mustAccount(t, "ACC404", "0")
	require.NoError(t, a.Transfer(decimal.NewFromInt(40), ghost))

	err := m.SaveBalances(ctx, a, ghost)
	require.ErrorIs(t, err, entities.ErrAccountNotFound)

	stored, err := m.FindAccountByNumber(ctx, "ACC001")
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(100).Equal(stored.Balance()))
}

func TestAccountFirstMatch(t *testing.T) {
	ctx := context.Background()
	m := newRepo(t)

	require.NoError(t, m.AddAccount(ctx, mustAccount(t, "ACC001", "1")))
	require.NoError(t, m.AddAccount(ctx, mustAccount(t, "ACC001", "2")))

	found, err := m.FindAccountByNumber(ctx, "ACC001")
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(1).Equal(found.Balance()))

	list, err := m.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	n, err := m.CountAccounts(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	_, err = m.FindAccountByNumber(ctx, "ACC999")
	require.ErrorIs(t, err, entities.ErrAccountNotFound)
}
