package entities

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFactoryCountsSuccessfulConstructions(t *testing.T) {
	f := NewFactory()

	_, err := f.NewUser("Alice", "alice@test.com", 25)
	require.NoError(t, err)
	_, err = f.UserFromMap(map[string]any{"name": "Bob", "email": "bob@test.com", "age": 30})
	require.NoError(t, err)
	_, err = f.NewUser("Eve", "broken", 30)
	require.Error(t, err)
	_, err = f.UserFromMap(map[string]any{"name": "Eve"})
	require.Error(t, err)

	require.Equal(t, int64(2), f.UsersCreated())
	require.Zero(t, f.AccountsCreated())

	_, err = f.NewAccount("ACC001", dec("1"), AccountSavings, "")
	require.NoError(t, err)
	_, err = f.NewAccount("ACC002", dec("-1"), AccountSavings, "")
	require.Error(t, err)
	require.Equal(t, int64(1), f.AccountsCreated())
}

func TestFactoriesAreIndependent(t *testing.T) {
	a, b := NewFactory(), NewFactory()

	_, err := a.UserFromInput(UserInput{Name: "Alice", Email: "alice@test.com", Age: 25})
	require.NoError(t, err)

	require.Equal(t, int64(1), a.UsersCreated())
	require.Zero(t, b.UsersCreated())
}
