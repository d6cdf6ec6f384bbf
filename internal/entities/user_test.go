package entities

import (
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNewUserValid(t *testing.T) {
	inputs := []struct {
		name  string
		email string
		age   int
	}{
		{"Alice", "alice@test.com", 25},
		{"", "a@b.c", 1},
		{"Bob Jr.", "bob.jr@mail.example.org", 120},
	}

	for _, in := range inputs {
		u, err := NewUser(in.name, in.email, in.age)
		require.NoError(t, err)
		require.Equal(t, in.name, u.Name())
		require.Equal(t, in.email, u.Email())
		require.Equal(t, in.age, u.Age())
		require.NotEqual(t, uuid.Nil, u.ID())
		require.False(t, u.CreatedAt().IsZero())
	}
}

func TestNewUserRejectsNonPositiveAge(t *testing.T) {
	for _, age := range []int{0, -1, -100} {
		u, err := NewUser("Alice", "alice@test.com", age)
		require.Nil(t, u)
		require.ErrorIs(t, err, ErrValidation)

		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		require.Equal(t, "age", vErr.Field)
		require.Equal(t, "Invalid number", vErr.Reason)
	}
}

func TestNewUserRejectsBadEmail(t *testing.T) {
	for _, email := range []string{"alice.test.com", "alice@test", "", "plain"} {
		u, err := NewUser("Alice", email, 25)
		require.Nil(t, u)
		require.ErrorIs(t, err, ErrValidation)

		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		require.Equal(t, "Invalid email", vErr.Reason)
	}
}

func TestUserFromMap(t *testing.T) {
	u, err := UserFromMap(map[string]any{"name": "Alice", "email": "alice@test.com", "age": 25})
	require.NoError(t, err)
	require.Equal(t, "Alice", u.Name())
	require.Equal(t, "alice@test.com", u.Email())
	require.Equal(t, 25, u.Age())
}

func TestUserFromMapJSONNumber(t *testing.T) {
	u, err := UserFromMap(map[string]any{"name": "Alice", "email": "alice@test.com", "age": float64(30)})
	require.NoError(t, err)
	require.Equal(t, 30, u.Age())

	_, err = UserFromMap(map[string]any{"name": "Alice", "email": "alice@test.com", "age": 30.5})
	require.ErrorIs(t, err, ErrValidation)
}

func TestUserFromMapMissingField(t *testing.T) {
	tests := []struct {
		name    string
		data    map[string]any
		missing string
	}{
		{name: "no_name", data: map[string]any{"email": "a@b.c", "age": 1}, missing: "name"},
		{name: "no_email", data: map[string]any{"name": "A", "age": 1}, missing: "email"},
		{name: "no_age", data: map[string]any{"name": "A", "email": "a@b.c"}, missing: "age"},
		{name: "empty", data: map[string]any{}, missing: "name"},
		{name: "nil", data: nil, missing: "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := UserFromMap(tt.data)
			require.Nil(t, u)
			require.ErrorIs(t, err, ErrMissingField)
			require.NotErrorIs(t, err, ErrValidation)

			var mErr *MissingFieldError
			require.True(t, errors.As(err, &mErr))
			require.Equal(t, tt.missing, mErr.Field)
		})
	}
}

func TestUserFromMapPresenceBeforeValidation(t *testing.T) {
	_, err := UserFromMap(map[string]any{"email": "invalid", "age": -1})
	require.ErrorIs(t, err, ErrMissingField)
}

func TestUserFromMapInvalidValues(t *testing.T) {
	_, err := UserFromMap(map[string]any{"name": "Bob", "email": "invalid-email", "age": 30})
	require.ErrorIs(t, err, ErrValidation)

	_, err = UserFromMap(map[string]any{"name": "Bob", "email": "bob@test.com", "age": "thirty"})
	require.ErrorIs(t, err, ErrValidation)
}

func TestUserFromMapAgeOutOfIntRange(t *testing.T) {
	for _, age := range []float64{1e19, math.Pow(2, 63), -1e19, math.Inf(1)} {
		u, err := UserFromMap(map[string]any{"name": "Bob", "email": "bob@test.com", "age": age})
		require.Nil(t, u, "age %v", age)
		require.ErrorIs(t, err, ErrValidation, "age %v", age)
	}
}

func TestRestoreUserKeepsIdentity(t *testing.T) {
	orig, err := NewUser("Alice", "alice@test.com", 25)
	require.NoError(t, err)

	restored, err := RestoreUser(orig.ID(), orig.Name(), orig.Email(), orig.Age(), orig.CreatedAt())
	require.NoError(t, err)
	require.Equal(t, orig.ID(), restored.ID())
	require.Equal(t, orig.CreatedAt(), restored.CreatedAt())

	_, err = RestoreUser(orig.ID(), "Alice", "broken", 25, orig.CreatedAt())
	require.ErrorIs(t, err, ErrValidation)
}
