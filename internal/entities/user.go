// Package entities contains core business entities.
package entities

import (
	"time"

	"entity-registry/internal/validator"

	"github.com/google/uuid"
)

const (
	reasonInvalidEmail  = "Invalid email"
	reasonInvalidNumber = "Invalid number"
)

// User is a validated registry member. Fields are only readable; a User
// that exists has passed validation.
type User struct {
	id        uuid.UUID
	name      string
	email     string
	age       int
	createdAt time.Time
}

// UserInput is the typed form of raw user data.
type UserInput struct {
	Name  string `mapstructure:"name" json:"name" yaml:"name"`
	Email string `mapstructure:"email" json:"email" yaml:"email"`
	Age   int    `mapstructure:"age" json:"age" yaml:"age"`
}

var userRequiredKeys = []string{"name", "email", "age"}

// NewUser validates the fields and builds a User.
func NewUser(name, email string, age int) (*User, error) {
	if !validator.IsValidEmail(email) {
		return nil, invalid("email", reasonInvalidEmail)
	}
	if !validator.IsPositive(age) {
		return nil, invalid("age", reasonInvalidNumber)
	}

	return &User{
		id:        uuid.New(),
		name:      name,
		email:     email,
		age:       age,
		createdAt: time.Now().UTC(),
	}, nil
}

// UserFromInput builds a User from its typed input.
func UserFromInput(in UserInput) (*User, error) {
	return NewUser(in.Name, in.Email, in.Age)
}

// UserFromMap decodes an untyped mapping with keys name, email and age.
func UserFromMap(data map[string]any) (*User, error) {
	var in UserInput
	if err := decodeMap(data, userRequiredKeys, &in); err != nil {
		return nil, err
	}
	return UserFromInput(in)
}

// RestoreUser rebuilds a User read back from storage without generating
// a new identity. Fields are validated again.
func RestoreUser(id uuid.UUID, name, email string, age int, createdAt time.Time) (*User, error) {
	u, err := NewUser(name, email, age)
	if err != nil {
		return nil, err
	}
	u.id = id
	u.createdAt = createdAt
	return u, nil
}

// ID returns the identity assigned at construction.
func (u *User) ID() uuid.UUID { return u.id }

// Name returns the user name.
func (u *User) Name() string { return u.name }

// Email returns the lookup key.
func (u *User) Email() string { return u.email }

// Age returns the user age.
func (u *User) Age() int { return u.age }

// CreatedAt returns the construction time in UTC.
func (u *User) CreatedAt() time.Time { return u.createdAt }
