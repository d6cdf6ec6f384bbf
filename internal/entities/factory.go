package entities

import (
	"sync/atomic"

	"github.com/shopspring/decimal"
)

// Factory builds entities and counts every successful construction.
// The zero value is ready to use.
type Factory struct {
	users    atomic.Int64
	accounts atomic.Int64
}

// NewFactory returns an empty Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// NewUser wraps NewUser and counts the result.
func (f *Factory) NewUser(name, email string, age int) (*User, error) {
	return f.countUser(NewUser(name, email, age))
}

// UserFromMap wraps UserFromMap and counts the result.
func (f *Factory) UserFromMap(data map[string]any) (*User, error) {
	return f.countUser(UserFromMap(data))
}

// UserFromInput wraps UserFromInput and counts the result.
func (f *Factory) UserFromInput(in UserInput) (*User, error) {
	return f.countUser(UserFromInput(in))
}

// NewAccount wraps NewAccount and counts the result.
func (f *Factory) NewAccount(number string, balance decimal.Decimal, typ AccountType, cardNumber string) (*Account, error) {
	return f.countAccount(NewAccount(number, balance, typ, cardNumber))
}

// AccountFromMap wraps AccountFromMap and counts the result.
func (f *Factory) AccountFromMap(data map[string]any) (*Account, error) {
	return f.countAccount(AccountFromMap(data))
}

// UsersCreated returns the number of users built so far.
func (f *Factory) UsersCreated() int64 { return f.users.Load() }

// AccountsCreated returns the number of accounts built so far.
func (f *Factory) AccountsCreated() int64 { return f.accounts.Load() }

func (f *Factory) countUser(u *User, err error) (*User, error) {
	if err != nil {
		return nil, err
	}
	f.users.Add(1)
	return u, nil
}

func (f *Factory) countAccount(a *Account, err error) (*Account, error) {
	if err != nil {
		return nil, err
	}
	f.accounts.Add(1)
	return a, nil
}
