package entities

import (
	"strings"

	"entity-registry/internal/validator"

	"github.com/shopspring/decimal"
)

// DefaultBankName is reported for every account.
const DefaultBankName = "Go Bank"

// AccountType enumerates supported account kinds.
type AccountType string

const (
	// AccountSavings is a savings account.
	AccountSavings AccountType = "SAVINGS"
	// AccountChecking is a checking account.
	AccountChecking AccountType = "CHECKING"
)

// Valid reports whether t is a known account type.
func (t AccountType) Valid() bool {
	return t == AccountSavings || t == AccountChecking
}

// Account is a bank account keyed by its number. The balance changes only
// through Deposit, Withdraw and Transfer, which keep it non-negative.
type Account struct {
	number     string
	balance    decimal.Decimal
	typ        AccountType
	cardNumber string
	cardType   validator.CardType
}

// AccountInput is the typed form of raw account data.
type AccountInput struct {
	Number      string          `mapstructure:"account_number" json:"account_number" yaml:"account_number"`
	Balance     decimal.Decimal `mapstructure:"balance" json:"balance" yaml:"balance"`
	AccountType string          `mapstructure:"account_type" json:"account_type" yaml:"account_type"`
	CardNumber  string          `mapstructure:"card_number" json:"card_number,omitempty" yaml:"card_number,omitempty"`
}

var accountRequiredKeys = []string{"account_number", "balance", "account_type"}

// NewAccount validates the fields and builds an Account. cardNumber may be
// empty; when set it must belong to a known card network.
func NewAccount(number string, balance decimal.Decimal, typ AccountType, cardNumber string) (*Account, error) {
	if strings.TrimSpace(number) == "" {
		return nil, invalid("account_number", "Invalid account number")
	}
	if !validator.IsNonNegative(balance) {
		return nil, invalid("balance", "Balance cannot be negative")
	}
	if !typ.Valid() {
		return nil, invalid("account_type", "Invalid account type")
	}

	acc := &Account{number: number, balance: balance, typ: typ}
	if cardNumber != "" {
		ct, ok := validator.IdentifyCard(cardNumber)
		if !ok {
			return nil, invalid("card_number", "Invalid card number")
		}
		acc.cardNumber = cardNumber
		acc.cardType = ct
	}
	return acc, nil
}

// AccountFromInput builds an Account from its typed input.
func AccountFromInput(in AccountInput) (*Account, error) {
	return NewAccount(in.Number, in.Balance, AccountType(strings.ToUpper(in.AccountType)), in.CardNumber)
}

// AccountFromMap decodes an untyped mapping with keys account_number,
// balance and account_type (card_number is optional).
func AccountFromMap(data map[string]any) (*Account, error) {
	var in AccountInput
	if err := decodeMap(data, accountRequiredKeys, &in); err != nil {
		return nil, err
	}
	return AccountFromInput(in)
}

// Number returns the lookup key.
func (a *Account) Number() string { return a.number }

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal { return a.balance }

// Type returns the account type.
func (a *Account) Type() AccountType { return a.typ }

// CardNumber returns the attached card number, if any.
func (a *Account) CardNumber() string { return a.cardNumber }

// CardType returns the network of the attached card, if any.
func (a *Account) CardType() validator.CardType { return a.cardType }

// BankName returns the bank holding the account.
func (a *Account) BankName() string { return DefaultBankName }

// Clone returns an independent copy.
func (a *Account) Clone() *Account {
	c := *a
	return &c
}

// Deposit adds a positive amount and returns the new balance.
func (a *Account) Deposit(amount decimal.Decimal) (decimal.Decimal, error) {
	if !validator.IsPositiveDecimal(amount) {
		return a.balance, invalid("amount", "Deposit amount must be positive")
	}
	a.balance = a.balance.Add(amount)
	return a.balance, nil
}

// Withdraw removes a positive amount not exceeding the balance.
func (a *Account) Withdraw(amount decimal.Decimal) (decimal.Decimal, error) {
	if !validator.IsPositiveDecimal(amount) {
		return a.balance, invalid("amount", "Withdraw amount must be positive")
	}
	if a.balance.LessThan(amount) {
		return a.balance, ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	return a.balance, nil
}

// Transfer moves amount to another account. Either both balances change or
// neither does.
func (a *Account) Transfer(amount decimal.Decimal, to *Account) error {
	if to == nil || to == a || to.number == a.number {
		return invalid("to_account", "Transfer target must be another account")
	}
	if amount.IsNegative() {
		return invalid("amount", "Transfer amount must be positive")
	}
	if a.balance.LessThan(amount) {
		return ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	to.balance = to.balance.Add(amount)
	return nil
}
