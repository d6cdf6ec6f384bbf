// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"entity-registry/internal/entities"
	"entity-registry/internal/transport/http/dto"
)

// ToDTOUser maps entities.User to transport model.
func ToDTOUser(u *entities.User) dto.User {
	return dto.User{
		ID:        u.ID().String(),
		Name:      u.Name(),
		Email:     u.Email(),
		Age:       u.Age(),
		CreatedAt: u.CreatedAt(),
	}
}

// ToDTOUserList maps a slice of users preserving order.
func ToDTOUserList(list []*entities.User) []dto.User {
	res := make([]dto.User, 0, len(list))
	for _, u := range list {
		res = append(res, ToDTOUser(u))
	}
	return res
}

// ToDTOAccount maps entities.Account to transport model.
func ToDTOAccount(a *entities.Account) dto.Account {
	return dto.Account{
		Number:      a.Number(),
		Balance:     a.Balance(),
		AccountType: string(a.Type()),
		CardType:    string(a.CardType()),
		BankName:    a.BankName(),
	}
}

// ToDTOAccountList maps a slice of accounts preserving order.
func ToDTOAccountList(list []*entities.Account) []dto.Account {
	res := make([]dto.Account, 0, len(list))
	for _, a := range list {
		res = append(res, ToDTOAccount(a))
	}
	return res
}
