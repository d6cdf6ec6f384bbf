// Package entities contains core business entities.
package entities

// Stats is a snapshot of repository contents and construction tallies.
type Stats struct {
	StoredUsers     int   `json:"stored_users"`
	StoredAccounts  int   `json:"stored_accounts"`
	UsersCreated    int64 `json:"users_created"`
	AccountsCreated int64 `json:"accounts_created"`
}
