package entity

import "time"

type Account struct {
	Username  string    `db:"username"`
	Password  string    `db:"password"`
	CreatedAt time.Time `db:"created_at"`
}

// AccountHandle identifies an authenticated account. It is the only thing the
// ledger needs to know about the caller.
type AccountHandle struct {
	Username string `json:"username"`
}

func (a Account) Handle() AccountHandle {
	return AccountHandle{Username: a.Username}
}

func DemoAccounts() []Account {
	return []Account{
		{Username: "admin", Password: "admin@123"},
		{Username: "user1", Password: "password123"},
	}
}
