package models

import "time"

// WalletDB represents a settlement wallet row in the database.
// Balances are stored as NUMERIC(78,0) and carried as decimal strings.
type WalletDB struct {
	Address   string    `json:"address" db:"address"`       // Owner address, hex encoded
	Balance   string    `json:"balance" db:"balance"`       // Current balance in base units
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Timestamp when the wallet was created
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Timestamp of the last wallet update
}
