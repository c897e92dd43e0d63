package models

import "github.com/google/uuid"

// Account represents a trading profile or funded-account environment.
// Trades are partitioned per account; deleting an account cascades to its
// trades.
type Account struct {
	ID       string
	Name     string
	Type     string // size/tier label, e.g. "50K Rhythmic"
	Provider string
}

// NewAccountID returns a fresh unique account identifier.
func NewAccountID() string {
	return "acc_" + uuid.NewString()
}
