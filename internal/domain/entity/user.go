package entity

import (
	errs "github.com/commupay/rewards-wallet/internal/domain/error"
)

// User represents a wallet account holder. Balances are read-only at
// runtime; they are set when the record store is seeded and never mutated
// by any operation, so no non-negativity invariant is enforced.
type User struct {
	ID         uint64  // Unique identifier, assigned by the store on insert
	Name       string  // Display name
	Email      string  // Unique lookup key, matched bytewise
	Balance    float64 // Cash balance in the wallet currency
	BTCBalance float64 // Secondary crypto balance
}

// NewUser creates a user record ready for insertion. The ID is left zero
// and filled in by the repository.
func NewUser(name, email string, balance, btcBalance float64) (*User, error) {
	if name == "" {
		return nil, errs.ErrInvalidName
	}
	if email == "" {
		return nil, errs.ErrInvalidEmail
	}

	return &User{
		Name:       name,
		Email:      email,
		Balance:    balance,
		BTCBalance: btcBalance,
	}, nil
}
