package entity

import (
	errs "github.com/commupay/rewards-wallet/internal/domain/error"
)

// Transaction is a single rewards ledger entry belonging to one user.
//
// Amount is a non-negative magnitude; whether the entry is a credit or a
// debit is carried separately in IsPositive. Date is stored verbatim as
// YYYY-MM-DD text and only ever sorted lexically, which for that format
// equals chronological order.
type Transaction struct {
	ID          uint64  // Unique identifier, assigned by the store on insert
	UserID      uint64  // Owning user
	Date        string  // YYYY-MM-DD, never parsed
	Description string  // Free text shown on the dashboard
	Amount      float64 // Non-negative magnitude
	IsPositive  bool    // true = credit, false = debit
}

// NewTransaction creates a ledger entry ready for insertion. The ID is
// left zero and filled in by the repository.
func NewTransaction(userID uint64, date, description string, amount float64, isPositive bool) (*Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if date == "" {
		return nil, errs.ErrInvalidDate
	}
	if description == "" {
		return nil, errs.ErrInvalidDescription
	}
	if amount < 0 {
		return nil, errs.ErrNegativeAmount
	}

	return &Transaction{
		UserID:      userID,
		Date:        date,
		Description: description,
		Amount:      amount,
		IsPositive:  isPositive,
	}, nil
}

// SignedAmount returns the amount with the sign implied by IsPositive.
// Display-only helper; the stored magnitude itself is never negative.
func (t *Transaction) SignedAmount() float64 {
	if t.IsPositive {
		return t.Amount
	}
	return -t.Amount
}

// IsCredit reports whether this entry increases the displayed balance.
func (t *Transaction) IsCredit() bool {
	return t.IsPositive
}

// IsDebit reports whether this entry decreases the displayed balance.
func (t *Transaction) IsDebit() bool {
	return !t.IsPositive
}
