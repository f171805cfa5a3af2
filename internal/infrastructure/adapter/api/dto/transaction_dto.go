package dto

import "github.com/commupay/rewards-wallet/internal/domain/entity"

// TransactionResponse represents the API shape of a ledger entry. The
// amount stays a non-negative magnitude; clients derive sign and color
// from isPositive.
type TransactionResponse struct {
	ID          uint64  `json:"id"`
	UserID      uint64  `json:"userId"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	IsPositive  bool    `json:"isPositive"`
}

// NewTransactionResponse maps a transaction entity to its API shape
func NewTransactionResponse(tx *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          tx.ID,
		UserID:      tx.UserID,
		Date:        tx.Date,
		Description: tx.Description,
		Amount:      tx.Amount,
		IsPositive:  tx.IsPositive,
	}
}

// NewTransactionResponses maps a slice of entities, always returning a
// non-nil slice so an empty list serializes as [] rather than null.
func NewTransactionResponses(txs []entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for i := range txs {
		out = append(out, NewTransactionResponse(&txs[i]))
	}
	return out
}
