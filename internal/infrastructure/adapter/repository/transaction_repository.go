package repository

import (
	"context"

	"github.com/commupay/rewards-wallet/internal/domain/entity"
	errs "github.com/commupay/rewards-wallet/internal/domain/error"
	coreport "github.com/commupay/rewards-wallet/internal/domain/port/core"
	"github.com/commupay/rewards-wallet/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransactionRepository implements the TransactionRepository port using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToTransactionEntity converts a transaction model to an entity
func modelToTransactionEntity(txModel *model.Transaction) entity.Transaction {
	return entity.Transaction{
		ID:          txModel.ID,
		UserID:      txModel.UserID,
		Date:        txModel.Date,
		Description: txModel.Description,
		Amount:      txModel.Amount,
		IsPositive:  txModel.IsPositive,
	}
}

// Create inserts a new transaction and fills in the generated ID
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.logger.Debug("Creating transaction", map[string]any{
		"user_id": transaction.UserID,
		"date":    transaction.Date,
	})

	txModel := model.Transaction{
		UserID:      transaction.UserID,
		Date:        transaction.Date,
		Description: transaction.Description,
		Amount:      transaction.Amount,
		IsPositive:  transaction.IsPositive,
	}

	result := r.db.WithContext(ctx).Create(&txModel)
	if result.Error != nil {
		r.logger.Error("Database error when creating transaction", map[string]any{
			"user_id": transaction.UserID,
			"error":   result.Error.Error(),
		})
		return errs.NewStorageError("create transaction", result.Error)
	}

	transaction.ID = txModel.ID
	return nil
}

// ListByUser returns every transaction owned by the given user, ordered
// by date descending. Dates are YYYY-MM-DD text, so the lexical sort the
// database performs equals chronological descending.
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uint64) ([]entity.Transaction, error) {
	r.logger.Debug("Listing transactions", map[string]any{
		"user_id": userID,
	})

	var txModels []model.Transaction
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&txModels)

	if result.Error != nil {
		r.logger.Error("Database error when listing transactions", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, errs.NewStorageError("list transactions", result.Error)
	}

	transactions := make([]entity.Transaction, 0, len(txModels))
	for i := range txModels {
		transactions = append(transactions, modelToTransactionEntity(&txModels[i]))
	}

	return transactions, nil
}
