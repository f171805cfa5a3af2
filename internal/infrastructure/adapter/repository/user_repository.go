package repository

import (
	"context"
	"errors"

	"github.com/commupay/rewards-wallet/internal/domain/entity"
	errs "github.com/commupay/rewards-wallet/internal/domain/error"
	coreport "github.com/commupay/rewards-wallet/internal/domain/port/core"
	"github.com/commupay/rewards-wallet/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserRepository implements the UserRepository port using GORM
type UserRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to an entity
func modelToUserEntity(userModel *model.User) *entity.User {
	return &entity.User{
		ID:         userModel.ID,
		Name:       userModel.Name,
		Email:      userModel.Email,
		Balance:    userModel.Balance,
		BTCBalance: userModel.BTCBalance,
	}
}

// FindByEmail retrieves the user whose email exactly matches the given key
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.logger.Debug("Finding user by email", map[string]any{
		"email": email,
	})

	var userModel model.User
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		r.logger.Error("Database error when finding user", map[string]any{
			"email": email,
			"error": result.Error.Error(),
		})
		return nil, errs.NewStorageError("find user by email", result.Error)
	}

	return modelToUserEntity(&userModel), nil
}

// Create inserts a new user and fills in the generated ID
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.logger.Debug("Creating user", map[string]any{
		"email": user.Email,
	})

	userModel := model.User{
		Name:       user.Name,
		Email:      user.Email,
		Balance:    user.Balance,
		BTCBalance: user.BTCBalance,
	}

	result := r.db.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate email on user insert", map[string]any{
				"email": user.Email,
			})
			return errs.ErrDuplicateEmail
		}
		r.logger.Error("Database error when creating user", map[string]any{
			"email": user.Email,
			"error": result.Error.Error(),
		})
		return errs.NewStorageError("create user", result.Error)
	}

	user.ID = userModel.ID

	r.logger.Info("User created", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return nil
}
