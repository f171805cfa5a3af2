package dto

import "github.com/commupay/rewards-wallet/internal/domain/entity"

// UserResponse represents the API shape of a user profile
type UserResponse struct {
	ID         uint64  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Balance    float64 `json:"balance"`
	BTCBalance float64 `json:"btcBalance"`
}

// NewUserResponse maps a user entity to its API shape
func NewUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Balance:    user.Balance,
		BTCBalance: user.BTCBalance,
	}
}
