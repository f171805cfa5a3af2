package dto

// LoginRequest carries the single credential the demo accepts
type LoginRequest struct {
	Email string `json:"email" binding:"required"`
}

// SessionResponse reports the current session state
type SessionResponse struct {
	LoggedIn bool          `json:"loggedIn"`
	User     *UserResponse `json:"user,omitempty"`
}

// DashboardResponse bundles everything the dashboard screen renders
type DashboardResponse struct {
	User         UserResponse          `json:"user"`
	Transactions []TransactionResponse `json:"transactions"`
}
