package handler

import (
	"net/http"
	"strconv"

	domainerr "github.com/commupay/rewards-wallet/internal/domain/error"
	coreport "github.com/commupay/rewards-wallet/internal/domain/port/core"
	"github.com/commupay/rewards-wallet/internal/domain/port/usecase"
	"github.com/commupay/rewards-wallet/internal/domain/usecase/session"
	"github.com/commupay/rewards-wallet/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// WalletHandler serves the dashboard data: profile, balances, and the
// transaction list.
type WalletHandler struct {
	store    usecase.RecordStore
	sessions *session.Controller
	logger   coreport.Logger
}

// NewWalletHandler creates a new wallet handler instance
func NewWalletHandler(
	store usecase.RecordStore,
	sessions *session.Controller,
	logger coreport.Logger,
) *WalletHandler {
	return &WalletHandler{
		store:    store,
		sessions: sessions,
		logger:   logger,
	}
}

// Dashboard handles GET /dashboard. Requires a logged-in session; returns
// the current user's profile and transactions together, the way both
// client dashboards render them.
func (h *WalletHandler) Dashboard(c *gin.Context) {
	user, loggedIn := h.sessions.CurrentUser()
	if !loggedIn {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Not logged in",
		})
		return
	}

	transactions, err := h.store.ListTransactionsForUser(c.Request.Context(), user.ID)
	if err != nil {
		h.logger.Error("Error loading dashboard", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Storage unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, dto.DashboardResponse{
		User:         dto.NewUserResponse(user),
		Transactions: dto.NewTransactionResponses(transactions),
	})
}

// ListTransactions handles GET /user/:userId/transactions
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	userIDParam := c.Param("userId")
	userID, err := strconv.ParseUint(userIDParam, 10, 64)
	if err != nil || userID == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidUserID),
			Message: "Invalid user ID format",
		})
		return
	}

	transactions, err := h.store.ListTransactionsForUser(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Error listing transactions", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Storage unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponses(transactions))
}
