package handler

import (
	"net/http"

	domainerr "github.com/commupay/rewards-wallet/internal/domain/error"
	coreport "github.com/commupay/rewards-wallet/internal/domain/port/core"
	"github.com/commupay/rewards-wallet/internal/domain/usecase/session"
	"github.com/commupay/rewards-wallet/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// SessionHandler exposes the session controller over HTTP
type SessionHandler struct {
	sessions *session.Controller
	logger   coreport.Logger
}

// NewSessionHandler creates a new session handler instance
func NewSessionHandler(sessions *session.Controller, logger coreport.Logger) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		logger:   logger,
	}
}

// Login handles POST /session/login. A hit returns the user profile; a
// miss returns 204 with no body, carrying the original clients' silent
// failure across the wire. Only storage failures produce an error payload.
func (h *SessionHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid login request",
		})
		return
	}

	user, err := h.sessions.Login(c.Request.Context(), req.Email)
	if err != nil {
		h.logger.Error("Login failed", map[string]any{
			"email": req.Email,
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Storage unavailable",
		})
		return
	}

	if user == nil {
		// Unknown email: no state change and no error message.
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// Logout handles POST /session/logout
func (h *SessionHandler) Logout(c *gin.Context) {
	h.sessions.Logout()
	c.Status(http.StatusNoContent)
}

// Current handles GET /session, reporting the session state
func (h *SessionHandler) Current(c *gin.Context) {
	user, loggedIn := h.sessions.CurrentUser()

	resp := dto.SessionResponse{LoggedIn: loggedIn}
	if loggedIn {
		u := dto.NewUserResponse(user)
		resp.User = &u
	}

	c.JSON(http.StatusOK, resp)
}
