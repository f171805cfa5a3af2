package session

import (
	"context"
	"sync"

	"github.com/commupay/rewards-wallet/internal/domain/entity"
	errs "github.com/commupay/rewards-wallet/internal/domain/error"
	coreport "github.com/commupay/rewards-wallet/internal/domain/port/core"
	"github.com/commupay/rewards-wallet/internal/domain/port/usecase"
)

// State is the session machine state: logged out or logged in.
type State int

const (
	// StateLoggedOut is the initial state; no user reference is held.
	StateLoggedOut State = iota
	// StateLoggedIn holds exactly one authenticated user.
	StateLoggedIn
)

// Observer receives session state transitions. The user is nil when the
// new state is StateLoggedOut.
type Observer func(state State, user *entity.User)

// Controller tracks which user, if any, is currently authenticated.
// State lives only in memory and cycles between LoggedOut and LoggedIn
// for the life of the process; nothing is persisted across restarts.
type Controller struct {
	store  usecase.RecordStore
	logger coreport.Logger

	mu        sync.RWMutex
	current   *entity.User
	observers []Observer
}

// NewController creates a session controller in the LoggedOut state
func NewController(store usecase.RecordStore, logger coreport.Logger) *Controller {
	return &Controller{
		store:  store,
		logger: logger,
	}
}

// Login looks up the email in the record store. On a hit the controller
// transitions to LoggedIn and returns the user. On a miss it stays in its
// current state and returns (nil, nil): the original clients show no
// error for a failed login, and that silence is preserved here. Storage
// failures propagate unchanged and cause no transition.
func (c *Controller) Login(ctx context.Context, email string) (*entity.User, error) {
	user, err := c.store.FindUserByEmail(ctx, email)
	if err != nil {
		if errs.IsNotFoundError(err) {
			c.logger.Debug("Login miss, state unchanged", map[string]any{
				"email": email,
			})
			return nil, nil
		}
		return nil, err
	}

	c.mu.Lock()
	c.current = user
	observers := c.snapshotObservers()
	c.mu.Unlock()

	c.logger.Info("User logged in", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})

	for _, notify := range observers {
		notify(StateLoggedIn, user)
	}

	return user, nil
}

// Logout discards the held user reference and returns to LoggedOut.
// Calling it while already logged out is a no-op.
func (c *Controller) Logout() {
	c.mu.Lock()
	if c.current == nil {
		c.mu.Unlock()
		return
	}
	userID := c.current.ID
	c.current = nil
	observers := c.snapshotObservers()
	c.mu.Unlock()

	c.logger.Info("User logged out", map[string]any{
		"user_id": userID,
	})

	for _, notify := range observers {
		notify(StateLoggedOut, nil)
	}
}

// CurrentUser returns the held user and whether the session is logged in
func (c *Controller) CurrentUser() (*entity.User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current, c.current != nil
}

// State returns the current machine state
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.current != nil {
		return StateLoggedIn
	}
	return StateLoggedOut
}

// Subscribe registers an observer for state transitions. The presentation
// shell uses this instead of polling to re-render on login and logout.
func (c *Controller) Subscribe(observer Observer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, observer)
}

// snapshotObservers copies the observer list; callers must hold mu.
func (c *Controller) snapshotObservers() []Observer {
	out := make([]Observer, len(c.observers))
	copy(out, c.observers)
	return out
}
