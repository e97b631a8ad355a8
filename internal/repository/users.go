package repository

import (
	"fmt"
	"sync"

	"penny-auction/internal/auctionerrors"
	model "penny-auction/internal/models"
)

// UserStore defines session-scoped user storage. Credit balances are only
// ever changed through AdjustCredits so that concurrent debits and
// purchases for the same user cannot lose updates.
type UserStore interface {
	PutUser(user model.User)
	GetUser(userID string) (model.User, error)
	AdjustCredits(userID string, delta int) (model.User, error)
}

// MemoryUserRepo is a concurrency-safe in-memory implementation of UserStore
type MemoryUserRepo struct {
	mu    sync.RWMutex
	users map[string]model.User // key: userID -> value: user
}

// NewMemoryUserRepo creates a new in-memory user store instance
func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{
		users: make(map[string]model.User),
	}
}

// PutUser stores or replaces the user record
func (r *MemoryUserRepo) PutUser(user model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.UserID] = user
}

// GetUser returns a copy of the stored user
func (r *MemoryUserRepo) GetUser(userID string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	return user, nil
}

// AdjustCredits applies a credit delta under the write lock. The balance
// never goes below zero; a debit that would do so is rejected whole.
func (r *MemoryUserRepo) AdjustCredits(userID string, delta int) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("adjust credits for user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	if user.Credits+delta < 0 {
		return model.User{}, fmt.Errorf("adjust credits for user %s: %w - balance is %d", userID, auctionerrors.ErrInsufficientCredits, user.Credits)
	}

	user.Credits += delta
	r.users[userID] = user
	return user, nil
}
