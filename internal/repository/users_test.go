package repository

import (
	"sync"
	"testing"

	"penny-auction/internal/auctionerrors"
	model "penny-auction/internal/models"

	"github.com/stretchr/testify/require"
)

// Test PutUser / GetUser
func TestMemoryUserRepo_PutGet(t *testing.T) {
	t.Parallel()

	repo := NewMemoryUserRepo()
	user := model.User{UserID: "user1", Username: "Player123", Email: "p@example.com", Credits: 50}
	repo.PutUser(user)

	got, err := repo.GetUser("user1")
	require.NoError(t, err)
	require.Equal(t, user, got)

	// Put replaces the whole record
	user.Credits = 10
	repo.PutUser(user)
	got, err = repo.GetUser("user1")
	require.NoError(t, err)
	require.Equal(t, 10, got.Credits)

	_, err = repo.GetUser("missing")
	require.ErrorIs(t, err, auctionerrors.ErrUserNotFound)
}

// Test AdjustCredits
func TestMemoryUserRepo_AdjustCredits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		starting    int
		delta       int
		wantCredits int
		wantError   error
	}{
		{name: "debit_one_bid", starting: 50, delta: -1, wantCredits: 49},
		{name: "credit_purchase", starting: 10, delta: 55, wantCredits: 65},
		{name: "debit_to_exactly_zero", starting: 1, delta: -1, wantCredits: 0},
		{name: "overdraft_rejected", starting: 0, delta: -1, wantError: auctionerrors.ErrInsufficientCredits},
		{name: "large_overdraft_rejected", starting: 5, delta: -6, wantError: auctionerrors.ErrInsufficientCredits},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := NewMemoryUserRepo()
			repo.PutUser(model.User{UserID: "user1", Username: "Player123", Credits: tc.starting})

			user, err := repo.AdjustCredits("user1", tc.delta)
			if tc.wantError != nil {
				require.ErrorIs(t, err, tc.wantError)

				// Failed adjustments leave the balance alone
				stored, getErr := repo.GetUser("user1")
				require.NoError(t, getErr)
				require.Equal(t, tc.starting, stored.Credits)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.wantCredits, user.Credits)
		})
	}

	t.Run("unknown_user", func(t *testing.T) {
		t.Parallel()
		repo := NewMemoryUserRepo()
		_, err := repo.AdjustCredits("missing", -1)
		require.ErrorIs(t, err, auctionerrors.ErrUserNotFound)
	})

	// Concurrent debits on the same balance never lose an update: 50
	// single-credit debits against 50 credits land exactly at zero.
	t.Run("concurrent_debits_lose_no_update", func(t *testing.T) {
		t.Parallel()

		repo := NewMemoryUserRepo()
		repo.PutUser(model.User{UserID: "user1", Username: "Player123", Credits: 50})

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := repo.AdjustCredits("user1", -1)
				require.NoError(t, err)
			}()
		}
		wg.Wait()

		user, err := repo.GetUser("user1")
		require.NoError(t, err)
		require.Equal(t, 0, user.Credits)
	})
}
