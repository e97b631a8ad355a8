package identity

import (
	"testing"

	"penny-auction/internal/auctionerrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Test Authenticate
func TestMockProvider_Authenticate(t *testing.T) {
	t.Parallel()

	provider := NewMockProvider()

	tests := []struct {
		name         string
		email        string
		password     string
		wantUsername string
		wantCredits  int
		wantAdmin    bool
		wantError    error
	}{
		{
			name:         "admin_shortcut",
			email:        "admin@admin.com",
			password:     "admin",
			wantUsername: "Admin",
			wantCredits:  AdminStartingCredits,
			wantAdmin:    true,
		},
		{
			name:         "any_other_login_is_demo_player",
			email:        "someone@example.com",
			password:     "whatever",
			wantUsername: "Player123",
			wantCredits:  PlayerStartingCredits,
		},
		{
			name:         "admin_email_wrong_password_is_demo_player",
			email:        "admin@admin.com",
			password:     "nope",
			wantUsername: "Player123",
			wantCredits:  PlayerStartingCredits,
		},
		{
			name:      "missing_email",
			password:  "secret",
			wantError: auctionerrors.ErrNotAuthenticated,
		},
		{
			name:      "missing_password",
			email:     "someone@example.com",
			wantError: auctionerrors.ErrNotAuthenticated,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			user, err := provider.Authenticate(tc.email, tc.password)
			if tc.wantError != nil {
				require.ErrorIs(t, err, tc.wantError)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.wantUsername, user.Username)
			require.Equal(t, tc.wantCredits, user.Credits)
			require.Equal(t, tc.wantAdmin, user.IsAdmin)
			require.Equal(t, tc.email, user.Email)
		})
	}
}

// Test Register
func TestMockProvider_Register(t *testing.T) {
	t.Parallel()

	provider := NewMockProvider()

	t.Run("fresh_user_with_signup_grant", func(t *testing.T) {
		t.Parallel()

		user, err := provider.Register("NewPlayer", "new@example.com", "secret")
		require.NoError(t, err)
		require.Equal(t, "NewPlayer", user.Username)
		require.Equal(t, SignupCredits, user.Credits)
		require.False(t, user.IsAdmin)

		_, parseErr := uuid.Parse(user.UserID)
		require.NoError(t, parseErr, "registered users get a generated UUID")
	})

	t.Run("missing_fields", func(t *testing.T) {
		t.Parallel()

		_, err := provider.Register("", "new@example.com", "secret")
		require.ErrorIs(t, err, auctionerrors.ErrNotAuthenticated)

		_, err = provider.Register("NewPlayer", "", "secret")
		require.ErrorIs(t, err, auctionerrors.ErrNotAuthenticated)

		_, err = provider.Register("NewPlayer", "new@example.com", "")
		require.ErrorIs(t, err, auctionerrors.ErrNotAuthenticated)
	})
}
