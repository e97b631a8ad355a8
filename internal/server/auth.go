package server

import (
	"fmt"
	"net/http"
	"strings"

	"penny-auction/internal/auctionerrors"
	"penny-auction/internal/identity"
	"penny-auction/internal/repository"
	"penny-auction/services/auction/helpers"
	"penny-auction/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves bearer tokens into session users.
type AuthMiddleware struct {
	tokens *identity.TokenManager
	users  repository.UserStore
}

// NewAuthMiddleware creates middleware backed by the token manager and user store
func NewAuthMiddleware(tokens *identity.TokenManager, users repository.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		users:  users,
	}
}

// RequireUser aborts with 401 unless the request carries a valid bearer
// token for a known session user; on success the user is attached to the
// request context.
func (m *AuthMiddleware) RequireUser(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		err := fmt.Errorf("%w - missing bearer token", auctionerrors.ErrNotAuthenticated)
		utils.JSONError(c, http.StatusUnauthorized, err, "please login to continue")
		c.Abort()
		return
	}

	userID, err := m.tokens.Parse(token)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, err, "please login to continue")
		utils.Warn("auth: invalid session token", map[string]any{"error": err.Error()})
		c.Abort()
		return
	}

	user, err := m.users.GetUser(userID)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, err, "please login to continue")
		c.Abort()
		return
	}

	helpers.SetUser(c, user)
	c.Next()
}

// RequireAdmin aborts with 403 unless the context user has the admin flag.
// Must run after RequireUser.
func (m *AuthMiddleware) RequireAdmin(c *gin.Context) {
	user, ok := helpers.CurrentUser(c)
	if !ok || !user.IsAdmin {
		err := fmt.Errorf("%w - user %s", auctionerrors.ErrAdminOnly, user.UserID)
		utils.JSONError(c, http.StatusForbidden, err, "admin access required")
		c.Abort()
		return
	}
	c.Next()
}
