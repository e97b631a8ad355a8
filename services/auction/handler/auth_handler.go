package handler

import (
	"fmt"
	"net/http"

	"penny-auction/internal/identity"
	"penny-auction/internal/repository"
	"penny-auction/services/auction/helpers"
	"penny-auction/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler glues the identity provider, the session user store, and the
// token manager together for login and registration.
type AuthHandler struct {
	provider identity.IdentityProvider
	tokens   *identity.TokenManager
	users    repository.UserStore
}

func NewAuthHandler(provider identity.IdentityProvider, tokens *identity.TokenManager, users repository.UserStore) *AuthHandler {
	return &AuthHandler{
		provider: provider,
		tokens:   tokens,
		users:    users,
	}
}

// LoginHandler handles POST /auth/login
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	user, err := h.provider.Authenticate(req.Email, req.Password)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("LoginHandler: authentication failed", map[string]any{"email": req.Email, "error": err.Error()})
		return
	}

	h.users.PutUser(user)

	token, err := h.tokens.Generate(user)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err, "failed to issue session token")
		utils.Error("LoginHandler: token generation failed", map[string]any{"user_id": user.UserID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.AuthResponse{Token: token, User: user}, "login successful")
	helpers.LogSuccess("LoginHandler", "login successful", map[string]any{
		"user_id":  user.UserID,
		"username": user.Username,
		"is_admin": user.IsAdmin,
	})
}

// RegisterHandler handles POST /auth/register
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	user, err := h.provider.Register(req.Username, req.Email, req.Password)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RegisterHandler: registration failed", map[string]any{"email": req.Email, "error": err.Error()})
		return
	}

	h.users.PutUser(user)

	token, err := h.tokens.Generate(user)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err, "failed to issue session token")
		utils.Error("RegisterHandler: token generation failed", map[string]any{"user_id": user.UserID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.AuthResponse{Token: token, User: user}, "registration successful")
	helpers.LogSuccess("RegisterHandler", "registration successful", map[string]any{
		"user_id":  user.UserID,
		"username": user.Username,
	})
}
