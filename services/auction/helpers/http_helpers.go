package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"penny-auction/internal/auctionerrors"
	model "penny-auction/internal/models"
	"penny-auction/utils"

	"github.com/gin-gonic/gin"
)

// contextUserKey is where the auth middleware parks the resolved user.
const contextUserKey = "auth_user"

// SetUser attaches the authenticated user to the request context
func SetUser(c *gin.Context, user model.User) {
	c.Set(contextUserKey, user)
}

// CurrentUser returns the authenticated user from the request context
func CurrentUser(c *gin.Context) (model.User, bool) {
	value, ok := c.Get(contextUserKey)
	if !ok {
		return model.User{}, false
	}
	user, ok := value.(model.User)
	return user, ok
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrItemNotFound):
		return http.StatusNotFound, "item not found"
	case errors.Is(err, auctionerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, auctionerrors.ErrPackNotFound):
		return http.StatusNotFound, "credit pack not found"
	case errors.Is(err, auctionerrors.ErrNotAuthenticated):
		return http.StatusUnauthorized, "please login to continue"
	case errors.Is(err, auctionerrors.ErrInsufficientCredits):
		return http.StatusPaymentRequired, "not enough credits"
	case errors.Is(err, auctionerrors.ErrAuctionNotActive):
		return http.StatusConflict, "auction is not active"
	case errors.Is(err, auctionerrors.ErrAdminOnly):
		return http.StatusForbidden, "admin access required"
	case errors.Is(err, auctionerrors.ErrInvalidItem):
		return http.StatusBadRequest, "invalid item details"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
