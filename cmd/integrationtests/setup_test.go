package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	auction "penny-auction/internal/auctionService"
	"penny-auction/internal/credits"
	"penny-auction/internal/identity"
	"penny-auction/internal/lifecycle"
	model "penny-auction/internal/models"
	"penny-auction/internal/rankings"
	"penny-auction/internal/repository"
	"penny-auction/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// SetupTestRouter wires the full application stack over in-memory stores.
func SetupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	users := repository.NewMemoryUserRepo()
	ranks := rankings.NewTracker()

	watcher := lifecycle.NewWatcher(repo, 25*time.Millisecond, func(ended model.AuctionItem) {
		ranks.RecordWin(ended.LastBidder)
	})
	t.Cleanup(watcher.Stop)

	service := auction.NewAuctionService(repo, users, credits.NewMockVendor(), ranks, watcher)
	tokens := identity.NewTokenManager("integration-secret", "penny-auction", time.Hour)

	return server.SetupRouter(service, identity.NewMockProvider(), tokens, users)
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url, token string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := ExecuteRequest(t, router, method, url, token, reqBody)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// LoginAs authenticates against the mock provider and returns the session
// token plus the user payload from the response.
func LoginAs(t *testing.T, router *gin.Engine, email, password string) (string, map[string]any) {
	t.Helper()

	resp, w := ExecuteRequestAndParse(t, router, "POST", "/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, 200, w.Code, "login should succeed")

	data := resp["data"].(map[string]any)
	return data["token"].(string), data["user"].(map[string]any)
}

// CreateItemAsAdmin creates an item through the admin API and returns its id.
func CreateItemAsAdmin(t *testing.T, router *gin.Engine, adminToken string, body map[string]any) string {
	t.Helper()

	resp, w := ExecuteRequestAndParse(t, router, "POST", "/items", adminToken, body)
	require.Equal(t, 201, w.Code, "item creation should succeed")

	data := resp["data"].(map[string]any)
	return data["item_id"].(string)
}
