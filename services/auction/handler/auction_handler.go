package handler

import (
	"fmt"
	"net/http"
	"time"

	"penny-auction/internal/countdown"
	model "penny-auction/internal/models"
	"penny-auction/services/auction/helpers"
	"penny-auction/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	PlaceBid(itemID string, user model.User) (model.AuctionItem, model.User, error)
	CreateItem(draft model.ItemDraft) (model.AuctionItem, error)
	StartAuction(itemID string) (model.AuctionItem, error)
	EndAuction(itemID string) (model.AuctionItem, error)
	DeleteItem(itemID string) error
	GetItem(itemID string) (model.AuctionItem, error)
	ListItems(status model.ItemStatus) ([]model.AuctionItem, error)
	Countdown(itemID string, ref time.Time) (model.AuctionItem, countdown.Countdown, error)
	Packs() []model.CreditPack
	PurchaseCredits(userID, packID string) (model.User, error)
	Rankings(n int) []model.RankingEntry
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// ListItemsHandler handles GET /items?status=
func (h *AuctionHandler) ListItemsHandler(c *gin.Context) {
	status := model.ItemStatus(c.Query("status"))

	items, err := h.service.ListItems(status)
	if err != nil {
		httpStatus, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, httpStatus, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListItemsHandler: error listing items", map[string]any{"status": string(status), "error": err.Error()})
		return
	}

	now := time.Now()
	resp := make([]helpers.ItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, helpers.NewItemResponse(item, now))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "items retrieved successfully")
}

// GetItemHandler handles GET /items/:item_id
func (h *AuctionHandler) GetItemHandler(c *gin.Context) {
	itemID := c.Param("item_id")

	item, err := h.service.GetItem(itemID)
	if err != nil {
		httpStatus, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, httpStatus, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetItemHandler: error retrieving item", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewItemResponse(item, time.Now()), "item retrieved successfully")
}

// CountdownHandler handles GET /items/:item_id/countdown
func (h *AuctionHandler) CountdownHandler(c *gin.Context) {
	itemID := c.Param("item_id")

	item, cd, err := h.service.Countdown(itemID, time.Now())
	if err != nil {
		httpStatus, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, httpStatus, fmt.Errorf("%s: %w", message, err), message)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewCountdownResponse(item, cd), "countdown evaluated successfully")
}

// PlaceBidHandler handles POST /items/:item_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	user, _ := helpers.CurrentUser(c)

	item, bidder, err := h.service.PlaceBid(itemID, user)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler": "PlaceBidHandler",
			"item_id": itemID,
			"user_id": user.UserID,
			"error":   err.Error(),
		})
		return
	}

	resp := helpers.BidResponse{
		Item:    helpers.NewItemResponse(item, time.Now()),
		Credits: bidder.Credits,
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"item_id":       item.ItemID,
		"user_id":       bidder.UserID,
		"current_price": item.CurrentPrice,
		"bids":          item.Bids,
	})
}

// CreateItemHandler handles POST /items (admin)
func (h *AuctionHandler) CreateItemHandler(c *gin.Context) {
	var req helpers.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateItemHandler", err)
		return
	}

	draft := model.ItemDraft{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if req.StartTime != "" {
		startTime, err := time.Parse(time.RFC3339, req.StartTime)
		if err != nil {
			helpers.HandleBindError(c, "CreateItemHandler", fmt.Errorf("invalid start_time: %w", err))
			return
		}
		draft.StartTime = startTime
	}

	item, err := h.service.CreateItem(draft)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateItemHandler: failed to create item", map[string]any{"name": req.Name, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewItemResponse(item, time.Now()), "item created successfully")
	helpers.LogSuccess("CreateItemHandler", "item created successfully", map[string]any{
		"item_id": item.ItemID,
		"name":    item.Name,
		"status":  string(item.Status),
	})
}

// StartAuctionHandler handles POST /items/:item_id/start (admin)
func (h *AuctionHandler) StartAuctionHandler(c *gin.Context) {
	itemID := c.Param("item_id")

	item, err := h.service.StartAuction(itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("StartAuctionHandler: failed to start auction", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewItemResponse(item, time.Now()), "auction started successfully")
	helpers.LogSuccess("StartAuctionHandler", "auction started successfully", map[string]any{"item_id": item.ItemID})
}

// EndAuctionHandler handles POST /items/:item_id/end (admin)
func (h *AuctionHandler) EndAuctionHandler(c *gin.Context) {
	itemID := c.Param("item_id")

	item, err := h.service.EndAuction(itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("EndAuctionHandler: failed to end auction", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewItemResponse(item, time.Now()), "auction ended successfully")
	helpers.LogSuccess("EndAuctionHandler", "auction ended successfully", map[string]any{
		"item_id":     item.ItemID,
		"final_price": item.CurrentPrice,
		"last_bidder": item.LastBidder,
	})
}

// DeleteItemHandler handles DELETE /items/:item_id (admin)
func (h *AuctionHandler) DeleteItemHandler(c *gin.Context) {
	itemID := c.Param("item_id")

	if err := h.service.DeleteItem(itemID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeleteItemHandler: failed to delete item", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"item_id": itemID}, "item deleted successfully")
	helpers.LogSuccess("DeleteItemHandler", "item deleted successfully", map[string]any{"item_id": itemID})
}

// PacksHandler handles GET /credits/packs
func (h *AuctionHandler) PacksHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, h.service.Packs(), "credit packs retrieved successfully")
}

// PurchaseHandler handles POST /credits/purchase
func (h *AuctionHandler) PurchaseHandler(c *gin.Context) {
	var req helpers.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PurchaseHandler", err)
		return
	}

	user, _ := helpers.CurrentUser(c)

	updated, err := h.service.PurchaseCredits(user.UserID, req.PackID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("PurchaseHandler: failed to purchase credits", map[string]any{
			"user_id": user.UserID,
			"pack_id": req.PackID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, updated, "credits purchased successfully")
	helpers.LogSuccess("PurchaseHandler", "credits purchased successfully", map[string]any{
		"user_id": updated.UserID,
		"pack_id": req.PackID,
		"balance": updated.Credits,
	})
}

// RankingsHandler handles GET /rankings
func (h *AuctionHandler) RankingsHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, h.service.Rankings(10), "rankings retrieved successfully")
}
