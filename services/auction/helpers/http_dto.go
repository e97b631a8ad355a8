package helpers

import (
	"time"

	"penny-auction/internal/countdown"
	model "penny-auction/internal/models"
)

// Request/Response DTOs
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

type CreateItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url" binding:"required,url"`
	StartTime   string `json:"start_time,omitempty"` // RFC3339; empty starts immediately
}

type PurchaseRequest struct {
	PackID string `json:"pack_id" binding:"required"`
}

type ItemResponse struct {
	ItemID       string `json:"item_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
	CurrentPrice int    `json:"current_price"`
	LastBidder   string `json:"last_bidder,omitempty"`
	EndTime      string `json:"end_time"`
	Status       string `json:"status"`
	Bids         int    `json:"bids"`
	TimeLeft     string `json:"time_left"`
	StartsIn     string `json:"starts_in,omitempty"`
}

type BidResponse struct {
	Item    ItemResponse `json:"item"`
	Credits int          `json:"credits"`
}

type CountdownResponse struct {
	ItemID       string `json:"item_id"`
	Status       string `json:"status"`
	TimeLeft     string `json:"time_left"`
	StartsIn     string `json:"starts_in,omitempty"`
	Expired      bool   `json:"expired"`
	StartingSoon bool   `json:"starting_soon,omitempty"`
}

// NewItemResponse renders an item with its countdown evaluated at ref
func NewItemResponse(item model.AuctionItem, ref time.Time) ItemResponse {
	c := countdown.Evaluate(ref, item)
	resp := ItemResponse{
		ItemID:       item.ItemID,
		Name:         item.Name,
		Description:  item.Description,
		ImageURL:     item.ImageURL,
		CurrentPrice: item.CurrentPrice,
		LastBidder:   item.LastBidder,
		EndTime:      item.EndTime.UTC().Format(time.RFC3339),
		Status:       string(item.Status),
		Bids:         item.Bids,
		TimeLeft:     countdown.FormatClock(c.Remaining),
	}
	if item.Status == model.StatusUpcoming {
		if c.StartingSoon {
			resp.StartsIn = "Starting soon..."
		} else {
			resp.StartsIn = countdown.FormatStartsIn(c.StartsIn)
		}
	}
	return resp
}

// NewCountdownResponse renders a countdown evaluation for an item
func NewCountdownResponse(item model.AuctionItem, c countdown.Countdown) CountdownResponse {
	resp := CountdownResponse{
		ItemID:       item.ItemID,
		Status:       string(item.Status),
		TimeLeft:     countdown.FormatClock(c.Remaining),
		Expired:      c.Expired,
		StartingSoon: c.StartingSoon,
	}
	if item.Status == model.StatusUpcoming {
		if c.StartingSoon {
			resp.StartsIn = "Starting soon..."
		} else {
			resp.StartsIn = countdown.FormatStartsIn(c.StartsIn)
		}
	}
	return resp
}
