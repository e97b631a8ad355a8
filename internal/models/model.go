package models

import "time"

// ItemStatus is the lifecycle state of an auction item.
// Transitions only move forward: upcoming -> active -> ended.
type ItemStatus string

const (
	StatusUpcoming ItemStatus = "upcoming"
	StatusActive   ItemStatus = "active"
	StatusEnded    ItemStatus = "ended"
)

// User represents a participant in the auction
type User struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Credits  int    `json:"credits"`
	IsAdmin  bool   `json:"is_admin"`
}

// AuctionItem represents a penny-auction lot. Every bid raises the price
// by exactly 1 and costs the bidder 1 credit; the last bidder when the
// timer runs out wins at the final price.
type AuctionItem struct {
	ItemID       string     `json:"item_id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	ImageURL     string     `json:"image_url"`
	CurrentPrice int        `json:"current_price"`
	LastBidder   string     `json:"last_bidder,omitempty"`
	EndTime      time.Time  `json:"end_time"`
	Status       ItemStatus `json:"status"`
	Bids         int        `json:"bids"`
}

// ItemDraft carries the admin-supplied fields for a new auction item.
// A non-zero StartTime schedules the item as upcoming; a zero StartTime
// starts it immediately with the default duration.
type ItemDraft struct {
	Name        string
	Description string
	ImageURL    string
	StartTime   time.Time
}

// CreditPack is a purchasable bundle of bid credits.
type CreditPack struct {
	PackID  string `json:"pack_id"`
	Credits int    `json:"credits"`
	Bonus   int    `json:"bonus,omitempty"`
	Price   int    `json:"price"`
	Popular bool   `json:"popular,omitempty"`
}

// RankingEntry is one row of the leaderboard.
type RankingEntry struct {
	Position    int    `json:"position"`
	Username    string `json:"username"`
	AuctionsWon int    `json:"auctions_won"`
	TotalBids   int    `json:"total_bids"`
}
