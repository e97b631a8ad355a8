package auction

import (
	"fmt"
	"time"

	"penny-auction/internal/auctionerrors"
	"penny-auction/internal/bidding"
	"penny-auction/internal/countdown"
	"penny-auction/internal/credits"
	"penny-auction/internal/models"
	"penny-auction/internal/rankings"
	"penny-auction/internal/repository"
	"penny-auction/utils"
)

// CountdownTracker manages per-item countdown tasks. Implemented by the
// lifecycle watcher; the service only needs to start and stop tracking.
type CountdownTracker interface {
	Track(item models.AuctionItem)
	Untrack(itemID string)
}

// AuctionService defines the business logic for the penny auction
type AuctionService struct {
	repo    repository.AuctionStore
	users   repository.UserStore
	vendor  credits.CreditVendor
	ranks   *rankings.Tracker
	tracker CountdownTracker
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(repo repository.AuctionStore, users repository.UserStore, vendor credits.CreditVendor, ranks *rankings.Tracker, tracker CountdownTracker) *AuctionService {
	return &AuctionService{
		repo:    repo,
		users:   users,
		vendor:  vendor,
		ranks:   ranks,
		tracker: tracker,
	}
}

// PlaceBid validates and applies a bid by the user on an item. The bid
// credit is reserved first, so concurrent bids from the same user contend
// on the balance before any of them can touch the item; the pure bidding
// engine then runs inside the store's update so that bids on the same item
// are serialized. A bid the engine rejects refunds the reserved credit,
// leaving both the item and the balance as they were.
func (s *AuctionService) PlaceBid(itemID string, user models.User) (models.AuctionItem, models.User, error) {
	if itemID == "" {
		return models.AuctionItem{}, models.User{}, fmt.Errorf("service: %w - missing itemID", auctionerrors.ErrInvalidItem)
	}
	if user.UserID == "" {
		return models.AuctionItem{}, models.User{}, fmt.Errorf("service: %w", auctionerrors.ErrNotAuthenticated)
	}

	debited, err := s.users.AdjustCredits(user.UserID, -bidding.BidCost)
	if err != nil {
		return models.AuctionItem{}, models.User{}, fmt.Errorf("service: failed to reserve bid credit for user %s: %w", user.UserID, err)
	}

	// The engine sees the balance as it was at reservation time
	bidder := debited
	bidder.Credits += bidding.BidCost

	updated, err := s.repo.UpdateItem(itemID, func(item models.AuctionItem) (models.AuctionItem, error) {
		result, err := bidding.PlaceBid(item, bidder)
		if err != nil {
			return models.AuctionItem{}, err
		}
		return result.UpdatedItem, nil
	})
	if err != nil {
		if _, refundErr := s.users.AdjustCredits(user.UserID, bidding.BidCost); refundErr != nil {
			utils.Error("failed to refund reserved bid credit", map[string]any{
				"user_id": user.UserID,
				"item_id": itemID,
				"error":   refundErr.Error(),
			})
		}
		return models.AuctionItem{}, models.User{}, fmt.Errorf("service: failed to place bid on item %s by user %s: %w", itemID, user.UserID, err)
	}

	s.ranks.RecordBid(bidder.Username)

	return updated, debited, nil
}

// CreateItem creates an auction item from the admin draft and starts
// tracking its countdown.
func (s *AuctionService) CreateItem(draft models.ItemDraft) (models.AuctionItem, error) {
	item, err := s.repo.CreateItem(draft)
	if err != nil {
		return models.AuctionItem{}, fmt.Errorf("service: failed to create item: %w", err)
	}

	s.tracker.Track(item)
	utils.Info("item created", map[string]any{
		"item_id": item.ItemID,
		"name":    item.Name,
		"status":  string(item.Status),
	})
	return item, nil
}

// StartAuction promotes an upcoming item to active and re-tracks its
// countdown against the fresh end time.
func (s *AuctionService) StartAuction(itemID string) (models.AuctionItem, error) {
	if itemID == "" {
		return models.AuctionItem{}, fmt.Errorf("service: %w - missing itemID", auctionerrors.ErrInvalidItem)
	}

	item, err := s.repo.StartAuction(itemID)
	if err != nil {
		return models.AuctionItem{}, fmt.Errorf("service: failed to start auction %s: %w", itemID, err)
	}

	s.tracker.Track(item)
	return item, nil
}

// EndAuction forces the item into the ended state, stops its countdown,
// and credits the win to the last bidder if anyone bid at all.
func (s *AuctionService) EndAuction(itemID string) (models.AuctionItem, error) {
	if itemID == "" {
		return models.AuctionItem{}, fmt.Errorf("service: %w - missing itemID", auctionerrors.ErrInvalidItem)
	}

	item, err := s.repo.EndAuction(itemID)
	if err != nil {
		return models.AuctionItem{}, fmt.Errorf("service: failed to end auction %s: %w", itemID, err)
	}

	s.tracker.Untrack(itemID)
	if item.LastBidder != "" {
		s.ranks.RecordWin(item.LastBidder)
	}
	return item, nil
}

// DeleteItem removes the item in any status and stops its countdown
func (s *AuctionService) DeleteItem(itemID string) error {
	if itemID == "" {
		return fmt.Errorf("service: %w - missing itemID", auctionerrors.ErrInvalidItem)
	}

	if err := s.repo.DeleteItem(itemID); err != nil {
		return fmt.Errorf("service: failed to delete item %s: %w", itemID, err)
	}

	s.tracker.Untrack(itemID)
	return nil
}

// GetItem returns a single item by id
func (s *AuctionService) GetItem(itemID string) (models.AuctionItem, error) {
	if itemID == "" {
		return models.AuctionItem{}, fmt.Errorf("service: %w - missing itemID", auctionerrors.ErrInvalidItem)
	}

	item, err := s.repo.GetItem(itemID)
	if err != nil {
		return models.AuctionItem{}, fmt.Errorf("service: failed to get item %s: %w", itemID, err)
	}
	return item, nil
}

// ListItems returns a snapshot of items, optionally filtered by status
func (s *AuctionService) ListItems(status models.ItemStatus) ([]models.AuctionItem, error) {
	switch status {
	case "", models.StatusUpcoming, models.StatusActive, models.StatusEnded:
	default:
		return nil, fmt.Errorf("service: %w - unknown status %q", auctionerrors.ErrInvalidItem, status)
	}
	return s.repo.ListItems(status), nil
}

// Countdown evaluates the item's timer at the reference time
func (s *AuctionService) Countdown(itemID string, ref time.Time) (models.AuctionItem, countdown.Countdown, error) {
	item, err := s.GetItem(itemID)
	if err != nil {
		return models.AuctionItem{}, countdown.Countdown{}, err
	}
	return item, countdown.Evaluate(ref, item), nil
}

// Packs returns the purchasable credit pack catalog
func (s *AuctionService) Packs() []models.CreditPack {
	return s.vendor.Packs()
}

// PurchaseCredits buys a pack for the user and applies the credit delta
// to their balance.
func (s *AuctionService) PurchaseCredits(userID, packID string) (models.User, error) {
	if userID == "" {
		return models.User{}, fmt.Errorf("service: %w", auctionerrors.ErrNotAuthenticated)
	}

	delta, err := s.vendor.Purchase(packID)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to purchase pack %s for user %s: %w", packID, userID, err)
	}

	user, err := s.users.AdjustCredits(userID, delta)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to credit purchase for user %s: %w", userID, err)
	}

	utils.Info("credits purchased", map[string]any{
		"user_id": userID,
		"pack_id": packID,
		"credits": delta,
		"balance": user.Credits,
	})
	return user, nil
}

// Rankings returns up to n leaderboard rows
func (s *AuctionService) Rankings(n int) []models.RankingEntry {
	return s.ranks.Top(n)
}
