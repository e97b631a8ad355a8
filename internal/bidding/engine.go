package bidding

import (
	"fmt"

	"penny-auction/internal/auctionerrors"
	"penny-auction/internal/models"
)

// BidCost is the number of credits one bid consumes.
const BidCost = 1

// PriceStep is the amount each bid adds to the current price.
const PriceStep = 1

// Result carries the outcome of a successful bid: the new item state and
// the bidder's balance after the debit. Applying both is the caller's job;
// the engine itself never mutates anything.
type Result struct {
	UpdatedItem models.AuctionItem
	NewCredits  int
}

// PlaceBid validates a bid by the given user on the given item and, if
// valid, returns the resulting item state and credit balance.
//
// Preconditions are checked in order: the user must be authenticated, must
// hold at least BidCost credits, and the item must be active. PlaceBid is
// pure and safe to call concurrently for different items; calls for the
// same item must be serialized by the entity store so that no two bids
// compute their increment from the same starting price.
func PlaceBid(item models.AuctionItem, user models.User) (Result, error) {
	if user.UserID == "" {
		return Result{}, fmt.Errorf("engine: %w", auctionerrors.ErrNotAuthenticated)
	}
	if user.Credits < BidCost {
		return Result{}, fmt.Errorf("engine: %w - balance is %d", auctionerrors.ErrInsufficientCredits, user.Credits)
	}
	if item.Status != models.StatusActive {
		return Result{}, fmt.Errorf("engine: %w - item %s is %s", auctionerrors.ErrAuctionNotActive, item.ItemID, item.Status)
	}

	item.CurrentPrice += PriceStep
	item.Bids++
	item.LastBidder = user.Username

	return Result{
		UpdatedItem: item,
		NewCredits:  user.Credits - BidCost,
	}, nil
}
