package lifecycle

import (
	"errors"
	"time"

	"penny-auction/internal/auctionerrors"
	"penny-auction/internal/countdown"
	"penny-auction/internal/models"
	"penny-auction/internal/repository"
	"penny-auction/internal/scheduler"
	"penny-auction/utils"
)

// Watcher drives item lifecycles from the countdown evaluator. It keeps
// one recurring scheduler task per tracked item: active items are ended
// when their timer expires, upcoming items stop ticking once their implied
// start has passed (promotion to active stays an explicit admin action).
type Watcher struct {
	store    repository.AuctionStore
	sched    *scheduler.Scheduler
	interval time.Duration
	onEnded  func(item models.AuctionItem)
}

// NewWatcher creates a watcher evaluating countdowns at the given interval.
// onEnded, if non-nil, is invoked once for each item the watcher ends.
func NewWatcher(store repository.AuctionStore, interval time.Duration, onEnded func(item models.AuctionItem)) *Watcher {
	return &Watcher{
		store:    store,
		sched:    scheduler.New(),
		interval: interval,
		onEnded:  onEnded,
	}
}

// Track schedules countdown evaluation for the item. Items already in a
// terminal state are not tracked. Tracking an item twice replaces its task.
func (w *Watcher) Track(item models.AuctionItem) {
	if item.Status == models.StatusEnded {
		return
	}
	w.sched.Schedule(item.ItemID, w.interval, func(now time.Time) bool {
		return w.evaluate(item.ItemID, now)
	})
}

// evaluate runs one tick for the item. Returning false retires the task.
func (w *Watcher) evaluate(itemID string, now time.Time) bool {
	item, err := w.store.GetItem(itemID)
	if err != nil {
		if !errors.Is(err, auctionerrors.ErrItemNotFound) {
			utils.Error("lifecycle: failed to load item", map[string]any{"item_id": itemID, "error": err.Error()})
		}
		return false
	}

	c := countdown.Evaluate(now, item)

	switch item.Status {
	case models.StatusActive:
		if !c.Expired {
			return true
		}
		ended, err := w.store.EndAuction(itemID)
		if err != nil {
			utils.Error("lifecycle: failed to end expired auction", map[string]any{"item_id": itemID, "error": err.Error()})
			return false
		}
		utils.Info("auction expired", map[string]any{
			"item_id":     ended.ItemID,
			"final_price": ended.CurrentPrice,
			"last_bidder": ended.LastBidder,
		})
		if w.onEnded != nil {
			w.onEnded(ended)
		}
		return false
	case models.StatusUpcoming:
		// Starting soon: stop ticking, the admin decides when it goes live.
		return !c.StartingSoon
	default:
		return false
	}
}

// Untrack cancels the item's countdown task, if any
func (w *Watcher) Untrack(itemID string) {
	w.sched.Cancel(itemID)
}

// Tracking reports whether the item currently has a countdown task
func (w *Watcher) Tracking(itemID string) bool {
	return w.sched.Active(itemID)
}

// Stop cancels all countdown tasks
func (w *Watcher) Stop() {
	w.sched.Stop()
}
