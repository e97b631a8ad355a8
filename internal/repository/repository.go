package repository

import (
	"fmt"
	"sync"
	"time"

	"penny-auction/internal/auctionerrors"
	"penny-auction/internal/countdown"
	model "penny-auction/internal/models"
	"penny-auction/utils"
)

// AuctionStore defines the item storage interface for the auction system.
// It exclusively owns AuctionItem mutation; callers never hold aliases
// into stored state.
type AuctionStore interface {
	CreateItem(draft model.ItemDraft) (model.AuctionItem, error)
	GetItem(itemID string) (model.AuctionItem, error)
	UpdateItem(itemID string, fn func(model.AuctionItem) (model.AuctionItem, error)) (model.AuctionItem, error)
	StartAuction(itemID string) (model.AuctionItem, error)
	EndAuction(itemID string) (model.AuctionItem, error)
	DeleteItem(itemID string) error
	ListItems(status model.ItemStatus) []model.AuctionItem
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionStore
type MemoryRepo struct {
	mu    sync.RWMutex
	items map[string]model.AuctionItem // key: itemID -> value: item
	order []string                     // itemIDs in insertion order
	now   func() time.Time
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		items: make(map[string]model.AuctionItem),
		now:   time.Now,
	}
}

// CreateItem assigns a fresh id and initial penny-auction state to the
// draft. A future start time schedules the item as upcoming with its end
// one full auction duration after the start; otherwise the item goes
// active immediately with the default duration.
func (r *MemoryRepo) CreateItem(draft model.ItemDraft) (model.AuctionItem, error) {
	if draft.Name == "" {
		return model.AuctionItem{}, fmt.Errorf("create item: %w - missing name", auctionerrors.ErrInvalidItem)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	item := model.AuctionItem{
		ItemID:       utils.GenerateID(),
		Name:         draft.Name,
		Description:  draft.Description,
		ImageURL:     draft.ImageURL,
		CurrentPrice: 1,
		Bids:         0,
		Status:       model.StatusActive,
		EndTime:      now.Add(countdown.DefaultAuctionDuration),
	}
	if draft.StartTime.After(now) {
		item.Status = model.StatusUpcoming
		item.EndTime = draft.StartTime.Add(countdown.DefaultAuctionDuration)
	}

	r.items[item.ItemID] = item
	r.order = append(r.order, item.ItemID)

	return item, nil
}

// GetItem returns a copy of the stored item
func (r *MemoryRepo) GetItem(itemID string) (model.AuctionItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[itemID]
	if !ok {
		return model.AuctionItem{}, fmt.Errorf("get item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	return item, nil
}

// UpdateItem applies fn to the stored item under the write lock and stores
// the result. Running the mutation inside the lock is what serializes
// concurrent bids on the same item: each call sees the previous call's
// price, so no increment is ever computed from a stale read.
func (r *MemoryRepo) UpdateItem(itemID string, fn func(model.AuctionItem) (model.AuctionItem, error)) (model.AuctionItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok {
		return model.AuctionItem{}, fmt.Errorf("update item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}

	updated, err := fn(item)
	if err != nil {
		return model.AuctionItem{}, err
	}

	// id and status are not fn's to change
	updated.ItemID = item.ItemID
	updated.Status = item.Status

	r.items[itemID] = updated
	return updated, nil
}

// StartAuction promotes an upcoming item to active, restarting its clock
// at one full auction duration from now. Starting an already-active item
// is a no-op; an ended item stays ended.
func (r *MemoryRepo) StartAuction(itemID string) (model.AuctionItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok {
		return model.AuctionItem{}, fmt.Errorf("start auction %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	if item.Status == model.StatusEnded {
		return model.AuctionItem{}, fmt.Errorf("start auction %s: %w - already ended", itemID, auctionerrors.ErrAuctionNotActive)
	}
	if item.Status == model.StatusUpcoming {
		item.Status = model.StatusActive
		item.EndTime = r.now().Add(countdown.DefaultAuctionDuration)
		r.items[itemID] = item
	}
	return item, nil
}

// EndAuction forces the item into the ended state regardless of its timer.
// Ended is terminal; ending twice is a no-op.
func (r *MemoryRepo) EndAuction(itemID string) (model.AuctionItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok {
		return model.AuctionItem{}, fmt.Errorf("end auction %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	if item.Status != model.StatusEnded {
		item.Status = model.StatusEnded
		r.items[itemID] = item
	}
	return item, nil
}

// DeleteItem removes the item in any status
func (r *MemoryRepo) DeleteItem(itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[itemID]; !ok {
		return fmt.Errorf("delete item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	delete(r.items, itemID)
	for i, id := range r.order {
		if id == itemID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// ListItems returns a snapshot of items in insertion order, optionally
// filtered by status (empty status means all).
func (r *MemoryRepo) ListItems(status model.ItemStatus) []model.AuctionItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.AuctionItem, 0, len(r.order))
	for _, id := range r.order {
		item := r.items[id]
		if status != "" && item.Status != status {
			continue
		}
		items = append(items, item)
	}
	return items
}

// AddItem inserts an item as-is, keeping whatever state it carries. Used
// to seed the repo with the mock inventory and by tests.
func (r *MemoryRepo) AddItem(item model.AuctionItem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ItemID]; !ok {
		r.order = append(r.order, item.ItemID)
	}
	r.items[item.ItemID] = item
}
