package repository

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"penny-auction/internal/auctionerrors"
	"penny-auction/internal/bidding"
	"penny-auction/internal/countdown"
	model "penny-auction/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Helper to create an active item
func newActiveItem(itemID, name string, price, bids int) model.AuctionItem {
	return model.AuctionItem{
		ItemID:       itemID,
		Name:         name,
		Description:  fmt.Sprintf("%s description", name),
		CurrentPrice: price,
		Bids:         bids,
		EndTime:      time.Now().Add(8 * time.Hour),
		Status:       model.StatusActive,
	}
}

// Test CreateItem
func TestMemoryRepo_CreateItem(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		draft       model.ItemDraft
		wantStatus  model.ItemStatus
		wantEndTime time.Time
		wantError   error
	}{
		{
			name:        "immediate_start_goes_active",
			draft:       model.ItemDraft{Name: "PS5", Description: "console", ImageURL: "https://example.com/ps5.jpg"},
			wantStatus:  model.StatusActive,
			wantEndTime: now.Add(countdown.DefaultAuctionDuration),
		},
		{
			name:        "future_start_goes_upcoming",
			draft:       model.ItemDraft{Name: "Drone", StartTime: now.Add(4 * time.Hour)},
			wantStatus:  model.StatusUpcoming,
			wantEndTime: now.Add(4*time.Hour + countdown.DefaultAuctionDuration),
		},
		{
			name:        "past_start_goes_active",
			draft:       model.ItemDraft{Name: "Watch", StartTime: now.Add(-time.Hour)},
			wantStatus:  model.StatusActive,
			wantEndTime: now.Add(countdown.DefaultAuctionDuration),
		},
		{
			name:      "missing_name",
			draft:     model.ItemDraft{Description: "no name"},
			wantError: auctionerrors.ErrInvalidItem,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := NewMemoryRepo()
			repo.now = func() time.Time { return now }

			item, err := repo.CreateItem(tc.draft)
			if tc.wantError != nil {
				require.ErrorIs(t, err, tc.wantError)
				return
			}

			require.NoError(t, err)
			_, parseErr := uuid.Parse(item.ItemID)
			require.NoError(t, parseErr, "ItemID should be a valid UUID")
			require.Equal(t, 1, item.CurrentPrice)
			require.Equal(t, 0, item.Bids)
			require.Empty(t, item.LastBidder)
			require.Equal(t, tc.wantStatus, item.Status)
			require.Equal(t, tc.wantEndTime, item.EndTime)

			stored, err := repo.GetItem(item.ItemID)
			require.NoError(t, err)
			require.Equal(t, item, stored)
		})
	}
}

// Test GetItem
func TestMemoryRepo_GetItem(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	item := newActiveItem("item1", "PS5", 147, 147)
	repo.AddItem(item)

	got, err := repo.GetItem("item1")
	require.NoError(t, err)
	require.Equal(t, item, got)

	_, err = repo.GetItem("missing")
	require.ErrorIs(t, err, auctionerrors.ErrItemNotFound)
}

// Test UpdateItem
func TestMemoryRepo_UpdateItem(t *testing.T) {
	t.Parallel()

	t.Run("applies_mutation", func(t *testing.T) {
		t.Parallel()

		repo := NewMemoryRepo()
		repo.AddItem(newActiveItem("item1", "PS5", 147, 147))

		updated, err := repo.UpdateItem("item1", func(item model.AuctionItem) (model.AuctionItem, error) {
			item.CurrentPrice++
			item.Bids++
			item.LastBidder = "TokyoPlayer"
			return item, nil
		})
		require.NoError(t, err)
		require.Equal(t, 148, updated.CurrentPrice)
		require.Equal(t, 148, updated.Bids)
		require.Equal(t, "TokyoPlayer", updated.LastBidder)

		stored, err := repo.GetItem("item1")
		require.NoError(t, err)
		require.Equal(t, updated, stored)
	})

	t.Run("preserves_id_and_status", func(t *testing.T) {
		t.Parallel()

		repo := NewMemoryRepo()
		repo.AddItem(newActiveItem("item1", "PS5", 147, 147))

		updated, err := repo.UpdateItem("item1", func(item model.AuctionItem) (model.AuctionItem, error) {
			item.ItemID = "evil"
			item.Status = model.StatusEnded
			return item, nil
		})
		require.NoError(t, err)
		require.Equal(t, "item1", updated.ItemID)
		require.Equal(t, model.StatusActive, updated.Status)
	})

	t.Run("propagates_mutation_error", func(t *testing.T) {
		t.Parallel()

		repo := NewMemoryRepo()
		repo.AddItem(newActiveItem("item1", "PS5", 147, 147))

		wantErr := fmt.Errorf("rejected")
		_, err := repo.UpdateItem("item1", func(item model.AuctionItem) (model.AuctionItem, error) {
			return model.AuctionItem{}, wantErr
		})
		require.ErrorIs(t, err, wantErr)

		stored, err := repo.GetItem("item1")
		require.NoError(t, err)
		require.Equal(t, 147, stored.CurrentPrice, "failed mutation must not change the item")
	})

	t.Run("unknown_item", func(t *testing.T) {
		t.Parallel()

		repo := NewMemoryRepo()
		_, err := repo.UpdateItem("missing", func(item model.AuctionItem) (model.AuctionItem, error) {
			return item, nil
		})
		require.ErrorIs(t, err, auctionerrors.ErrItemNotFound)
	})

	// Concurrent bids on the same item must each see the previous bid's
	// price: N bids always raise the price by exactly N, never less.
	t.Run("concurrent_bids_lose_no_update", func(t *testing.T) {
		t.Parallel()

		repo := NewMemoryRepo()
		repo.AddItem(newActiveItem("item1", "PS5", 1, 0))

		const bidders = 100
		var wg sync.WaitGroup
		for i := 0; i < bidders; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				user := model.User{UserID: fmt.Sprintf("user%d", i), Username: fmt.Sprintf("player%d", i), Credits: 10}
				_, err := repo.UpdateItem("item1", func(item model.AuctionItem) (model.AuctionItem, error) {
					result, err := bidding.PlaceBid(item, user)
					if err != nil {
						return model.AuctionItem{}, err
					}
					return result.UpdatedItem, nil
				})
				require.NoError(t, err)
			}(i)
		}
		wg.Wait()

		stored, err := repo.GetItem("item1")
		require.NoError(t, err)
		require.Equal(t, 1+bidders, stored.CurrentPrice)
		require.Equal(t, bidders, stored.Bids)
	})
}

// Test StartAuction
func TestMemoryRepo_StartAuction(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	repo := NewMemoryRepo()
	repo.now = func() time.Time { return now }

	upcoming := newActiveItem("item1", "Watch", 1, 0)
	upcoming.Status = model.StatusUpcoming
	repo.AddItem(upcoming)
	active := newActiveItem("item2", "PS5", 147, 147)
	repo.AddItem(active)
	ended := newActiveItem("item3", "Camera", 203, 203)
	ended.Status = model.StatusEnded
	repo.AddItem(ended)

	started, err := repo.StartAuction("item1")
	require.NoError(t, err)
	require.Equal(t, model.StatusActive, started.Status)
	require.Equal(t, now.Add(countdown.DefaultAuctionDuration), started.EndTime)

	// Starting an active item changes nothing
	same, err := repo.StartAuction("item2")
	require.NoError(t, err)
	require.Equal(t, active, same)

	// Ended is terminal
	_, err = repo.StartAuction("item3")
	require.ErrorIs(t, err, auctionerrors.ErrAuctionNotActive)

	_, err = repo.StartAuction("missing")
	require.ErrorIs(t, err, auctionerrors.ErrItemNotFound)
}

// Test EndAuction
func TestMemoryRepo_EndAuction(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	active := newActiveItem("item1", "PS5", 147, 147)
	repo.AddItem(active)
	upcoming := newActiveItem("item2", "Watch", 1, 0)
	upcoming.Status = model.StatusUpcoming
	repo.AddItem(upcoming)

	// Admin end overrides the timer regardless of remaining time
	ended, err := repo.EndAuction("item1")
	require.NoError(t, err)
	require.Equal(t, model.StatusEnded, ended.Status)
	require.Equal(t, 147, ended.CurrentPrice)

	// Ending twice is a no-op
	again, err := repo.EndAuction("item1")
	require.NoError(t, err)
	require.Equal(t, ended, again)

	// The override also applies to upcoming items
	ended2, err := repo.EndAuction("item2")
	require.NoError(t, err)
	require.Equal(t, model.StatusEnded, ended2.Status)

	_, err = repo.EndAuction("missing")
	require.ErrorIs(t, err, auctionerrors.ErrItemNotFound)
}

// Test DeleteItem
func TestMemoryRepo_DeleteItem(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	for _, status := range []model.ItemStatus{model.StatusUpcoming, model.StatusActive, model.StatusEnded} {
		item := newActiveItem("item-"+string(status), "Lot", 1, 0)
		item.Status = status
		repo.AddItem(item)
	}

	// Deletion is permitted in any status
	for _, status := range []model.ItemStatus{model.StatusUpcoming, model.StatusActive, model.StatusEnded} {
		id := "item-" + string(status)
		require.NoError(t, repo.DeleteItem(id))
		_, err := repo.GetItem(id)
		require.ErrorIs(t, err, auctionerrors.ErrItemNotFound)
	}

	require.ErrorIs(t, repo.DeleteItem("missing"), auctionerrors.ErrItemNotFound)
}

// Test ListItems
func TestMemoryRepo_ListItems(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	first := newActiveItem("item1", "PS5", 147, 147)
	repo.AddItem(first)
	second := newActiveItem("item2", "Switch", 89, 89)
	repo.AddItem(second)
	third := newActiveItem("item3", "Watch", 1, 0)
	third.Status = model.StatusUpcoming
	repo.AddItem(third)

	all := repo.ListItems("")
	require.Equal(t, []model.AuctionItem{first, second, third}, all, "items come back in insertion order")

	active := repo.ListItems(model.StatusActive)
	require.Equal(t, []model.AuctionItem{first, second}, active)

	require.Empty(t, repo.ListItems(model.StatusEnded))

	// The returned slice is a snapshot, not a live view
	all[0].CurrentPrice = 9999
	stored, err := repo.GetItem("item1")
	require.NoError(t, err)
	require.Equal(t, 147, stored.CurrentPrice)
}
