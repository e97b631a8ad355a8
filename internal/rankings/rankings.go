package rankings

import (
	"sort"
	"sync"

	"penny-auction/internal/models"
)

// Tracker keeps per-player bid and win tallies and serves the leaderboard.
type Tracker struct {
	mu      sync.RWMutex
	bids    map[string]int  // key: username -> total bids placed
	wins    map[string]int  // key: username -> auctions won
	seen    map[string]bool // key: username -> registered
	players []string        // usernames in first-seen order
}

// NewTracker creates an empty tracker
func NewTracker() *Tracker {
	return &Tracker{
		bids: make(map[string]int),
		wins: make(map[string]int),
		seen: make(map[string]bool),
	}
}

// RecordBid counts one bid for the player
func (t *Tracker) RecordBid(username string) {
	if username == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ensure(username)
	t.bids[username]++
}

// RecordWin counts one won auction for the player
func (t *Tracker) RecordWin(username string) {
	if username == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ensure(username)
	t.wins[username]++
}

// Seed loads existing standings, e.g. the demo leaderboard
func (t *Tracker) Seed(entries []models.RankingEntry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, e := range entries {
		t.ensure(e.Username)
		t.wins[e.Username] += e.AuctionsWon
		t.bids[e.Username] += e.TotalBids
	}
}

// Top returns up to n leaderboard rows ordered by auctions won, then total
// bids, then username, with 1-based positions filled in.
func (t *Tracker) Top(n int) []models.RankingEntry {
	t.mu.RLock()
	entries := make([]models.RankingEntry, 0, len(t.players))
	for _, name := range t.players {
		entries = append(entries, models.RankingEntry{
			Username:    name,
			AuctionsWon: t.wins[name],
			TotalBids:   t.bids[name],
		})
	}
	t.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].AuctionsWon != entries[j].AuctionsWon {
			return entries[i].AuctionsWon > entries[j].AuctionsWon
		}
		if entries[i].TotalBids != entries[j].TotalBids {
			return entries[i].TotalBids > entries[j].TotalBids
		}
		return entries[i].Username < entries[j].Username
	})

	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	for i := range entries {
		entries[i].Position = i + 1
	}
	return entries
}

// ensure registers the player; callers must hold the write lock.
func (t *Tracker) ensure(username string) {
	if !t.seen[username] {
		t.seen[username] = true
		t.players = append(t.players, username)
	}
}
