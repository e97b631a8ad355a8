package main

import (
	"fmt"
	"os"
	"time"

	auction "penny-auction/internal/auctionService"
	"penny-auction/internal/config"
	"penny-auction/internal/credits"
	"penny-auction/internal/identity"
	"penny-auction/internal/lifecycle"
	model "penny-auction/internal/models"
	"penny-auction/internal/rankings"
	"penny-auction/internal/repository"
	"penny-auction/internal/server"
	"penny-auction/utils"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real env vars win either way
	_ = godotenv.Load()
	cfg := config.Load()

	repo := repository.NewMemoryRepo()
	users := repository.NewMemoryUserRepo()
	vendor := credits.NewMockVendor()
	ranks := rankings.NewTracker()

	prepopulateItems(repo)
	prepopulateRankings(ranks)

	watcher := lifecycle.NewWatcher(repo, cfg.CountdownInterval, func(item model.AuctionItem) {
		if item.LastBidder != "" {
			ranks.RecordWin(item.LastBidder)
		}
	})
	defer watcher.Stop()
	for _, item := range repo.ListItems("") {
		watcher.Track(item)
	}

	auctionSvc := auction.NewAuctionService(repo, users, vendor, ranks, watcher)

	provider := identity.NewMockProvider()
	tokens := identity.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)

	router := server.SetupRouter(auctionSvc, provider, tokens, users)

	addr := cfg.HTTPAddress()
	fmt.Printf("Starting penny auction server on %s...\n", addr)
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// prepopulateItems adds the demo inventory to the in-memory repo
func prepopulateItems(repo *repository.MemoryRepo) {
	now := time.Now()
	items := []model.AuctionItem{
		{
			ItemID:       "1",
			Name:         "PlayStation 5 Console",
			Description:  "Brand new PS5 gaming console with controller",
			ImageURL:     "https://images.unsplash.com/photo-1709587797077-7a2c94411514?w=1080",
			CurrentPrice: 147,
			LastBidder:   "SakuraGamer99",
			EndTime:      now.Add(8 * time.Hour),
			Status:       model.StatusActive,
			Bids:         147,
		},
		{
			ItemID:       "2",
			Name:         "Nintendo Switch OLED",
			Description:  "Latest Nintendo Switch OLED model",
			ImageURL:     "https://images.unsplash.com/photo-1608559168291-408b5649d285?w=1080",
			CurrentPrice: 89,
			LastBidder:   "TokyoPlayer",
			EndTime:      now.Add(12 * time.Hour),
			Status:       model.StatusActive,
			Bids:         89,
		},
		{
			ItemID:       "3",
			Name:         "Premium Wireless Headphones",
			Description:  "High-quality noise cancelling headphones",
			ImageURL:     "https://images.unsplash.com/photo-1572119244337-bcb4aae995af?w=1080",
			CurrentPrice: 56,
			LastBidder:   "MusicLover",
			EndTime:      now.Add(18 * time.Hour),
			Status:       model.StatusActive,
			Bids:         56,
		},
		{
			ItemID:       "4",
			Name:         "Professional Camera Kit",
			Description:  "Complete photography kit with accessories",
			ImageURL:     "https://images.unsplash.com/photo-1579535984712-92fffbbaa266?w=1080",
			CurrentPrice: 203,
			LastBidder:   "PhotoNinja",
			EndTime:      now.Add(6 * time.Hour),
			Status:       model.StatusActive,
			Bids:         203,
		},
		{
			ItemID:       "5",
			Name:         "Smart Watch Pro",
			Description:  "Latest smartwatch with health monitoring",
			ImageURL:     "https://images.unsplash.com/photo-1668760180303-fcfe2b899e20?w=1080",
			CurrentPrice: 1,
			EndTime:      now.Add(28 * time.Hour),
			Status:       model.StatusUpcoming,
			Bids:         0,
		},
		{
			ItemID:       "6",
			Name:         "4K Drone with Camera",
			Description:  "Professional drone with 4K recording",
			ImageURL:     "https://images.unsplash.com/photo-1699084583993-16958aa157d1?w=1080",
			CurrentPrice: 1,
			EndTime:      now.Add(32 * time.Hour),
			Status:       model.StatusUpcoming,
			Bids:         0,
		},
	}

	for _, item := range items {
		repo.AddItem(item)
	}
	utils.Info("seeded demo inventory", map[string]any{"items": len(items)})
}

// prepopulateRankings seeds the demo leaderboard
func prepopulateRankings(ranks *rankings.Tracker) {
	ranks.Seed([]model.RankingEntry{
		{Username: "SakuraGamer99", AuctionsWon: 47, TotalBids: 892},
		{Username: "TokyoDrift", AuctionsWon: 39, TotalBids: 756},
		{Username: "NeonNinja", AuctionsWon: 34, TotalBids: 641},
		{Username: "PhotoNinja", AuctionsWon: 28, TotalBids: 523},
		{Username: "MusicLover", AuctionsWon: 25, TotalBids: 487},
		{Username: "GachaKing", AuctionsWon: 22, TotalBids: 412},
		{Username: "BidMaster", AuctionsWon: 19, TotalBids: 378},
		{Username: "LuckyPlayer", AuctionsWon: 16, TotalBids: 341},
		{Username: "TokyoPlayer", AuctionsWon: 14, TotalBids: 298},
		{Username: "AuctionPro", AuctionsWon: 12, TotalBids: 267},
	})
}
