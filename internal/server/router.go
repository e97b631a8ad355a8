package server

import (
	auction "penny-auction/internal/auctionService"
	"penny-auction/internal/identity"
	"penny-auction/internal/repository"
	handler "penny-auction/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionService *auction.AuctionService, provider identity.IdentityProvider, tokens *identity.TokenManager, users repository.UserStore) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(auctionService)
	authHandler := handler.NewAuthHandler(provider, tokens, users)
	authn := NewAuthMiddleware(tokens, users)

	auth := router.Group("/auth")
	{
		auth.POST("/login", authHandler.LoginHandler)
		auth.POST("/register", authHandler.RegisterHandler)
	}

	items := router.Group("/items")
	{
		items.GET("", auctionHandler.ListItemsHandler)
		items.GET("/:item_id", auctionHandler.GetItemHandler)
		items.GET("/:item_id/countdown", auctionHandler.CountdownHandler)
		items.GET("/:item_id/countdown/live", auctionHandler.CountdownFeedHandler)
		items.POST("/:item_id/bids", authn.RequireUser, auctionHandler.PlaceBidHandler)

		admin := items.Group("", authn.RequireUser, authn.RequireAdmin)
		{
			admin.POST("", auctionHandler.CreateItemHandler)
			admin.POST("/:item_id/start", auctionHandler.StartAuctionHandler)
			admin.POST("/:item_id/end", auctionHandler.EndAuctionHandler)
			admin.DELETE("/:item_id", auctionHandler.DeleteItemHandler)
		}
	}

	creditsGroup := router.Group("/credits")
	{
		creditsGroup.GET("/packs", auctionHandler.PacksHandler)
		creditsGroup.POST("/purchase", authn.RequireUser, auctionHandler.PurchaseHandler)
	}

	router.GET("/rankings", auctionHandler.RankingsHandler)
	router.GET("/translations/:lang", handler.TranslationsHandler)

	return router
}
