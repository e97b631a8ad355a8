package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrItemNotFound = errors.New("item not found")
	ErrUserNotFound = errors.New("user not found")
	ErrPackNotFound = errors.New("credit pack not found")
)

// business logic errors
var (
	ErrNotAuthenticated    = errors.New("not authenticated")
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrAuctionNotActive    = errors.New("auction not active")
	ErrInvalidItem         = errors.New("invalid item")
	ErrAdminOnly           = errors.New("admin access required")
)
