package credits

import (
	"fmt"

	"penny-auction/internal/auctionerrors"
	"penny-auction/internal/models"
)

// CreditVendor sells bid-credit packs. Purchase returns the credit delta
// to apply to the buyer's balance; applying it is the user store's job.
type CreditVendor interface {
	Packs() []models.CreditPack
	Purchase(packID string) (int, error)
}

// MockVendor is a fixed-catalog vendor with no real payment processing.
type MockVendor struct {
	packs []models.CreditPack
}

// NewMockVendor creates a vendor with the standard pack catalog
func NewMockVendor() *MockVendor {
	return &MockVendor{
		packs: []models.CreditPack{
			{PackID: "1", Credits: 10, Price: 500},
			{PackID: "2", Credits: 50, Bonus: 5, Price: 2000, Popular: true},
			{PackID: "3", Credits: 100, Bonus: 15, Price: 3500},
		},
	}
}

// Packs returns a snapshot of the catalog
func (v *MockVendor) Packs() []models.CreditPack {
	return append([]models.CreditPack(nil), v.packs...)
}

// Purchase returns the credits granted by the pack, bonus included
func (v *MockVendor) Purchase(packID string) (int, error) {
	for _, pack := range v.packs {
		if pack.PackID == packID {
			return pack.Credits + pack.Bonus, nil
		}
	}
	return 0, fmt.Errorf("purchase pack %s: %w", packID, auctionerrors.ErrPackNotFound)
}
