package countdown

import (
	"fmt"
	"time"

	"penny-auction/internal/models"
)

// DefaultAuctionDuration is the fixed length of every auction. An upcoming
// item's start time is implied: it begins this long before its end time.
const DefaultAuctionDuration = 24 * time.Hour

// Countdown is the result of evaluating an item's timer against a
// reference time. Durations are always clamped to zero or above.
type Countdown struct {
	Remaining    time.Duration
	Expired      bool
	StartsIn     time.Duration
	StartingSoon bool
}

// Evaluate computes the countdown state for an item at the given reference
// time. It is a pure function: it never mutates the item, and the caller
// owns any status transition made in response to Expired or StartingSoon.
func Evaluate(ref time.Time, item models.AuctionItem) Countdown {
	var c Countdown

	switch item.Status {
	case models.StatusActive:
		remaining := item.EndTime.Sub(ref)
		if remaining <= 0 {
			c.Expired = true
		} else {
			c.Remaining = remaining
		}
	case models.StatusUpcoming:
		startTime := item.EndTime.Add(-DefaultAuctionDuration)
		startsIn := startTime.Sub(ref)
		if startsIn <= 0 {
			c.StartingSoon = true
		} else {
			c.StartsIn = startsIn
		}
		if remaining := item.EndTime.Sub(ref); remaining > 0 {
			c.Remaining = remaining
		}
	case models.StatusEnded:
		c.Expired = true
	}

	return c
}

// FormatClock renders a duration as zero-padded HH:MM:SS. Hours are not
// split into days, so long countdowns render as e.g. "28:00:00".
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// FormatStartsIn renders a starts-in duration as "{h}h {m}m".
func FormatStartsIn(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	return fmt.Sprintf("%dh %dm", h, m)
}
