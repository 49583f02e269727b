package model

import (
	"math"
	"strings"
)

// Rating is the quality grade chosen at approval time. It determines the
// fraction of the assignment's full payout that is credited.
type Rating string

const (
	RatingExcellent Rating = "excellent"
	RatingGood      Rating = "good"
	RatingPoor      Rating = "poor"
	RatingFailed    Rating = "failed"
)

// payout fractions per rating; failed pays nothing and excellent pays in full.
const (
	goodFraction = 0.667
	poorFraction = 0.33
)

// Valid reports whether the rating is one of the supported grades.
func (r Rating) Valid() bool {
	switch r {
	case RatingExcellent, RatingGood, RatingPoor, RatingFailed:
		return true
	default:
		return false
	}
}

// ParseRating normalizes a rating string and reports whether it is supported.
func ParseRating(value string) (Rating, bool) {
	r := Rating(strings.ToLower(strings.TrimSpace(value)))
	if r.Valid() {
		return r, true
	}
	return "", false
}

// Payout resolves the credited amount for a full payout value. Rounding is
// half-up on the floating product. Pure and total: unknown ratings pay zero.
func (r Rating) Payout(fullAmount int64) int64 {
	if fullAmount <= 0 {
		return 0
	}
	switch r {
	case RatingExcellent:
		return fullAmount
	case RatingGood:
		return int64(math.Round(float64(fullAmount) * goodFraction))
	case RatingPoor:
		return int64(math.Round(float64(fullAmount) * poorFraction))
	default:
		return 0
	}
}
