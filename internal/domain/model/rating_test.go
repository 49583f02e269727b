package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRating_Payout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		rating Rating
		full   int64
		want   int64
	}{
		{"excellent pays in full", RatingExcellent, 150, 150},
		{"good pays two thirds rounded", RatingGood, 150, 100},
		{"poor pays a third rounded", RatingPoor, 150, 50},
		{"failed pays nothing", RatingFailed, 150, 0},
		{"good rounds half up", RatingGood, 500, 334},
		{"poor small amount", RatingPoor, 10, 3},
		{"good single unit", RatingGood, 1, 1},
		{"poor single unit", RatingPoor, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.rating.Payout(tt.full))
		})
	}
}

func TestRating_Payout_Bounds(t *testing.T) {
	t.Parallel()

	ratings := []Rating{RatingExcellent, RatingGood, RatingPoor, RatingFailed}
	amounts := []int64{0, 1, 7, 99, 150, 10000, 1 << 40}

	for _, r := range ratings {
		for _, full := range amounts {
			got := r.Payout(full)
			assert.GreaterOrEqual(t, got, int64(0), "rating %s full %d", r, full)
			assert.LessOrEqual(t, got, full, "rating %s full %d", r, full)
		}
	}
}

func TestRating_Payout_ZeroFullAmount(t *testing.T) {
	t.Parallel()

	for _, r := range []Rating{RatingExcellent, RatingGood, RatingPoor, RatingFailed} {
		assert.Zero(t, r.Payout(0))
	}
}

func TestRating_Payout_Pure(t *testing.T) {
	t.Parallel()

	// Same inputs, same output.
	assert.Equal(t, RatingGood.Payout(12345), RatingGood.Payout(12345))
}

func TestParseRating(t *testing.T) {
	t.Parallel()

	r, ok := ParseRating("  Good ")
	assert.True(t, ok)
	assert.Equal(t, RatingGood, r)

	_, ok = ParseRating("amazing")
	assert.False(t, ok)

	_, ok = ParseRating("")
	assert.False(t, ok)
}
