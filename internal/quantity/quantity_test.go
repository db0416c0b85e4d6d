package quantity

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thangamsteels/storefront/internal/models"
)

var tmtBars = models.Product{ID: "tmt-bars-8mm", Price: 380, MOQ: 10, Increment: 5}

func TestValid(t *testing.T) {
	cases := []struct {
		q    int
		want bool
	}{
		{9, false},
		{10, true},
		{12, false},
		{15, true},
		{20, true},
		{0, false},
		{-5, false},
		{105, true},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Valid(tmtBars, tc.q), "quantity %d", tc.q)
	}
}

func TestValidMOQNotMultipleOfIncrement(t *testing.T) {
	// moq 3, increment 2: the sequence is 3, 5, 7, ... so even values
	// above moq are invalid.
	p := models.Product{ID: "odd", MOQ: 3, Increment: 2}
	require.True(t, Valid(p, 3))
	require.False(t, Valid(p, 4))
	require.True(t, Valid(p, 5))
	require.False(t, Valid(p, 6))
}

func TestSnap(t *testing.T) {
	cases := []struct {
		raw  int
		want int
	}{
		{0, 10},
		{-3, 10},
		{10, 10},
		{11, 10},
		{12, 10},
		{13, 15},
		{14, 15},
		{15, 15},
		{23, 25},
		{100, 100},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Snap(tmtBars, tc.raw), "raw %d", tc.raw)
	}
}

func TestNextPrev(t *testing.T) {
	require.Equal(t, 15, Next(tmtBars, 10))
	require.Equal(t, 10, Prev(tmtBars, 15))
	// decrement never goes below MOQ
	require.Equal(t, 10, Prev(tmtBars, 10))
}
