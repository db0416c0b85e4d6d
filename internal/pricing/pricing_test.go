package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	cases := []struct {
		subtotal int64
		shipping int64
		tax      int64
		total    int64
	}{
		{subtotal: 9999, shipping: 500, tax: 1800, total: 12299},
		{subtotal: 10000, shipping: 500, tax: 1800, total: 12300},
		{subtotal: 10001, shipping: 0, tax: 1800, total: 11801},
		{subtotal: 1000, shipping: 500, tax: 180, total: 1680},
		{subtotal: 1, shipping: 500, tax: 0, total: 501},
		{subtotal: 0, shipping: 500, tax: 0, total: 500},
		{subtotal: 11400, shipping: 0, tax: 2052, total: 13452},
	}
	for _, tc := range cases {
		q := Calculate(tc.subtotal)
		require.Equal(t, tc.subtotal, q.Subtotal, "subtotal %d", tc.subtotal)
		require.Equal(t, tc.shipping, q.ShippingCost, "shipping for %d", tc.subtotal)
		require.Equal(t, tc.tax, q.Tax, "tax for %d", tc.subtotal)
		require.Equal(t, tc.total, q.Total, "total for %d", tc.subtotal)
	}
}

func TestCalculateTaxRoundsHalfUp(t *testing.T) {
	// 25 * 0.18 = 4.5 rounds to 5
	require.Equal(t, int64(5), Calculate(25).Tax)
	// 24 * 0.18 = 4.32 rounds to 4
	require.Equal(t, int64(4), Calculate(24).Tax)
}
