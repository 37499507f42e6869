package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestComputeTotals(t *testing.T) {
	// subtotal 100, 10% 稅, 運費 10, 無折扣 -> 120
	totals := ComputeTotals(d("100.00"), d("10"), d("10.00"), decimal.Zero)

	require.True(t, d("10.00").Equal(totals.Tax))
	require.True(t, d("120.00").Equal(totals.Total))
}

func TestComputeTotals_WithDiscount(t *testing.T) {
	// subtotal 200, 10% 稅, 運費 10, 折扣 20 -> 210
	totals := ComputeTotals(d("200.00"), d("10"), d("10.00"), d("20.00"))

	require.True(t, d("20.00").Equal(totals.Tax))
	require.True(t, d("20.00").Equal(totals.Discount))
	require.True(t, d("210.00").Equal(totals.Total))
}

func TestComputeTotals_TaxRounding(t *testing.T) {
	// 33.33 * 10% = 3.333 -> 3.33
	totals := ComputeTotals(d("33.33"), d("10"), decimal.Zero, decimal.Zero)

	require.True(t, d("3.33").Equal(totals.Tax))
	require.True(t, d("36.66").Equal(totals.Total))
}

func TestComputeTotals_Invariant(t *testing.T) {
	cases := []struct {
		subtotal string
		discount string
	}{
		{"100.00", "0"},
		{"59.99", "5.00"},
		{"250.50", "25.05"},
		{"1.00", "0.50"},
	}

	for _, c := range cases {
		totals := ComputeTotals(d(c.subtotal), d("10"), d("10.00"), d(c.discount))
		expected := totals.Subtotal.Add(totals.Tax).Add(totals.Shipping).Sub(totals.Discount)
		require.True(t, expected.Equal(totals.Total), "subtotal=%s discount=%s", c.subtotal, c.discount)
	}
}

func TestComputeTotals_ClampedToZero(t *testing.T) {
	// 折扣超過 subtotal+tax+shipping 時 total 夾到 0 而不是負數
	totals := ComputeTotals(d("10.00"), d("10"), d("5.00"), d("100.00"))

	require.True(t, totals.Total.IsZero())
	require.False(t, totals.Total.IsNegative())
}

func TestComputeTotals_ZeroSubtotal(t *testing.T) {
	totals := ComputeTotals(decimal.Zero, d("10"), d("10.00"), decimal.Zero)

	require.True(t, totals.Tax.IsZero())
	require.True(t, d("10.00").Equal(totals.Total))
}
