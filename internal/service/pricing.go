package service

import (
	"github.com/shopspring/decimal"
)

// Totals 結帳金額明細
// 不變量: Total = Subtotal + Tax + Shipping - Discount (Total被夾到0時除外)
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Shipping decimal.Decimal `json:"shipping"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

var oneHundred = decimal.NewFromInt(100)

// ComputeTotals 純函數
// tax = round(subtotal * taxRatePercent / 100, 2)
// 折扣太大導致total為負時夾到0
func ComputeTotals(subtotal, taxRatePercent, shipping, discount decimal.Decimal) Totals {
	tax := subtotal.Mul(taxRatePercent).Div(oneHundred).Round(2)

	total := subtotal.Add(tax).Add(shipping).Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Discount: discount,
		Total:    total,
	}
}
