package session

// Totals is the detailed breakdown of an order's cost.
type Totals struct {
	// SubtotalGross is the sum of price*quantity before any discount.
	SubtotalGross float64 `json:"subtotalGross"`
	// ItemDiscount is the sum of item-specific discounts.
	ItemDiscount float64 `json:"itemDiscount"`
	// SubtotalNet is the subtotal after item discounts.
	SubtotalNet float64 `json:"subtotalNet"`
	// GlobalDiscount is the order-level (promo) discount amount.
	GlobalDiscount float64 `json:"globalDiscount"`
	// Taxable is the amount tax is computed on.
	Taxable float64 `json:"taxable"`
	// Tax is the tax amount.
	Tax float64 `json:"tax"`
	// FinalTotal is the amount charged.
	FinalTotal float64 `json:"finalTotal"`
}

// ComputeTotals calculates the order totals: item discounts first, then
// the global discount on the discounted subtotal, then tax on the
// remainder.
func ComputeTotals(lines []CartLine, taxRate, globalDiscountPercent float64) Totals {
	var totals Totals

	for _, line := range lines {
		quantity := line.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		lineTotal := line.Item.Price * float64(quantity)
		totals.SubtotalGross += lineTotal

		if line.Discount > 0 {
			totals.ItemDiscount += lineTotal * line.Discount / 100
		}
	}

	totals.SubtotalNet = totals.SubtotalGross - totals.ItemDiscount

	if globalDiscountPercent > 0 {
		totals.GlobalDiscount = totals.SubtotalNet * globalDiscountPercent / 100
	}

	totals.Taxable = totals.SubtotalNet - totals.GlobalDiscount
	totals.Tax = totals.Taxable * taxRate
	totals.FinalTotal = totals.Taxable + totals.Tax

	return totals
}
