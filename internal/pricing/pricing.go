package pricing

const (
	// Orders strictly above this subtotal ship free.
	FreeShippingThreshold = 10000
	FlatShippingCost      = 500
	// GST, percent of subtotal.
	TaxRatePercent = 18
)

type Quote struct {
	Subtotal     int64 `json:"subtotal"`
	ShippingCost int64 `json:"shipping_cost"`
	Tax          int64 `json:"tax"`
	Total        int64 `json:"total"`
}

// Calculate derives shipping, GST and grand total from a cart subtotal.
// Tax rounds half-up to the nearest rupee. The live cart summary and
// the final order record both go through here so the two never drift.
func Calculate(subtotal int64) Quote {
	shipping := int64(FlatShippingCost)
	if subtotal > FreeShippingThreshold {
		shipping = 0
	}
	tax := (subtotal*TaxRatePercent + 50) / 100
	return Quote{
		Subtotal:     subtotal,
		ShippingCost: shipping,
		Tax:          tax,
		Total:        subtotal + shipping + tax,
	}
}
