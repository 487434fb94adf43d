package pricing

import "math"

// Quote is the full price breakdown for a size and delivery distance.
type Quote struct {
	Base        float64 `json:"base"`
	ExtraMiles  float64 `json:"extraMiles"`
	DistanceFee float64 `json:"distanceFee"`
	Subtotal    float64 `json:"subtotal"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`
}

// CalculateQuote computes the delivered price for a catalog size.
// Distance beyond the included miles is billed per mile; tax applies
// to the subtotal.
func (c *Catalog) CalculateQuote(size Size, distanceMi float64) Quote {
	base := float64(size.BasePrice)
	extraMiles := math.Max(0, distanceMi-c.includedMiles)
	distanceFee := extraMiles * c.perMileRate
	subtotal := base + distanceFee
	tax := subtotal * c.taxRate
	return Quote{
		Base:        base,
		ExtraMiles:  extraMiles,
		DistanceFee: distanceFee,
		Subtotal:    subtotal,
		Tax:         tax,
		Total:       subtotal + tax,
	}
}
