package entities

// FinancialItem is a costed line item attached to a demand.
//
// Name, UnitValue and UnitMeasure are copied from the catalog item at
// creation time, a snapshot rather than a live reference. Removing or editing the
// catalog item later never changes historical line items. Once attached to a
// demand a line item is immutable except by removal.
type FinancialItem struct {
	ID          string  `json:"id"`
	ItemID      string  `json:"itemId"`
	Name        string  `json:"name"`
	UnitValue   float64 `json:"unitValue"`
	UnitMeasure string  `json:"unitMeasure"`
	Quantity    int     `json:"quantity"`
	BDI         float64 `json:"bdi"`
	Total       float64 `json:"total"`
}
