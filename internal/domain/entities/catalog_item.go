package entities

// CatalogItem is a reference price-list entry for billable service work.
//
// FixedBDI, when non-nil, is the contractual markup percentage applied to
// every line item built from this entry unless the operator supplies an
// override. Keeping it on the entity (keyed by id) replaces the historical
// markup-by-display-name lookup table, which silently changed totals on
// renames.
type CatalogItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	UnitValue   float64  `json:"unitValue"`
	UnitMeasure string   `json:"unitMeasure"`
	FixedBDI    *float64 `json:"bdiFixo,omitempty"`
}
