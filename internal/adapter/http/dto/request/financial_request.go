package request

// LineItemRequest attaches a priced catalog item to a demand. BDI is the
// optional operator override; when omitted the catalog item's fixed BDI (or
// zero) applies.
type LineItemRequest struct {
	CatalogItemID string   `json:"itemId" binding:"required"`
	Quantity      int      `json:"quantity" binding:"required"`
	BDI           *float64 `json:"bdi"`
}
