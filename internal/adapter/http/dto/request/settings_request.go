package request

// CatalogItemRequest adds a price-list entry.
type CatalogItemRequest struct {
	Name        string   `json:"name" binding:"required"`
	UnitValue   float64  `json:"unitValue"`
	UnitMeasure string   `json:"unitMeasure"`
	FixedBDI    *float64 `json:"bdiFixo"`
}

// CompanyRequest adds a contracting company.
type CompanyRequest struct {
	Name string `json:"name" binding:"required"`
}

// LoginRequest authenticates an operator.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserRequest creates an operator account.
type UserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}
