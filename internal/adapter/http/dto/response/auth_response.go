package response

import (
	"encoding/json"

	"sgf_demandas/internal/domain/entities"
)

type LoginResponse struct {
	Token    string        `json:"token"`
	Username string        `json:"username"`
	Role     entities.Role `json:"role"`
}

// InvoiceResponse returns the invoiced demand alongside the raw provider
// payment payload for traceability.
type InvoiceResponse struct {
	Demand  DemandResponse  `json:"demand"`
	Payment json.RawMessage `json:"payment"`
}
