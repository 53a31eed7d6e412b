package response

import "sgf_demandas/internal/domain/entities"

// DemandResponse is the wire shape of a demand. ValorTotal is derived from
// the line items at response time; it is never stored.
type DemandResponse struct {
	entities.Demand
	TotalValue float64 `json:"valorTotal"`
}

func FromDemand(d entities.Demand) DemandResponse {
	return DemandResponse{Demand: d, TotalValue: d.TotalValue()}
}

func FromDemands(ds []entities.Demand) []DemandResponse {
	out := make([]DemandResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, FromDemand(d))
	}
	return out
}
