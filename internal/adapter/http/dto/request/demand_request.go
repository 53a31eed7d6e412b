package request

import (
	"strings"

	"sgf_demandas/internal/domain/entities"
)

// DemandRequest is the operator-facing payload for creating or replacing a
// demand. Derived fields (mesFaturamento, createdAt) are never accepted from
// the wire; the use case computes them.
type DemandRequest struct {
	ID             string                `json:"id"`
	Company        string                `json:"empresa" binding:"required"`
	CitsmartID     string                `json:"citsmartId"`
	SEI            string                `json:"sei"`
	ServiceType    string                `json:"tipoServico"`
	Description    string                `json:"descricao"`
	Requester      string                `json:"solicitante"`
	Sector         string                `json:"setor"`
	Location       string                `json:"local"`
	Responsible    string                `json:"responsavel"`
	RequestDate    string                `json:"dataSolicitacao" binding:"required"`
	CompletionDate string                `json:"dataConclusao"`
	Status         string                `json:"status"`
	Attachments    []entities.Attachment `json:"attachments"`
}

func (r DemandRequest) ToEntity() entities.Demand {
	return entities.Demand{
		ID:             strings.TrimSpace(r.ID),
		Company:        r.Company,
		CitsmartID:     strings.TrimSpace(r.CitsmartID),
		SEI:            strings.TrimSpace(r.SEI),
		ServiceType:    strings.TrimSpace(r.ServiceType),
		Description:    r.Description,
		Requester:      strings.TrimSpace(r.Requester),
		Sector:         strings.TrimSpace(r.Sector),
		Location:       strings.TrimSpace(r.Location),
		Responsible:    strings.TrimSpace(r.Responsible),
		RequestDate:    strings.TrimSpace(r.RequestDate),
		CompletionDate: strings.TrimSpace(r.CompletionDate),
		Status:         entities.DemandStatus(r.Status),
		Attachments:    r.Attachments,
	}
}

// StatusRequest reassigns the workflow state. DataConclusao is required by
// the use case when moving to Concluída with no stored completion date.
type StatusRequest struct {
	Status         string `json:"status" binding:"required"`
	CompletionDate string `json:"dataConclusao"`
}
