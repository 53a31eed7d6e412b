package entities

import "github.com/shopspring/decimal"

// DemandStatus represents the lifecycle of a demand (demanda).
//
// Domain notes:
//   - A demand starts as "Aberta" and ends as "Faturada" once invoiced.
//   - The operator UI historically allowed free reassignment between states;
//     the strict forward-only workflow is opt-in (see usecase.DemandUseCase).

type DemandStatus string

const (
	StatusAberta     DemandStatus = "Aberta"
	StatusEmExecucao DemandStatus = "Em Execução"
	StatusConcluida  DemandStatus = "Concluída"
	StatusFaturada   DemandStatus = "Faturada"
)

// Valid reports whether s is one of the four known workflow states.
func (s DemandStatus) Valid() bool {
	switch s {
	case StatusAberta, StatusEmExecucao, StatusConcluida, StatusFaturada:
		return true
	}
	return false
}

// Billed reports whether the demand counts as delivered for completion-rate
// purposes (Concluída or Faturada).
func (s DemandStatus) Billed() bool {
	return s == StatusConcluida || s == StatusFaturada
}

// Attachment is an opaque file reference carried by a demand. The core never
// inspects Data; encoding/decoding belongs to the attachment codec at the
// edges.
type Attachment struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Size int64  `json:"size"`
	Data string `json:"data"`
}

// Demand is the trackable unit of requested service work.
//
// Field semantics:
//   - RequestDate / CompletionDate are calendar dates ("2006-01-02"), no
//     time-of-day.
//   - BillingPeriod is derived from CompletionDate by the billing resolver and
//     is non-empty exactly when CompletionDate is non-empty.
//   - Company references the contracting company by name; company names are
//     unique so the reference is unambiguous.
//   - CreatedAt is a unix-millisecond creation timestamp used for stable
//     newest-first ordering.
type Demand struct {
	ID             string          `json:"id"`
	Company        string          `json:"empresa"`
	CitsmartID     string          `json:"citsmartId"`
	SEI            string          `json:"sei"`
	ServiceType    string          `json:"tipoServico"`
	Description    string          `json:"descricao"`
	Requester      string          `json:"solicitante"`
	Sector         string          `json:"setor"`
	Location       string          `json:"local"`
	Responsible    string          `json:"responsavel"`
	RequestDate    string          `json:"dataSolicitacao"`
	CompletionDate string          `json:"dataConclusao"`
	BillingPeriod  string          `json:"mesFaturamento"`
	Status         DemandStatus    `json:"status"`
	Attachments    []Attachment    `json:"attachments"`
	FinancialItems []FinancialItem `json:"financialItems"`
	CreatedAt      int64           `json:"createdAt"`
}

// TotalValue is the sum of the demand's line-item totals, rounded at the
// currency boundary. It is always derived; there is no stored aggregate that
// could drift.
func (d Demand) TotalValue() float64 {
	sum := decimal.Zero
	for _, it := range d.FinancialItems {
		sum = sum.Add(decimal.NewFromFloat(it.Total))
	}
	f, _ := sum.Round(2).Float64()
	return f
}

// RequestMonth returns the "YYYY-MM" bucket of the request date, or "" when
// the date is unset.
func (d Demand) RequestMonth() string {
	if len(d.RequestDate) < 7 {
		return ""
	}
	return d.RequestDate[:7]
}
