package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"sgf_demandas/internal/domain/entities"
	"sgf_demandas/internal/usecase/interfaces"
)

var (
	ErrDemandNotCompleted    = errors.New("demand not completed")
	ErrNothingToInvoice      = errors.New("demand has no billable line items")
	ErrGatewayNotConfigured  = errors.New("payment gateway not configured")
	ErrInvalidInvoicePayload = errors.New("invalid invoice payload")
)

// IInvoiceUseCase drives a completed demand through payment and into the
// Faturada state.
//
// The transaction amount is always the demand's derived line-item total; the
// caller-provided payload only carries provider-specific fields (payment
// method, payer). A gateway failure leaves the demand untouched.

type IInvoiceUseCase interface {
	InvoiceDemand(ctx context.Context, demandID string, gatewayPayload json.RawMessage) (entities.Demand, json.RawMessage, error)
}

type InvoiceUseCase struct {
	demands interfaces.IDemandRepository
	gateway interfaces.IPaymentGateway
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(demands interfaces.IDemandRepository, gateway interfaces.IPaymentGateway) *InvoiceUseCase {
	return &InvoiceUseCase{demands: demands, gateway: gateway}
}

func (u *InvoiceUseCase) InvoiceDemand(ctx context.Context, demandID string, gatewayPayload json.RawMessage) (entities.Demand, json.RawMessage, error) {
	demandID = strings.TrimSpace(demandID)
	if demandID == "" {
		return entities.Demand{}, nil, ErrInvalidDemandID
	}
	if u.gateway == nil {
		return entities.Demand{}, nil, ErrGatewayNotConfigured
	}

	d, err := u.demands.GetByID(ctx, demandID)
	if err != nil {
		return entities.Demand{}, nil, err
	}
	if d.ID == "" {
		return entities.Demand{}, nil, ErrDemandNotFound
	}
	if d.Status != entities.StatusConcluida {
		log.Printf("[invoice][usecase] demand not completed demand_id=%s status=%s", demandID, d.Status)
		return entities.Demand{}, nil, ErrDemandNotCompleted
	}

	amount := d.TotalValue()
	if amount <= 0 {
		return entities.Demand{}, nil, ErrNothingToInvoice
	}

	payload := map[string]any{}
	if len(gatewayPayload) > 0 {
		if err := json.Unmarshal(gatewayPayload, &payload); err != nil {
			return entities.Demand{}, nil, fmt.Errorf("%w: %v", ErrInvalidInvoicePayload, err)
		}
	}
	// The registry is the source of truth for the amount; external_reference
	// ties provider events back to the demand.
	payload["transaction_amount"] = amount
	if _, ok := payload["external_reference"]; !ok {
		payload["external_reference"] = d.ID
	}
	if _, ok := payload["description"]; !ok {
		payload["description"] = fmt.Sprintf("Demanda %s / %s", d.CitsmartID, d.Company)
	}
	enriched, err := json.Marshal(payload)
	if err != nil {
		return entities.Demand{}, nil, err
	}

	log.Printf("[invoice][usecase] creating payment demand_id=%s amount=%.2f", demandID, amount)
	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Printf("[invoice][usecase] payment gateway failed demand_id=%s err=%v", demandID, err)
		return entities.Demand{}, nil, err
	}
	log.Printf("[invoice][usecase] payment created demand_id=%s provider_payment_id=%s provider_status=%s", demandID, providerID, providerStatus)

	d.Status = entities.StatusFaturada
	updated, err := u.demands.Upsert(ctx, d)
	if err != nil {
		return entities.Demand{}, nil, err
	}
	return updated, providerResp, nil
}
