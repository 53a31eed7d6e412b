// Package export renders the demand registry into downloadable spreadsheets.
package export

import (
	"bytes"
	"fmt"

	"sgf_demandas/internal/domain/billing"
	"sgf_demandas/internal/domain/entities"
	"sgf_demandas/internal/usecase"

	"github.com/xuri/excelize/v2"
)

const (
	demandsSheet    = "Demandas"
	projectionSheet = "Faturamento"
)

var demandHeader = []any{
	"Empresa", "ID Citsmart", "SEI", "Tipo de Serviço", "Descrição",
	"Solicitante", "Setor", "Local", "Responsável",
	"Data Solicitação", "Data Conclusão", "Status", "Mês Faturamento", "Valor Total",
}

var projectionHeader = []any{"Mês Faturamento", "Valor"}

// Workbook builds the download workbook: one sheet with a row per demand in
// the given order, one with the billing projection. The billing-period column
// falls back to the pending sentinel so the spreadsheet never carries blank
// periods.
func Workbook(demands []entities.Demand, projection []usecase.PeriodValue) (*bytes.Buffer, error) {
	xl := excelize.NewFile()
	defer xl.Close()

	xl.SetSheetName(xl.GetSheetName(0), demandsSheet)
	if err := xl.SetSheetRow(demandsSheet, "A1", &demandHeader); err != nil {
		return nil, fmt.Errorf("write header row: %w", err)
	}

	for i, d := range demands {
		period := d.BillingPeriod
		if period == "" {
			period = billing.PendingLabel
		}
		record := []any{
			d.Company, d.CitsmartID, d.SEI, d.ServiceType, d.Description,
			d.Requester, d.Sector, d.Location, d.Responsible,
			d.RequestDate, d.CompletionDate, string(d.Status), period, d.TotalValue(),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := xl.SetSheetRow(demandsSheet, cell, &record); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if _, err := xl.NewSheet(projectionSheet); err != nil {
		return nil, err
	}
	if err := xl.SetSheetRow(projectionSheet, "A1", &projectionHeader); err != nil {
		return nil, fmt.Errorf("write projection header: %w", err)
	}
	for i, pv := range projection {
		record := []any{pv.Period, pv.Value}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := xl.SetSheetRow(projectionSheet, cell, &record); err != nil {
			return nil, fmt.Errorf("write projection row %d: %w", i+2, err)
		}
	}

	return xl.WriteToBuffer()
}
