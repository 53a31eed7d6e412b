// Package billing derives invoicing periods from completion dates and orders
// period labels in calendar sequence.
package billing

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidCompletionDate = errors.New("invalid completion date")

// PendingLabel buckets demands that have no billing period yet.
const PendingLabel = "Não Faturado"

// monthNames is the fixed pt-BR month sequence. Label ordering matches
// against this list, never lexicographic ("Abril" must not sort before
// "Janeiro").
var monthNames = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// ResolvePeriod maps a completion date ("2006-01-02") to its invoicing
// period label: the month following completion, formatted "<Mês> / <Ano>".
//
// An empty date yields an empty label (billing pending). A malformed date is
// an error; it is never coerced to a zero value. The date is anchored at noon
// so timezone math cannot shift the calendar day.
func ResolvePeriod(completionDate string) (string, error) {
	if completionDate == "" {
		return "", nil
	}
	t, err := time.Parse("2006-01-02", completionDate)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidCompletionDate, completionDate)
	}
	anchored := time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC)
	next := anchored.AddDate(0, 1, 0)
	return fmt.Sprintf("%s / %d", monthNames[next.Month()-1], next.Year()), nil
}

// PeriodIndex orders a period label against the calendar month sequence. The
// pending sentinel (and any label with no recognizable month) sorts first.
// The year is intentionally ignored, matching the reference dashboard.
func PeriodIndex(label string) int {
	for i, name := range monthNames {
		if strings.Contains(label, name) {
			return i
		}
	}
	return -1
}
