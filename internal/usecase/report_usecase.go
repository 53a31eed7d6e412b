package usecase

import (
	"context"
	"sort"
	"strings"

	"sgf_demandas/internal/domain/billing"
	"sgf_demandas/internal/domain/entities"
	"sgf_demandas/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// displayBuckets caps time-series output to the most recent buckets shown on
// the dashboard.
const displayBuckets = 6

// Filters narrows the demand collection before aggregation. Zero values mean
// "no filter". Search is a free-text match over company, both tracking
// numbers, responsible party and description.
type Filters struct {
	RequestMonth string
	Company      string
	ServiceType  string
	Search       string
}

type Summary struct {
	TotalRequests  int     `json:"totalRequests"`
	CompletionRate float64 `json:"completionRate"`
	PortfolioValue float64 `json:"portfolioValue"`
}

type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type PeriodValue struct {
	Period string  `json:"period"`
	Value  float64 `json:"value"`
}

type CategoryMonth struct {
	Month  string         `json:"month"`
	Counts map[string]int `json:"counts"`
}

// IReportUseCase is the aggregation engine feeding the dashboard. Every
// operation is a pure reduction over the filtered registry; empty input
// degrades to zeroed structures, never to an error.

type IReportUseCase interface {
	Summary(ctx context.Context, f Filters) (Summary, error)
	MonthlyVolume(ctx context.Context, f Filters) ([]MonthCount, error)
	BillingProjection(ctx context.Context, f Filters) ([]PeriodValue, error)
	CategoryDistribution(ctx context.Context, f Filters) ([]CategoryMonth, error)
}

type ReportUseCase struct {
	repo interfaces.IDemandRepository
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(repo interfaces.IDemandRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

func (u *ReportUseCase) filtered(ctx context.Context, f Filters) ([]entities.Demand, error) {
	ds, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]entities.Demand, 0, len(ds))
	for _, d := range ds {
		if f.RequestMonth != "" && d.RequestMonth() != f.RequestMonth {
			continue
		}
		if f.Company != "" && d.Company != f.Company {
			continue
		}
		if f.ServiceType != "" && d.ServiceType != f.ServiceType {
			continue
		}
		if search != "" && !matchesSearch(d, search) {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func matchesSearch(d entities.Demand, lowered string) bool {
	for _, field := range []string{d.Company, d.SEI, d.CitsmartID, d.Responsible, d.Description} {
		if strings.Contains(strings.ToLower(field), lowered) {
			return true
		}
	}
	return false
}

func (u *ReportUseCase) Summary(ctx context.Context, f Filters) (Summary, error) {
	ds, err := u.filtered(ctx, f)
	if err != nil {
		return Summary{}, err
	}

	total := len(ds)
	completed := 0
	portfolio := decimal.Zero
	for _, d := range ds {
		if d.Status.Billed() {
			completed++
		}
		portfolio = portfolio.Add(decimal.NewFromFloat(d.TotalValue()))
	}

	rate := 0.0
	if total > 0 {
		rate = float64(completed) / float64(total) * 100
	}
	value, _ := portfolio.Round(2).Float64()

	return Summary{TotalRequests: total, CompletionRate: rate, PortfolioValue: value}, nil
}

// MonthlyVolume counts demands per request month (YYYY-MM), ascending,
// keeping the most recent buckets.
func (u *ReportUseCase) MonthlyVolume(ctx context.Context, f Filters) ([]MonthCount, error) {
	ds, err := u.filtered(ctx, f)
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for _, d := range ds {
		m := d.RequestMonth()
		if m == "" {
			continue
		}
		counts[m]++
	}

	months := sortedKeys(counts)
	if len(months) > displayBuckets {
		months = months[len(months)-displayBuckets:]
	}

	out := make([]MonthCount, 0, len(months))
	for _, m := range months {
		out = append(out, MonthCount{Month: m, Count: counts[m]})
	}
	return out, nil
}

// BillingProjection sums line-item totals per billing-period label. Demands
// without a period fall under the pending sentinel. Labels are ordered by
// calendar month, never lexicographically.
func (u *ReportUseCase) BillingProjection(ctx context.Context, f Filters) ([]PeriodValue, error) {
	ds, err := u.filtered(ctx, f)
	if err != nil {
		return nil, err
	}

	totals := map[string]decimal.Decimal{}
	for _, d := range ds {
		label := d.BillingPeriod
		if label == "" {
			label = billing.PendingLabel
		}
		totals[label] = totals[label].Add(decimal.NewFromFloat(d.TotalValue()))
	}

	labels := make([]string, 0, len(totals))
	for l := range totals {
		labels = append(labels, l)
	}
	sort.SliceStable(labels, func(i, j int) bool {
		return billing.PeriodIndex(labels[i]) < billing.PeriodIndex(labels[j])
	})
	if len(labels) > displayBuckets {
		labels = labels[len(labels)-displayBuckets:]
	}

	out := make([]PeriodValue, 0, len(labels))
	for _, l := range labels {
		v, _ := totals[l].Round(2).Float64()
		out = append(out, PeriodValue{Period: l, Value: v})
	}
	return out, nil
}

// CategoryDistribution counts demands per service type across the most
// recent request months, for stacked reporting.
func (u *ReportUseCase) CategoryDistribution(ctx context.Context, f Filters) ([]CategoryMonth, error) {
	ds, err := u.filtered(ctx, f)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	for _, d := range ds {
		if m := d.RequestMonth(); m != "" {
			seen[m] = true
		}
	}
	months := make([]string, 0, len(seen))
	for m := range seen {
		months = append(months, m)
	}
	sort.Strings(months)
	if len(months) > displayBuckets {
		months = months[len(months)-displayBuckets:]
	}

	out := make([]CategoryMonth, 0, len(months))
	for _, m := range months {
		counts := map[string]int{}
		for _, d := range ds {
			if d.RequestMonth() == m && d.ServiceType != "" {
				counts[d.ServiceType]++
			}
		}
		out = append(out, CategoryMonth{Month: m, Counts: counts})
	}
	return out, nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
