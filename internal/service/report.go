package service

import (
	"context"
	"time"

	"github.com/umalmyha/erp-integration/internal/model"
	"github.com/umalmyha/erp-integration/internal/repository"
)

// summary report caps invoice aggregation at 12 most recent periods
const summaryInvoicePeriods = 12

// approximation used by the revenue window, not calendar-accurate
const daysPerMonth = 30

// ReportService assembles reporting aggregations
type ReportService interface {
	Summary(ctx context.Context) (*model.SummaryReport, error)
	QueryAnalytics(ctx context.Context, days int, status string) ([]model.QueryAnalyticsRow, error)
	RevenueAnalytics(ctx context.Context, months int) ([]model.RevenueRow, error)
	TopCustomers(ctx context.Context, limit int) ([]model.TopCustomer, error)
}

type reportService struct {
	queryRps    repository.QueryRepository
	invoiceRps  repository.InvoiceRepository
	customerRps repository.CustomerRepository
}

// NewReportService builds ReportService
func NewReportService(queryRps repository.QueryRepository, invoiceRps repository.InvoiceRepository, customerRps repository.CustomerRepository) ReportService {
	return &reportService{
		queryRps:    queryRps,
		invoiceRps:  invoiceRps,
		customerRps: customerRps,
	}
}

func (s *reportService) Summary(ctx context.Context) (*model.SummaryReport, error) {
	queryCounts, err := s.queryRps.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	invoiceTotals, err := s.invoiceRps.TotalsByMonth(ctx, summaryInvoicePeriods)
	if err != nil {
		return nil, err
	}

	customerStats, err := s.customerRps.StatsByStatus(ctx)
	if err != nil {
		return nil, err
	}

	report := &model.SummaryReport{
		Queries:     make(map[string]int64, len(queryCounts)),
		Invoices:    make(map[string]model.InvoicePeriodSummary, len(invoiceTotals)),
		Customers:   make(map[string]model.CustomerStatusSummary, len(customerStats)),
		GeneratedAt: time.Now().UTC(),
	}

	for _, qc := range queryCounts {
		report.Queries[qc.Status] = qc.Count
	}

	for _, it := range invoiceTotals {
		report.Invoices[it.Period] = model.InvoicePeriodSummary{
			Total: it.Total,
			Count: it.Count,
		}
	}

	for _, cs := range customerStats {
		report.Customers[cs.Status] = model.CustomerStatusSummary{
			Count:        cs.Count,
			TotalRevenue: cs.TotalRevenue,
		}
	}

	return report, nil
}

func (s *reportService) QueryAnalytics(ctx context.Context, days int, status string) ([]model.QueryAnalyticsRow, error) {
	to := time.Now().UTC()
	from := to.AddDate(0, 0, -days)
	return s.queryRps.Analytics(ctx, from, to, status)
}

func (s *reportService) RevenueAnalytics(ctx context.Context, months int) ([]model.RevenueRow, error) {
	to := time.Now().UTC()
	from := to.Add(-time.Duration(months) * daysPerMonth * 24 * time.Hour)
	return s.invoiceRps.Revenue(ctx, from, to)
}

func (s *reportService) TopCustomers(ctx context.Context, limit int) ([]model.TopCustomer, error) {
	return s.customerRps.TopByRevenue(ctx, limit)
}
