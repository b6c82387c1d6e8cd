package model

import "time"

// StatusCount is a single group of a count-by-status aggregation
type StatusCount struct {
	Status string `bson:"_id"`
	Count  int64  `bson:"count"`
}

// MonthlyInvoiceTotal is a single group of the invoices-by-month aggregation,
// keyed by "%Y-%m" period string derived from issueDate
type MonthlyInvoiceTotal struct {
	Period string  `bson:"_id"`
	Total  float64 `bson:"total"`
	Count  int64   `bson:"count"`
}

// CustomerStatusStats is a single group of the customers-by-status aggregation
type CustomerStatusStats struct {
	Status       string  `bson:"_id"`
	Count        int64   `bson:"count"`
	TotalRevenue float64 `bson:"total_revenue"`
}

// InvoicePeriodSummary is the per-period entry of the summary report
type InvoicePeriodSummary struct {
	Total float64 `json:"total"`
	Count int64   `json:"count"`
}

// CustomerStatusSummary is the per-status entry of the summary report
type CustomerStatusSummary struct {
	Count        int64   `json:"count"`
	TotalRevenue float64 `json:"total_revenue"`
}

// SummaryReport bundles the three independent summary aggregations.
// Maps are always present, empty collections yield empty mappings.
type SummaryReport struct {
	Queries     map[string]int64                 `json:"queries"`
	Invoices    map[string]InvoicePeriodSummary  `json:"invoices"`
	Customers   map[string]CustomerStatusSummary `json:"customers"`
	GeneratedAt time.Time                        `json:"generated_at"`
}

// QueryAnalyticsRow keeps the raw grouped shape produced by the analytics pipeline
type QueryAnalyticsRow struct {
	ID struct {
		Date     string `json:"date" bson:"date"`
		Status   string `json:"status" bson:"status"`
		Priority string `json:"priority" bson:"priority"`
	} `json:"_id" bson:"_id"`
	Count int64 `json:"count" bson:"count"`
}

// RevenueRow keeps the raw grouped shape produced by the revenue pipeline
type RevenueRow struct {
	ID struct {
		Year  int `json:"year" bson:"year"`
		Month int `json:"month" bson:"month"`
	} `json:"_id" bson:"_id"`
	TotalRevenue    float64 `json:"total_revenue" bson:"total_revenue"`
	InvoiceCount    int64   `json:"invoice_count" bson:"invoice_count"`
	AvgInvoiceValue float64 `json:"avg_invoice_value" bson:"avg_invoice_value"`
}
