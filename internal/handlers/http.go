package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/erp-integration/internal/model"
	"github.com/umalmyha/erp-integration/internal/service"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	defaultAnalyticsDays    = 30
	defaultRevenueMonths    = 6
	defaultTopCustomerLimit = 10
)

type healthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database"`
}

// HealthHTTPHandler is http handler for liveness checks
type HealthHTTPHandler struct {
	client *mongo.Client
}

// NewHealthHTTPHandler builds new HealthHTTPHandler
func NewHealthHTTPHandler(client *mongo.Client) *HealthHTTPHandler {
	return &HealthHTTPHandler{client: client}
}

// Health checks database connectivity
// @Summary     Health check
// @Description Verifies database connectivity via ping
// @Tags        health
// @Produce     json
// @Success     200 {object} healthStatus
// @Failure     503 {object} echo.HTTPError
// @Router      /health [get]
func (h *HealthHTTPHandler) Health(c echo.Context) error {
	if err := h.client.Ping(c.Request().Context(), readpref.Primary()); err != nil {
		logrus.Errorf("health check failed - %v", err)
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Service unhealthy")
	}

	return c.JSON(http.StatusOK, &healthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Database:  "connected",
	})
}

type webhookPayload struct {
	LeadID   string         `json:"leadId" validate:"required"`
	Email    string         `json:"email"`
	Name     string         `json:"name"`
	Company  string         `json:"company"`
	Phone    string         `json:"phone"`
	Source   string         `json:"source"`
	Metadata map[string]any `json:"metadata"`
}

type webhookAck struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	LeadID  string `json:"lead_id"`
}

// WebhookHTTPHandler is http handler for webhook ingestion
type WebhookHTTPHandler struct {
	webhookSvc service.WebhookService
}

// NewWebhookHTTPHandler builds new WebhookHTTPHandler
func NewWebhookHTTPHandler(webhookSvc service.WebhookService) *WebhookHTTPHandler {
	return &WebhookHTTPHandler{webhookSvc: webhookSvc}
}

// Receive accepts inbound lead payload
// @Summary     Receive webhook
// @Description Persists inbound lead payload and opportunistically creates a lead customer
// @Tags        integration
// @Accept      json
// @Produce     json
// @Param       webhookPayload body     webhookPayload true "Lead payload"
// @Success     200            {object} webhookAck
// @Failure     400            {object} echo.HTTPError
// @Failure     500            {object} echo.HTTPError
// @Router      /integration/webhook [post]
func (h *WebhookHTTPHandler) Receive(c echo.Context) error {
	var pld webhookPayload
	if err := c.Bind(&pld); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&pld); err != nil {
		return err
	}

	if pld.Source == "" {
		pld.Source = model.SourceWebhook
	}
	if pld.Metadata == nil {
		pld.Metadata = map[string]any{}
	}

	wh := &model.Webhook{
		LeadID:   pld.LeadID,
		Email:    pld.Email,
		Name:     pld.Name,
		Company:  pld.Company,
		Phone:    pld.Phone,
		Source:   pld.Source,
		Metadata: pld.Metadata,
	}

	if err := h.webhookSvc.Process(c.Request().Context(), wh); err != nil {
		logrus.Errorf("error processing webhook - %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to process webhook")
	}

	return c.JSON(http.StatusOK, &webhookAck{
		Success: true,
		Message: "Webhook processed successfully",
		LeadID:  pld.LeadID,
	})
}

type queryAnalyticsParams struct {
	Days   int    `query:"days"`
	Status string `query:"status"`
}

type queryAnalyticsReport struct {
	Period      string                    `json:"period"`
	Analytics   []model.QueryAnalyticsRow `json:"analytics"`
	GeneratedAt time.Time                 `json:"generated_at"`
}

type revenueParams struct {
	Months int `query:"months"`
}

type revenueReport struct {
	Period      string             `json:"period"`
	RevenueData []model.RevenueRow `json:"revenue_data"`
	GeneratedAt time.Time          `json:"generated_at"`
}

type topCustomersParams struct {
	Limit int `query:"limit"`
}

type topCustomersReport struct {
	TopCustomers []model.TopCustomer `json:"top_customers"`
	GeneratedAt  time.Time           `json:"generated_at"`
}

// ReportHTTPHandler is http handler for reporting endpoints
type ReportHTTPHandler struct {
	reportSvc service.ReportService
}

// NewReportHTTPHandler builds new ReportHTTPHandler
func NewReportHTTPHandler(reportSvc service.ReportService) *ReportHTTPHandler {
	return &ReportHTTPHandler{reportSvc: reportSvc}
}

// Summary generates summary report
// @Summary     Summary report
// @Description Bundles query counts, monthly invoice totals and customer statistics
// @Tags        integration
// @Produce     json
// @Success     200 {object} model.SummaryReport
// @Failure     500 {object} echo.HTTPError
// @Router      /integration/reports/summary [get]
func (h *ReportHTTPHandler) Summary(c echo.Context) error {
	report, err := h.reportSvc.Summary(c.Request().Context())
	if err != nil {
		logrus.Errorf("error generating summary report - %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate summary report")
	}
	return c.JSON(http.StatusOK, report)
}

// QueryAnalytics generates query analytics over a trailing window
// @Summary     Query analytics
// @Description Groups queries by day, status and priority over the last N days
// @Tags        integration
// @Produce     json
// @Param       days   query    int    false "Number of days to analyze" default(30)
// @Param       status query    string false "Filter by status"
// @Success     200    {object} queryAnalyticsReport
// @Failure     400    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /integration/queries/analytics [get]
func (h *ReportHTTPHandler) QueryAnalytics(c echo.Context) error {
	params := queryAnalyticsParams{Days: defaultAnalyticsDays}
	if err := c.Bind(&params); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rows, err := h.reportSvc.QueryAnalytics(c.Request().Context(), params.Days, params.Status)
	if err != nil {
		logrus.Errorf("error generating query analytics - %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate analytics")
	}

	return c.JSON(http.StatusOK, &queryAnalyticsReport{
		Period:      fmt.Sprintf("Last %d days", params.Days),
		Analytics:   rows,
		GeneratedAt: time.Now().UTC(),
	})
}

// RevenueAnalytics generates revenue analytics over a trailing window
// @Summary     Revenue analytics
// @Description Groups paid and sent invoices by year and month over the last N months
// @Tags        integration
// @Produce     json
// @Param       months query    int false "Number of months to analyze" default(6)
// @Success     200    {object} revenueReport
// @Failure     400    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /integration/invoices/revenue [get]
func (h *ReportHTTPHandler) RevenueAnalytics(c echo.Context) error {
	params := revenueParams{Months: defaultRevenueMonths}
	if err := c.Bind(&params); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rows, err := h.reportSvc.RevenueAnalytics(c.Request().Context(), params.Months)
	if err != nil {
		logrus.Errorf("error generating revenue analytics - %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate revenue analytics")
	}

	return c.JSON(http.StatusOK, &revenueReport{
		Period:      fmt.Sprintf("Last %d months", params.Months),
		RevenueData: rows,
		GeneratedAt: time.Now().UTC(),
	})
}

// TopCustomers returns customers with highest revenue
// @Summary     Top customers
// @Description Returns customers with positive revenue sorted descending
// @Tags        integration
// @Produce     json
// @Param       limit query    int false "Number of top customers to return" default(10)
// @Success     200   {object} topCustomersReport
// @Failure     400   {object} echo.HTTPError
// @Failure     500   {object} echo.HTTPError
// @Router      /integration/customers/top [get]
func (h *ReportHTTPHandler) TopCustomers(c echo.Context) error {
	params := topCustomersParams{Limit: defaultTopCustomerLimit}
	if err := c.Bind(&params); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	customers, err := h.reportSvc.TopCustomers(c.Request().Context(), params.Limit)
	if err != nil {
		logrus.Errorf("error fetching top customers - %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch top customers")
	}

	return c.JSON(http.StatusOK, &topCustomersReport{
		TopCustomers: customers,
		GeneratedAt:  time.Now().UTC(),
	})
}
