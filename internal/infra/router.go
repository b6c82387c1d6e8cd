package infra

import (
	"errors"
	"net/http"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/umalmyha/erp-integration/internal/config"
	"github.com/umalmyha/erp-integration/internal/handlers"
	"github.com/umalmyha/erp-integration/internal/repository"
	"github.com/umalmyha/erp-integration/internal/service"
	"github.com/umalmyha/erp-integration/internal/validation"
	"go.mongodb.org/mongo-driver/mongo"
)

// Router builds echo application with all routes registered
func Router(client *mongo.Client, cfg config.MongoCfg) (*echo.Echo, error) {
	e := echo.New()

	enLocale := en.New()
	unvTranslator := ut.New(enLocale, enLocale)
	translator, ok := unvTranslator.GetTranslator("en")
	if !ok {
		return nil, errors.New("missing en translations for request validator")
	}

	valid := validator.New()
	if err := entranslations.RegisterDefaultTranslations(valid, translator); err != nil {
		return nil, err
	}
	e.Validator = validation.Echo(valid, translator)

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.HTTPErrorHandler = func(err error, c echo.Context) {
		var pldErr *validation.PayloadError
		if errors.As(err, &pldErr) {
			if !c.Response().Committed {
				if jsonErr := c.JSON(http.StatusBadRequest, pldErr); jsonErr != nil {
					c.Logger().Error(jsonErr)
				}
			}
			return
		}

		c.Logger().Error(err.Error())
		e.DefaultHTTPErrorHandler(err, c)
	}

	db := client.Database(cfg.Database)

	// Repositories
	queryRps := repository.NewMongoQueryRepository(db)
	invoiceRps := repository.NewMongoInvoiceRepository(db)
	customerRps := repository.NewMongoCustomerRepository(db)
	webhookRps := repository.NewMongoWebhookRepository(db)

	// Services
	reportSvc := service.NewReportService(queryRps, invoiceRps, customerRps)
	webhookSvc := service.NewWebhookService(webhookRps, customerRps)

	// Handlers
	healthHandler := handlers.NewHealthHTTPHandler(client)
	reportHandler := handlers.NewReportHTTPHandler(reportSvc)
	webhookHandler := handlers.NewWebhookHTTPHandler(webhookSvc)

	e.GET("/health", healthHandler.Health)

	integration := e.Group("/integration")
	integration.GET("/reports/summary", reportHandler.Summary)
	integration.POST("/webhook", webhookHandler.Receive)
	integration.GET("/queries/analytics", reportHandler.QueryAnalytics)
	integration.GET("/invoices/revenue", reportHandler.RevenueAnalytics)
	integration.GET("/customers/top", reportHandler.TopCustomers)

	return e, nil
}
