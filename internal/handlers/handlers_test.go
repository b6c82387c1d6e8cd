package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"github.com/umalmyha/erp-integration/internal/config"
	"github.com/umalmyha/erp-integration/internal/infra"
	"github.com/umalmyha/erp-integration/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	connectionTimeout = 3 * time.Second
)

const (
	mongoContainerName = "mongo-handlers-test-erp-integration"
	mongoPort          = "27019"
	mongoTestUser      = "handlers-test"
	mongoTestPassword  = "handlers-test"
	mongoTestDB        = "erp-integration-handlers-test"
)

type handlersTestSuite struct {
	suite.Suite
	app          *echo.Echo
	unhealthyApp *echo.Echo
	dockerPool   *dockertest.Pool
	mongodb      *dockertest.Resource
	mongoClient  *mongo.Client
	db           *mongo.Database
}

func (s *handlersTestSuite) SetupSuite() {
	t := s.T()
	assert := s.Require()

	t.Log("build docker pool")
	dockerPool, err := dockertest.NewPool("")
	assert.NoError(err, "failed to create pool")

	t.Log("sending ping to docker...")
	err = dockerPool.Client.Ping()
	assert.NoError(err, "failed to connect to docker")

	s.dockerPool = dockerPool

	t.Log("starting mongo container...")
	mongodb, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Name:       mongoContainerName,
		Repository: "mongo",
		Tag:        "latest",
		Env: []string{
			fmt.Sprintf("MONGO_INITDB_ROOT_USERNAME=%s", mongoTestUser),
			fmt.Sprintf("MONGO_INITDB_ROOT_PASSWORD=%s", mongoTestPassword),
		},
		PortBindings: map[docker.Port][]docker.PortBinding{
			"27017/tcp": {{HostIP: "localhost", HostPort: fmt.Sprintf("%s/tcp", mongoPort)}},
		},
	})
	assert.NoError(err, "failed to start mongodb")

	s.mongodb = mongodb

	t.Log("connecting to mongo...")
	mongoURI := fmt.Sprintf("mongodb://%s:%s@localhost:%s/?maxPoolSize=100", mongoTestUser, mongoTestPassword, mongoPort)
	err = dockerPool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
		defer cancel()

		var e error
		s.mongoClient, e = mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
		if e != nil {
			return e
		}
		return s.mongoClient.Ping(ctx, readpref.Primary())
	})
	assert.NoError(err, "failed to establish connection to mongodb")

	s.db = s.mongoClient.Database(mongoTestDB)

	t.Log("building echo application...")
	s.app, err = infra.Router(s.mongoClient, config.MongoCfg{Database: mongoTestDB})
	assert.NoError(err, "failed to build router")

	// separate app wired to an unreachable mongo for degraded health checks
	ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
	defer cancel()

	deadClient, err := mongo.Connect(ctx, options.Client().
		ApplyURI("mongodb://localhost:1").
		SetServerSelectionTimeout(500*time.Millisecond))
	assert.NoError(err, "failed to build unreachable mongo client")

	s.unhealthyApp, err = infra.Router(deadClient, config.MongoCfg{Database: mongoTestDB})
	assert.NoError(err, "failed to build unhealthy router")
}

func (s *handlersTestSuite) TearDownSuite() {
	t := s.T()

	if s.mongoClient != nil {
		t.Log("closing connection to mongo")
		ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
		defer cancel()

		if err := s.mongoClient.Disconnect(ctx); err != nil {
			t.Logf("failed to gracefully close connection to mongo - %v", err)
		}
	}

	if s.mongodb != nil {
		if err := s.dockerPool.Purge(s.mongodb); err != nil {
			t.Logf("failed to purge mongo container - %v", err)
		}
	}
}

func (s *handlersTestSuite) TestHealth() {
	require := s.Require()

	rec := s.request(s.app, http.MethodGet, "/health", "")
	require.Equal(http.StatusOK, rec.Code, "response status code must be OK")

	var status struct {
		Status   string `json:"status"`
		Database string `json:"database"`
	}
	require.NoError(json.NewDecoder(rec.Body).Decode(&status), "failed to parse health response")
	require.Equal("healthy", status.Status, "service must report healthy")
	require.Equal("connected", status.Database, "database must report connected")
}

func (s *handlersTestSuite) TestHealthDatabaseUnreachable() {
	require := s.Require()

	rec := s.request(s.unhealthyApp, http.MethodGet, "/health", "")
	require.Equal(http.StatusServiceUnavailable, rec.Code, "response status code must be Service Unavailable")
	require.NotContains(rec.Body.String(), "localhost:1", "internal error details must not leak")
}

//nolint:funlen // function contains a lot of inlined tests
func (s *handlersTestSuite) TestWebhook() {
	t := s.T()
	require := s.Require()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.dropCollections(ctx, "webhooks", "customers")

	leadID := uuid.NewString()
	email := "jane.doe@somemail.com"

	t.Log("webhook with wrong payload")
	{
		rec := s.request(s.app, http.MethodPost, "/integration/webhook", `{"leadId":"lead-`)
		require.Equal(http.StatusBadRequest, rec.Code, "response status code must be Bad Request")
	}

	t.Log("webhook without required lead id")
	{
		rec := s.request(s.app, http.MethodPost, "/integration/webhook", `{"email":"jane.doe@somemail.com","name":"Jane Doe"}`)
		require.Equal(http.StatusBadRequest, rec.Code, "response status code must be Bad Request")
		require.Contains(rec.Body.String(), "LeadID", "violations must name the missing field")
	}

	t.Log("successful webhook ingestion")
	{
		payload := fmt.Sprintf(`{"leadId":%q,"email":%q,"name":"Jane Doe","company":"Acme Inc"}`, leadID, email)
		rec := s.request(s.app, http.MethodPost, "/integration/webhook", payload)
		require.Equal(http.StatusOK, rec.Code, "response status code must be OK")

		var ack struct {
			Success bool   `json:"success"`
			LeadID  string `json:"lead_id"`
		}
		require.NoError(json.NewDecoder(rec.Body).Decode(&ack), "failed to parse webhook ack")
		require.True(ack.Success, "ack must report success")
		require.Equal(leadID, ack.LeadID, "ack must echo the lead id")
	}

	t.Log("webhook record is persisted unprocessed with default source")
	{
		var stored model.Webhook
		err := s.db.Collection("webhooks").FindOne(ctx, bson.M{"leadId": leadID}).Decode(&stored)
		require.NoError(err, "failed to read webhook record")
		require.False(stored.Processed, "record must be persisted unprocessed")
		require.Equal(model.SourceWebhook, stored.Source, "absent source must default to webhook")
		require.NotNil(stored.Metadata, "absent metadata must default to empty mapping")
	}

	t.Log("lead customer is created from payload")
	{
		var c model.Customer
		err := s.db.Collection("customers").FindOne(ctx, bson.M{"email": email}).Decode(&c)
		require.NoError(err, "failed to read created customer")
		require.Equal(model.CustomerStatusLead, c.Status, "customer must be created as lead")
		require.Equal([]string{"webhook", "lead"}, c.Tags, "customer must carry webhook lead tags")
	}

	t.Log("repeated delivery for the same email does not create a duplicate customer")
	{
		payload := fmt.Sprintf(`{"leadId":%q,"email":%q,"name":"Jane Doe"}`, uuid.NewString(), email)
		rec := s.request(s.app, http.MethodPost, "/integration/webhook", payload)
		require.Equal(http.StatusOK, rec.Code, "response status code must be OK")

		count, err := s.db.Collection("customers").CountDocuments(ctx, bson.M{"email": email})
		require.NoError(err, "failed to count customers")
		require.Equal(int64(1), count, "at most one customer must exist per email")
	}
}

func (s *handlersTestSuite) TestSummaryEmptyCollections() {
	require := s.Require()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.dropCollections(ctx, "queries", "invoices", "customers")

	rec := s.request(s.app, http.MethodGet, "/integration/reports/summary", "")
	require.Equal(http.StatusOK, rec.Code, "response status code must be OK")

	var report struct {
		Queries   map[string]int64          `json:"queries"`
		Invoices  map[string]map[string]any `json:"invoices"`
		Customers map[string]map[string]any `json:"customers"`
	}
	require.NoError(json.NewDecoder(rec.Body).Decode(&report), "failed to parse summary report")
	require.NotNil(report.Queries, "queries must be an empty mapping, not null")
	require.NotNil(report.Invoices, "invoices must be an empty mapping, not null")
	require.NotNil(report.Customers, "customers must be an empty mapping, not null")
	require.Empty(report.Queries, "queries mapping must be empty")
}

func (s *handlersTestSuite) TestQueryAnalytics() {
	t := s.T()
	require := s.Require()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.dropCollections(ctx, "queries")

	now := time.Now().UTC().Truncate(time.Millisecond)
	queries := []any{
		bson.D{{Key: "status", Value: "open"}, {Key: "priority", Value: "high"}, {Key: "createdAt", Value: now.Add(-time.Minute)}},
		bson.D{{Key: "status", Value: "open"}, {Key: "priority", Value: "low"}, {Key: "createdAt", Value: now.AddDate(0, 0, -31)}},
	}
	_, err := s.db.Collection("queries").InsertMany(ctx, queries)
	require.NoError(err, "failed to insert queries")

	var report struct {
		Period    string `json:"period"`
		Analytics []struct {
			ID struct {
				Status string `json:"status"`
			} `json:"_id"`
			Count int64 `json:"count"`
		} `json:"analytics"`
	}

	t.Log("default window spans 30 days")
	{
		rec := s.request(s.app, http.MethodGet, "/integration/queries/analytics", "")
		require.Equal(http.StatusOK, rec.Code, "response status code must be OK")
		require.NoError(json.NewDecoder(rec.Body).Decode(&report), "failed to parse analytics report")
		require.Equal("Last 30 days", report.Period, "default period label must be reported")
		require.Len(report.Analytics, 1, "31-day-old query must be excluded")
		require.Equal(int64(1), report.Analytics[0].Count, "only the recent query must be counted")
	}

	t.Log("malformed days parameter is rejected")
	{
		rec := s.request(s.app, http.MethodGet, "/integration/queries/analytics?days=abc", "")
		require.Equal(http.StatusBadRequest, rec.Code, "response status code must be Bad Request")
	}
}

func (s *handlersTestSuite) TestRevenueAnalytics() {
	require := s.Require()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.dropCollections(ctx, "invoices")

	issued := time.Now().UTC().AddDate(0, 0, -10)
	invoices := []any{
		bson.D{{Key: "issueDate", Value: issued}, {Key: "total", Value: 100.0}, {Key: "status", Value: "Paid"}},
		bson.D{{Key: "issueDate", Value: issued}, {Key: "total", Value: 50.0}, {Key: "status", Value: "Draft"}},
	}
	_, err := s.db.Collection("invoices").InsertMany(ctx, invoices)
	require.NoError(err, "failed to insert invoices")

	rec := s.request(s.app, http.MethodGet, "/integration/invoices/revenue", "")
	require.Equal(http.StatusOK, rec.Code, "response status code must be OK")

	var report struct {
		Period      string `json:"period"`
		RevenueData []struct {
			ID struct {
				Year  int `json:"year"`
				Month int `json:"month"`
			} `json:"_id"`
			TotalRevenue float64 `json:"total_revenue"`
			InvoiceCount int64   `json:"invoice_count"`
		} `json:"revenue_data"`
	}
	require.NoError(json.NewDecoder(rec.Body).Decode(&report), "failed to parse revenue report")
	require.Equal("Last 6 months", report.Period, "default period label must be reported")
	require.Len(report.RevenueData, 1, "only the paid invoice must be grouped")
	require.Equal(issued.Year(), report.RevenueData[0].ID.Year, "group must carry the issue year")
	require.Equal(int(issued.Month()), report.RevenueData[0].ID.Month, "group must carry the issue month")
	require.Equal(float64(100), report.RevenueData[0].TotalRevenue, "draft invoice must be excluded")
	require.Equal(int64(1), report.RevenueData[0].InvoiceCount, "only one invoice must be counted")
}

func (s *handlersTestSuite) TestTopCustomers() {
	require := s.Require()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.dropCollections(ctx, "customers")

	customers := []any{
		bson.D{{Key: "name", Value: "Acme Inc"}, {Key: "email", Value: "billing@acme.com"}, {Key: "status", Value: "active"}, {Key: "totalRevenue", Value: 900.0}},
		bson.D{{Key: "name", Value: "Globex"}, {Key: "email", Value: "pay@globex.com"}, {Key: "status", Value: "active"}, {Key: "totalRevenue", Value: 500.0}},
		bson.D{{Key: "name", Value: "Umbrella"}, {Key: "email", Value: "acc@umbrella.com"}, {Key: "status", Value: "active"}, {Key: "totalRevenue", Value: 1200.0}},
		bson.D{{Key: "name", Value: "Hooli"}, {Key: "email", Value: "pay@hooli.com"}, {Key: "status", Value: "active"}, {Key: "totalRevenue", Value: 2000.0}},
		bson.D{{Key: "name", Value: "Initech"}, {Key: "email", Value: "lead@initech.com"}, {Key: "status", Value: "lead"}, {Key: "totalRevenue", Value: 0.0}},
	}
	_, err := s.db.Collection("customers").InsertMany(ctx, customers)
	require.NoError(err, "failed to insert customers")

	rec := s.request(s.app, http.MethodGet, "/integration/customers/top?limit=3", "")
	require.Equal(http.StatusOK, rec.Code, "response status code must be OK")

	var report struct {
		TopCustomers []model.TopCustomer `json:"top_customers"`
	}
	require.NoError(json.NewDecoder(rec.Body).Decode(&report), "failed to parse top customers report")
	require.Len(report.TopCustomers, 3, "at most 3 customers must be returned")
	require.Equal("Hooli", report.TopCustomers[0].Name, "customers must be sorted by revenue descending")
	require.Equal("Umbrella", report.TopCustomers[1].Name, "customers must be sorted by revenue descending")
	require.Equal("Acme Inc", report.TopCustomers[2].Name, "customers must be sorted by revenue descending")

	for _, c := range report.TopCustomers {
		require.Greater(c.TotalRevenue, float64(0), "customers without revenue must be omitted")
	}
}

func (s *handlersTestSuite) request(app *echo.Echo, method, target, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(payload))
	if payload != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func (s *handlersTestSuite) dropCollections(ctx context.Context, names ...string) {
	for _, name := range names {
		err := s.db.Collection(name).Drop(ctx)
		s.Require().NoError(err, "failed to drop collection %s", name)
	}
}

// start handlers test suite
func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(handlersTestSuite))
}
