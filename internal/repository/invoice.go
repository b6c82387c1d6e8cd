package repository

import (
	"context"
	"time"

	"github.com/umalmyha/erp-integration/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const invoicesCollection = "invoices"

// revenueStatuses are the invoice statuses counted towards revenue
var revenueStatuses = []string{"Paid", "Sent"}

// InvoiceRepository provides read-only aggregations over the invoices collection
type InvoiceRepository interface {
	TotalsByMonth(ctx context.Context, periods int) ([]model.MonthlyInvoiceTotal, error)
	Revenue(ctx context.Context, from time.Time, to time.Time) ([]model.RevenueRow, error)
}

type mongoInvoiceRepository struct {
	db *mongo.Database
}

// NewMongoInvoiceRepository builds mongodb-backed InvoiceRepository
func NewMongoInvoiceRepository(db *mongo.Database) InvoiceRepository {
	return &mongoInvoiceRepository{db: db}
}

func (r *mongoInvoiceRepository) TotalsByMonth(ctx context.Context, periods int) ([]model.MonthlyInvoiceTotal, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$dateToString", Value: bson.D{
				{Key: "format", Value: "%Y-%m"},
				{Key: "date", Value: "$issueDate"},
			}}}},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$total"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: -1}}}},
		bson.D{{Key: "$limit", Value: periods}},
	}

	cursor, err := r.db.Collection(invoicesCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	totals := make([]model.MonthlyInvoiceTotal, 0)
	if err := cursor.All(ctx, &totals); err != nil {
		return nil, err
	}
	return totals, nil
}

func (r *mongoInvoiceRepository) Revenue(ctx context.Context, from, to time.Time) ([]model.RevenueRow, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "issueDate", Value: bson.D{
				{Key: "$gte", Value: from},
				{Key: "$lte", Value: to},
			}},
			{Key: "status", Value: bson.D{{Key: "$in", Value: revenueStatuses}}},
		}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "year", Value: bson.D{{Key: "$year", Value: "$issueDate"}}},
				{Key: "month", Value: bson.D{{Key: "$month", Value: "$issueDate"}}},
			}},
			{Key: "total_revenue", Value: bson.D{{Key: "$sum", Value: "$total"}}},
			{Key: "invoice_count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "avg_invoice_value", Value: bson.D{{Key: "$avg", Value: "$total"}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "_id.year", Value: 1},
			{Key: "_id.month", Value: 1},
		}}},
	}

	cursor, err := r.db.Collection(invoicesCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	rows := make([]model.RevenueRow, 0)
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
