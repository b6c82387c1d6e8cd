package repository

import (
	"context"
	"time"

	"github.com/umalmyha/erp-integration/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const queriesCollection = "queries"

// QueryRepository provides read-only aggregations over the queries collection
type QueryRepository interface {
	CountByStatus(ctx context.Context) ([]model.StatusCount, error)
	Analytics(ctx context.Context, from time.Time, to time.Time, status string) ([]model.QueryAnalyticsRow, error)
}

type mongoQueryRepository struct {
	db *mongo.Database
}

// NewMongoQueryRepository builds mongodb-backed QueryRepository
func NewMongoQueryRepository(db *mongo.Database) QueryRepository {
	return &mongoQueryRepository{db: db}
}

func (r *mongoQueryRepository) CountByStatus(ctx context.Context) ([]model.StatusCount, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cursor, err := r.db.Collection(queriesCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	counts := make([]model.StatusCount, 0)
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *mongoQueryRepository) Analytics(ctx context.Context, from, to time.Time, status string) ([]model.QueryAnalyticsRow, error) {
	match := bson.D{
		{Key: "createdAt", Value: bson.D{
			{Key: "$gte", Value: from},
			{Key: "$lte", Value: to},
		}},
	}
	if status != "" {
		match = append(match, bson.E{Key: "status", Value: status})
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "date", Value: bson.D{{Key: "$dateToString", Value: bson.D{
					{Key: "format", Value: "%Y-%m-%d"},
					{Key: "date", Value: "$createdAt"},
				}}}},
				{Key: "status", Value: "$status"},
				{Key: "priority", Value: "$priority"},
			}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id.date", Value: 1}}}},
	}

	cursor, err := r.db.Collection(queriesCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	rows := make([]model.QueryAnalyticsRow, 0)
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
