package repository

import (
	"context"
	"errors"

	"github.com/umalmyha/erp-integration/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const customersCollection = "customers"

// CustomerRepository provides access to the customers collection
type CustomerRepository interface {
	StatsByStatus(ctx context.Context) ([]model.CustomerStatusStats, error)
	TopByRevenue(ctx context.Context, limit int) ([]model.TopCustomer, error)
	FindByEmail(ctx context.Context, email string) (*model.Customer, error)
	Create(ctx context.Context, c *model.Customer) error
}

type mongoCustomerRepository struct {
	db *mongo.Database
}

// NewMongoCustomerRepository builds mongodb-backed CustomerRepository
func NewMongoCustomerRepository(db *mongo.Database) CustomerRepository {
	return &mongoCustomerRepository{db: db}
}

func (r *mongoCustomerRepository) StatsByStatus(ctx context.Context) ([]model.CustomerStatusStats, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "total_revenue", Value: bson.D{{Key: "$sum", Value: "$totalRevenue"}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cursor, err := r.db.Collection(customersCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	stats := make([]model.CustomerStatusStats, 0)
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *mongoCustomerRepository) TopByRevenue(ctx context.Context, limit int) ([]model.TopCustomer, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "totalRevenue", Value: bson.D{{Key: "$gt", Value: 0}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "totalRevenue", Value: -1}}}},
		bson.D{{Key: "$limit", Value: limit}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "name", Value: 1},
			{Key: "email", Value: 1},
			{Key: "company", Value: 1},
			{Key: "totalRevenue", Value: 1},
			{Key: "status", Value: 1},
		}}},
	}

	cursor, err := r.db.Collection(customersCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	customers := make([]model.TopCustomer, 0)
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *mongoCustomerRepository) FindByEmail(ctx context.Context, email string) (*model.Customer, error) {
	var c model.Customer

	result := r.db.Collection(customersCollection).FindOne(ctx, bson.M{"email": email})
	if err := result.Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *mongoCustomerRepository) Create(ctx context.Context, c *model.Customer) error {
	if _, err := r.db.Collection(customersCollection).InsertOne(ctx, c); err != nil {
		return err
	}
	return nil
}
