package repository

import (
	"context"

	"github.com/umalmyha/erp-integration/internal/model"
	"go.mongodb.org/mongo-driver/mongo"
)

const webhooksCollection = "webhooks"

// WebhookRepository provides append-only access to the webhooks sink collection
type WebhookRepository interface {
	Create(ctx context.Context, wh *model.Webhook) error
}

type mongoWebhookRepository struct {
	db *mongo.Database
}

// NewMongoWebhookRepository builds mongodb-backed WebhookRepository
func NewMongoWebhookRepository(db *mongo.Database) WebhookRepository {
	return &mongoWebhookRepository{db: db}
}

func (r *mongoWebhookRepository) Create(ctx context.Context, wh *model.Webhook) error {
	if _, err := r.db.Collection(webhooksCollection).InsertOne(ctx, wh); err != nil {
		return err
	}
	return nil
}
