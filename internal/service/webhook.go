package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/erp-integration/internal/model"
	"github.com/umalmyha/erp-integration/internal/repository"
)

// webhookLeadTags are assigned to customers created from webhook payloads
var webhookLeadTags = []string{"webhook", "lead"}

// WebhookService processes inbound lead payloads
type WebhookService interface {
	Process(ctx context.Context, wh *model.Webhook) error
}

type webhookService struct {
	webhookRps  repository.WebhookRepository
	customerRps repository.CustomerRepository
}

// NewWebhookService builds WebhookService
func NewWebhookService(webhookRps repository.WebhookRepository, customerRps repository.CustomerRepository) WebhookService {
	return &webhookService{
		webhookRps:  webhookRps,
		customerRps: customerRps,
	}
}

// Process appends the payload to the webhooks sink and creates a lead customer
// when email and name are present and no customer with such email exists yet.
// The webhook record is not rolled back if customer creation fails.
func (s *webhookService) Process(ctx context.Context, wh *model.Webhook) error {
	now := time.Now().UTC()
	wh.ReceivedAt = now
	wh.Processed = false

	if err := s.webhookRps.Create(ctx, wh); err != nil {
		return err
	}

	if wh.Email == "" || wh.Name == "" {
		return nil
	}

	// find-then-insert is not atomic: concurrent deliveries of the same new
	// email may still create duplicate customers
	existing, err := s.customerRps.FindByEmail(ctx, wh.Email)
	if err != nil {
		return err
	}

	if existing != nil {
		return nil
	}

	c := &model.Customer{
		Name:      wh.Name,
		Email:     wh.Email,
		Phone:     wh.Phone,
		Company:   wh.Company,
		Status:    model.CustomerStatusLead,
		Source:    wh.Source,
		Tags:      webhookLeadTags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.customerRps.Create(ctx, c); err != nil {
		return err
	}

	logrus.Infof("created new customer from webhook: %s", wh.Email)
	return nil
}
