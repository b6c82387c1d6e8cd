package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SourceWebhook is the default source assigned to inbound payloads
const SourceWebhook = "webhook"

// Webhook is an append-only record of an inbound lead payload.
// Processed is recorded as false and transitioned by an external worker.
type Webhook struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	LeadID     string             `json:"leadId" bson:"leadId"`
	Email      string             `json:"email" bson:"email"`
	Name       string             `json:"name" bson:"name"`
	Company    string             `json:"company" bson:"company"`
	Phone      string             `json:"phone" bson:"phone"`
	Source     string             `json:"source" bson:"source"`
	Metadata   map[string]any     `json:"metadata" bson:"metadata"`
	ReceivedAt time.Time          `json:"received_at" bson:"received_at"`
	Processed  bool               `json:"processed" bson:"processed"`
}
