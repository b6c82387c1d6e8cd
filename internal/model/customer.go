package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CustomerStatusLead is assigned to customers created from inbound webhook payloads
const CustomerStatusLead = "lead"

// Customer is customer document entity
type Customer struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email" bson:"email"`
	Phone        string             `json:"phone" bson:"phone"`
	Company      string             `json:"company" bson:"company"`
	Status       string             `json:"status" bson:"status"`
	Source       string             `json:"source" bson:"source"`
	Tags         []string           `json:"tags" bson:"tags"`
	TotalRevenue float64            `json:"totalRevenue,omitempty" bson:"totalRevenue,omitempty"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// TopCustomer is the projected field subset returned by the top customers report
type TopCustomer struct {
	Name         string  `json:"name" bson:"name"`
	Email        string  `json:"email" bson:"email"`
	Company      string  `json:"company" bson:"company"`
	TotalRevenue float64 `json:"totalRevenue" bson:"totalRevenue"`
	Status       string  `json:"status" bson:"status"`
}
