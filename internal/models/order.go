package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment types accepted on an order. Credit requires vetting documents.
type PaymentType string

const (
	PaymentCash   PaymentType = "Cash"
	PaymentCredit PaymentType = "Credit"
)

func (p PaymentType) Valid() bool {
	return p == PaymentCash || p == PaymentCredit
}

// CreditFrequency is the billing cadence for credit orders.
type CreditFrequency string

const (
	CreditWeekly   CreditFrequency = "Weekly"
	CreditBiweekly CreditFrequency = "Biweekly"
	CreditMonthly  CreditFrequency = "Monthly"
)

func (f CreditFrequency) Valid() bool {
	return f == CreditWeekly || f == CreditBiweekly || f == CreditMonthly
}

// MaterialItem is one line of an order.
type MaterialItem struct {
	MaterialID  string  `bson:"materialID" json:"materialID"`
	Description string  `bson:"description" json:"description"`
	Quantity    int     `bson:"quantity" json:"quantity"`
	UnitPrice   float64 `bson:"unitPrice" json:"unitPrice"`
}

// Order is a material request document in MongoDB.
type Order struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID              string             `bson:"userID" json:"userID"`
	Requester           string             `bson:"requester" json:"requester"`
	Site                string             `bson:"site" json:"site"`
	Street              string             `bson:"street" json:"street"`
	Number              string             `bson:"number" json:"number"`
	Neighborhood        string             `bson:"neighborhood" json:"neighborhood"`
	PostalCode          string             `bson:"postalCode" json:"postalCode"`
	City                string             `bson:"city" json:"city"`
	State               string             `bson:"state" json:"state"`
	PaymentType         PaymentType        `bson:"paymentType" json:"paymentType"`
	CreditFrequency     CreditFrequency    `bson:"creditFrequency,omitempty" json:"creditFrequency,omitempty"`
	PaymentMethod       string             `bson:"paymentMethod,omitempty" json:"paymentMethod,omitempty"`
	Status              OrderStatus        `bson:"status" json:"status"`
	Total               float64            `bson:"total" json:"total"`
	Materials           []MaterialItem     `bson:"materials" json:"materials"`
	IDDocumentURL       string             `bson:"idDocumentURL,omitempty" json:"idDocumentURL,omitempty"`
	ProofOfAddressURL   string             `bson:"proofOfAddressURL,omitempty" json:"proofOfAddressURL,omitempty"`
	DeliveryWindowStart time.Time          `bson:"deliveryWindowStart" json:"deliveryWindowStart"`
	DeliveryWindowEnd   time.Time          `bson:"deliveryWindowEnd" json:"deliveryWindowEnd"`
	CreatedAt           time.Time          `bson:"createdAt" json:"createdAt"`
}

// OrderTotal is the derived total of a line-item list. The stored total
// must match this sum.
func OrderTotal(items []MaterialItem) float64 {
	var total float64
	for _, item := range items {
		total += float64(item.Quantity) * item.UnitPrice
	}
	return total
}
