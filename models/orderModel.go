package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusOrderReceived  = "order-received"
	StatusCooking        = "cooking"
	StatusOutForDelivery = "out-for-delivery"
	StatusDelivered      = "delivered"
	StatusCancelled      = "cancelled"
)

const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

// EstimatedReadyOffset is added to the creation time to produce the
// estimated-ready timestamp shown to the customer.
const EstimatedReadyOffset = 30 * time.Minute

type OrderItem struct {
	Menu_id         string  `json:"menu_id" validate:"required"`
	Name            string  `json:"name"`
	Quantity        int     `json:"quantity" validate:"required,min=1"`
	Unit_price      float64 `json:"unit_price"`
	Special_request *string `json:"special_request"`
}

type Order struct {
	ID                   primitive.ObjectID `bson:"_id"`
	Order_id             string             `json:"order_id"`
	Customer_name        string             `json:"customer_name" validate:"required,min=1,max=100"`
	Customer_type        string             `json:"customer_type" validate:"required,eq=authenticated|eq=guest"`
	User_id              *string            `json:"user_id"`
	Apartment            *string            `json:"apartment"`
	Flat_number          *string            `json:"flat_number"`
	Address              *string            `json:"address"`
	Table_number         *string            `json:"table_number"`
	Order_type           string             `json:"order_type" validate:"required,eq=dine-in|eq=walk-up|eq=delivery"`
	Delivery_note        *string            `json:"delivery_note"`
	Items                []OrderItem        `json:"items" validate:"required,min=1,dive"`
	Total_amount         float64            `json:"total_amount"`
	Payment_status       string             `json:"payment_status"`
	Payment_method       *string            `json:"payment_method"`
	Status               string             `json:"status"`
	Created_at           time.Time          `json:"created_at"`
	Updated_at           time.Time          `json:"updated_at"`
	Estimated_ready_time time.Time          `json:"estimated_ready_time"`
}

// NewOrderFromDraft turns a submitted draft into the order that gets
// persisted. The initial status is always order-received no matter what the
// draft carried, the total is recomputed from the line items (a client-sent
// total is ignored) and payment status defaults to pending.
func NewOrderFromDraft(draft Order, now time.Time) Order {
	order := draft

	order.ID = primitive.NewObjectID()
	order.Order_id = order.ID.Hex()
	order.Status = StatusOrderReceived
	if order.Payment_status == "" {
		order.Payment_status = PaymentPending
	}

	var total float64
	for _, item := range order.Items {
		total += item.Unit_price * float64(item.Quantity)
	}
	order.Total_amount = total

	order.Created_at, _ = time.Parse(time.RFC3339, now.Format(time.RFC3339))
	order.Updated_at = order.Created_at
	order.Estimated_ready_time = order.Created_at.Add(EstimatedReadyOffset)

	return order
}
