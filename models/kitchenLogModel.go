package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ActionReceived       = "received"
	ActionStartedCooking = "started-cooking"
	ActionCompleted      = "completed"
	ActionCancelled      = "cancelled"
	ActionPaymentUpdated = "payment-updated"
)

// DefaultStaffName is recorded when no staff member is identified.
const DefaultStaffName = "System"

type KitchenLog struct {
	ID         primitive.ObjectID `bson:"_id"`
	Log_id     string             `json:"log_id"`
	Order_id   string             `json:"order_id" validate:"required"`
	Staff_name string             `json:"staff_name"`
	Action     string             `json:"action"`
	Note       *string            `json:"note"`
	Created_at time.Time          `json:"created_at"`
}

// ActionForStatus maps an order status to the action recorded in the kitchen
// log. out-for-delivery has no action of its own and is logged as received,
// same as order-received.
func ActionForStatus(status string) string {
	switch status {
	case StatusCooking:
		return ActionStartedCooking
	case StatusDelivered:
		return ActionCompleted
	case StatusCancelled:
		return ActionCancelled
	default:
		return ActionReceived
	}
}

func NewKitchenLog(orderId string, staffName string, action string, note *string, now time.Time) KitchenLog {
	if staffName == "" {
		staffName = DefaultStaffName
	}
	entry := KitchenLog{
		Order_id:   orderId,
		Staff_name: staffName,
		Action:     action,
		Note:       note,
	}
	entry.ID = primitive.NewObjectID()
	entry.Log_id = entry.ID.Hex()
	entry.Created_at, _ = time.Parse(time.RFC3339, now.Format(time.RFC3339))
	return entry
}

// CreationLogEntry is the entry appended right after an order is inserted.
func CreationLogEntry(orderId string, staffName string, now time.Time) KitchenLog {
	note := "Order created"
	return NewKitchenLog(orderId, staffName, ActionReceived, &note, now)
}

// StatusLogEntry returns the entry to append for a status change, or nil when
// no staff name was supplied — the change is persisted but not logged.
func StatusLogEntry(orderId string, newStatus string, staffName string, note *string, now time.Time) *KitchenLog {
	if staffName == "" {
		return nil
	}
	entry := NewKitchenLog(orderId, staffName, ActionForStatus(newStatus), note, now)
	return &entry
}

// PaymentLogEntry returns the entry to append for a payment update, or nil
// when no staff name was supplied.
func PaymentLogEntry(orderId string, newPaymentStatus string, staffName string, note *string, now time.Time) *KitchenLog {
	if staffName == "" {
		return nil
	}
	if note == nil {
		defaultNote := fmt.Sprintf("Payment status updated to %s", newPaymentStatus)
		note = &defaultNote
	}
	entry := NewKitchenLog(orderId, staffName, ActionPaymentUpdated, note, now)
	return &entry
}
