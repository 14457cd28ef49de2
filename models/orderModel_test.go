package models

import (
	"testing"
	"time"

	"gopkg.in/go-playground/assert.v1"
)

func sampleDraft() Order {
	table := "12"
	return Order{
		Customer_name: "Anita",
		Customer_type: "guest",
		Order_type:    "dine-in",
		Table_number:  &table,
		Items: []OrderItem{
			{Menu_id: "m1", Name: "Burger", Quantity: 2, Unit_price: 150},
			{Menu_id: "m2", Name: "Fries", Quantity: 1, Unit_price: 80},
		},
	}
}

func TestNewOrderFromDraftForcesInitialStatus(t *testing.T) {
	draft := sampleDraft()
	// A draft smuggling in a status must not keep it.
	draft.Status = StatusDelivered

	order := NewOrderFromDraft(draft, time.Now())
	assert.Equal(t, order.Status, StatusOrderReceived)
	assert.Equal(t, order.Payment_status, PaymentPending)
}

func TestNewOrderFromDraftComputesTotal(t *testing.T) {
	draft := sampleDraft()
	// A client-sent total is ignored in favour of the item sum.
	draft.Total_amount = 9999

	order := NewOrderFromDraft(draft, time.Now())
	assert.Equal(t, order.Total_amount, 380.0)
}

func TestNewOrderFromDraftTimestamps(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	order := NewOrderFromDraft(sampleDraft(), now)

	assert.Equal(t, order.Created_at.Equal(now), true)
	assert.Equal(t, order.Updated_at.Equal(order.Created_at), true)
	assert.Equal(t, order.Estimated_ready_time.Equal(now.Add(30*time.Minute)), true)
}

func TestNewOrderFromDraftAssignsIds(t *testing.T) {
	order := NewOrderFromDraft(sampleDraft(), time.Now())

	assert.Equal(t, order.Order_id, order.ID.Hex())
	assert.NotEqual(t, order.Order_id, "")
}

func TestNewOrderFromDraftKeepsExplicitPaymentStatus(t *testing.T) {
	draft := sampleDraft()
	draft.Payment_status = PaymentPaid

	order := NewOrderFromDraft(draft, time.Now())
	assert.Equal(t, order.Payment_status, PaymentPaid)
}
