package models

import (
	"testing"
	"time"

	"gopkg.in/go-playground/assert.v1"
)

func TestActionForStatus(t *testing.T) {
	cases := []struct {
		status string
		action string
	}{
		{StatusCooking, ActionStartedCooking},
		{StatusDelivered, ActionCompleted},
		{StatusCancelled, ActionCancelled},
		{StatusOrderReceived, ActionReceived},
		// out-for-delivery is logged as received, not as a dispatch action.
		{StatusOutForDelivery, ActionReceived},
	}
	for _, tc := range cases {
		assert.Equal(t, ActionForStatus(tc.status), tc.action)
	}
}

func TestCreationLogEntry(t *testing.T) {
	entry := CreationLogEntry("order1", "", time.Now())

	assert.Equal(t, entry.Order_id, "order1")
	assert.Equal(t, entry.Action, ActionReceived)
	assert.Equal(t, entry.Staff_name, DefaultStaffName)
	assert.Equal(t, *entry.Note, "Order created")
}

func TestCreationLogEntryKeepsStaffName(t *testing.T) {
	entry := CreationLogEntry("order1", "Alice", time.Now())
	assert.Equal(t, entry.Staff_name, "Alice")
}

func TestStatusLogEntryWithStaff(t *testing.T) {
	entry := StatusLogEntry("order1", StatusCooking, "Alice", nil, time.Now())

	assert.NotEqual(t, entry, nil)
	assert.Equal(t, entry.Action, ActionStartedCooking)
	assert.Equal(t, entry.Staff_name, "Alice")

	entry = StatusLogEntry("order1", StatusOutForDelivery, "Alice", nil, time.Now())
	assert.Equal(t, entry.Action, ActionReceived)

	entry = StatusLogEntry("order1", StatusDelivered, "Bob", nil, time.Now())
	assert.Equal(t, entry.Action, ActionCompleted)
}

func TestStatusLogEntryWithoutStaffIsNil(t *testing.T) {
	var entry *KitchenLog = StatusLogEntry("order1", StatusCooking, "", nil, time.Now())
	if entry != nil {
		t.Fatalf("expected no log entry without a staff name, got %+v", entry)
	}
}

func TestPaymentLogEntryDefaultNote(t *testing.T) {
	entry := PaymentLogEntry("order1", PaymentPaid, "Carol", nil, time.Now())

	assert.NotEqual(t, entry, nil)
	assert.Equal(t, entry.Action, ActionPaymentUpdated)
	assert.Equal(t, *entry.Note, "Payment status updated to paid")
}

func TestPaymentLogEntryExplicitNote(t *testing.T) {
	note := "settled at counter"
	entry := PaymentLogEntry("order1", PaymentPaid, "Carol", &note, time.Now())
	assert.Equal(t, *entry.Note, "settled at counter")
}

func TestPaymentLogEntryWithoutStaffIsNil(t *testing.T) {
	var entry *KitchenLog = PaymentLogEntry("order1", PaymentPaid, "", nil, time.Now())
	if entry != nil {
		t.Fatalf("expected no log entry without a staff name, got %+v", entry)
	}
}
