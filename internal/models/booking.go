package models

import (
	"time"
)

type BookingStatus string

const (
	BookingConfirmed           BookingStatus = "confirmed"
	BookingApplicationReceived BookingStatus = "application_received"
)

// BookingRecord is handed to the configured sink after a successful
// verification. The service itself never persists it.
type BookingRecord struct {
	OrderID      string        `json:"order_id"`
	PaymentID    string        `json:"payment_id"`
	PackageID    int           `json:"package_id"`
	CustomerInfo CustomerInfo  `json:"customer_info"`
	Status       BookingStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
}

type PaymentEvent struct {
	Type      string         `json:"type"`
	OrderID   string         `json:"order_id"`
	PaymentID string         `json:"payment_id,omitempty"`
	Booking   *BookingRecord `json:"booking,omitempty"`
	Reason    string         `json:"reason,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}
