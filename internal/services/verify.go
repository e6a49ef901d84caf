package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"umrah-gateway/internal/catalog"
	"umrah-gateway/internal/kafka"
	"umrah-gateway/internal/logger"
	"umrah-gateway/internal/models"
	"umrah-gateway/internal/storage"
)

// VerificationService checks Razorpay payment signatures against the shared
// key secret. It never calls the gateway; verification is a local,
// single-shot cryptographic check.
type VerificationService struct {
	secret   string
	sink     storage.BookingSink
	producer *kafka.Producer
	log      *logger.Logger
}

func NewVerificationService(secret string, sink storage.BookingSink, producer *kafka.Producer, log *logger.Logger) *VerificationService {
	return &VerificationService{
		secret:   secret,
		sink:     sink,
		producer: producer,
		log:      log,
	}
}

// VerifyPayment recomputes the expected signature over
// "<order_id>|<payment_id>" and compares in constant time. A mismatch is a
// normal negative result with no side effects, not an error. On a match the
// booking record is handed to the sink and an event is published, both
// best-effort.
func (s *VerificationService) VerifyPayment(ctx context.Context, req *models.VerifyPaymentRequest) (*models.VerificationResult, error) {
	expected := s.expectedSignature(req.OrderID, req.PaymentID)

	if !hmac.Equal([]byte(expected), []byte(req.Signature)) {
		s.log.LogPayment("VERIFY_FAILED", req.OrderID, "Signature mismatch")
		return &models.VerificationResult{Verified: false}, nil
	}

	s.log.LogPayment("VERIFIED", req.OrderID, fmt.Sprintf("Payment %s verified successfully", req.PaymentID))

	isFreeApplication := req.PackageID == catalog.FreeApplicationID
	status := models.BookingConfirmed
	if isFreeApplication {
		status = models.BookingApplicationReceived
	}

	booking := &models.BookingRecord{
		OrderID:      req.OrderID,
		PaymentID:    req.PaymentID,
		PackageID:    req.PackageID,
		CustomerInfo: req.CustomerInfo,
		Status:       status,
		CreatedAt:    time.Now().UTC(),
	}

	if s.sink != nil {
		if err := s.sink.RecordBooking(ctx, booking); err != nil {
			// The sink is best-effort; the payment is already settled at
			// the provider, so the caller still gets a success.
			s.log.Error("BOOKING", fmt.Sprintf("Failed to record booking for order %s: %v", req.OrderID, err))
		}
	}

	s.publishBookingEvent(booking)

	return &models.VerificationResult{
		Verified:          true,
		BookingID:         req.OrderID,
		IsFreeApplication: isFreeApplication,
	}, nil
}

// expectedSignature is deterministic in (orderID, paymentID, secret):
// lowercase hex HMAC-SHA256 over "<orderID>|<paymentID>".
func (s *VerificationService) expectedSignature(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(s.secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *VerificationService) publishBookingEvent(booking *models.BookingRecord) {
	if s.producer == nil {
		return
	}

	eventType := "booking.confirmed"
	if booking.Status == models.BookingApplicationReceived {
		eventType = "application.received"
	}

	event := &models.PaymentEvent{
		Type:      eventType,
		OrderID:   booking.OrderID,
		PaymentID: booking.PaymentID,
		Booking:   booking,
		Timestamp: time.Now().UTC(),
	}

	if err := s.producer.PublishPaymentEvent(event); err != nil {
		s.log.Error("KAFKA", fmt.Sprintf("Failed to publish %s event for order %s: %v", eventType, booking.OrderID, err))
	}
}
