package services

import (
	"fmt"
	"time"

	"umrah-gateway/internal/kafka"
	"umrah-gateway/internal/logger"
	"umrah-gateway/internal/models"
)

// FailureRecorder logs checkout failures reported by the frontend and emits
// a payment.failed event. It always acknowledges receipt; there is nothing
// to validate and nothing to retry.
type FailureRecorder struct {
	producer *kafka.Producer
	log      *logger.Logger
}

func NewFailureRecorder(producer *kafka.Producer, log *logger.Logger) *FailureRecorder {
	return &FailureRecorder{
		producer: producer,
		log:      log,
	}
}

func (r *FailureRecorder) RecordFailure(req *models.PaymentFailureRequest) {
	r.log.LogPayment("FAILED", req.OrderID, fmt.Sprintf("Payment %s failed: %s", req.PaymentID, req.Reason))

	if r.producer == nil {
		return
	}

	event := &models.PaymentEvent{
		Type:      "payment.failed",
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Reason:    req.Reason,
		Timestamp: time.Now().UTC(),
	}

	if err := r.producer.PublishPaymentEvent(event); err != nil {
		r.log.Error("KAFKA", fmt.Sprintf("Failed to publish payment.failed event for order %s: %v", req.OrderID, err))
	}
}
