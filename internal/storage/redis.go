package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	"umrah-gateway/internal/logger"
	"umrah-gateway/internal/models"
)

const bookingKeyPrefix = "booking:"

// RedisSink records bookings in Redis. SetNX makes repeat records for the
// same order a no-op, so concurrent verifications of one order stay safe.
type RedisSink struct {
	client *redis.Client
	log    *logger.Logger
}

func NewRedisSink(client *redis.Client, log *logger.Logger) *RedisSink {
	return &RedisSink{
		client: client,
		log:    log,
	}
}

func (s *RedisSink) RecordBooking(ctx context.Context, booking *models.BookingRecord) error {
	data, err := json.Marshal(booking)
	if err != nil {
		return fmt.Errorf("failed to marshal booking: %w", err)
	}

	key := bookingKeyPrefix + booking.OrderID
	created, err := s.client.SetNX(ctx, key, data, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to record booking: %w", err)
	}

	if !created {
		s.log.LogDatabase("DUPLICATE", "redis", fmt.Sprintf("Booking already recorded for order %s, skipping", booking.OrderID))
		return nil
	}

	s.log.LogDatabase("SAVE", "redis", fmt.Sprintf("Booking recorded for order %s with status %s", booking.OrderID, booking.Status))
	return nil
}

func (s *RedisSink) GetBooking(ctx context.Context, orderID string) (*models.BookingRecord, error) {
	data, err := s.client.Get(ctx, bookingKeyPrefix+orderID).Result()
	if err == redis.Nil {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}

	var booking models.BookingRecord
	if err := json.Unmarshal([]byte(data), &booking); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking: %w", err)
	}
	return &booking, nil
}
