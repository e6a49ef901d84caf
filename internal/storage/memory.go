package storage

import (
	"context"
	"errors"
	"sync"

	"umrah-gateway/internal/models"
)

var ErrBookingNotFound = errors.New("booking not found")

// InMemorySink keeps bookings for the lifetime of the process. It is the
// default sink when no Redis address is configured.
type InMemorySink struct {
	bookings map[string]*models.BookingRecord
	mutex    sync.RWMutex
}

func NewInMemorySink() *InMemorySink {
	return &InMemorySink{
		bookings: make(map[string]*models.BookingRecord),
	}
}

// RecordBooking stores the record keyed by order ID. A repeat record for the
// same order is a no-op; the first write wins.
func (s *InMemorySink) RecordBooking(ctx context.Context, booking *models.BookingRecord) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.bookings[booking.OrderID]; exists {
		return nil
	}

	s.bookings[booking.OrderID] = booking
	return nil
}

func (s *InMemorySink) GetBooking(orderID string) (*models.BookingRecord, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	booking, exists := s.bookings[orderID]
	if !exists {
		return nil, ErrBookingNotFound
	}

	return booking, nil
}
