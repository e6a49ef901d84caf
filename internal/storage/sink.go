package storage

import (
	"context"

	"umrah-gateway/internal/models"
)

// BookingSink receives booking records after a verified payment. Durability
// is the sink's concern, not this service's; implementations must tolerate
// duplicate records for the same order (verification may run concurrently).
type BookingSink interface {
	RecordBooking(ctx context.Context, booking *models.BookingRecord) error
}
