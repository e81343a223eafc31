package postgres

import (
	"context"
	"database/sql"
	"errors"

	"devevent/internal/domain"

	"github.com/lib/pq"
)

// uniqueViolation is the SQLSTATE for unique_violation.
const uniqueViolation = "23505"

type bookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(db *sql.DB) domain.BookingRepository {
	return &bookingRepository{
		DB: db,
	}
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `
		INSERT INTO bookings (event_id, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, b.EventID, b.Email, b.CreatedAt, b.UpdatedAt).Scan(&b.ID)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == uniqueViolation {
			return domain.ErrAlreadyBooked
		}
		return err
	}
	return nil
}
