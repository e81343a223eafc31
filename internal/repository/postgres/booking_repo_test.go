package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"devevent/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr bool
		errIs   error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO bookings \(event_id, email, created_at, updated_at\)`).
					WithArgs("ev-1", "ada@example.com", now, now).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("bk-1"))
			},
			wantID: "bk-1",
		},
		{
			name: "unique violation maps to already booked",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO bookings`).
					WithArgs("ev-1", "ada@example.com", now, now).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "bookings_event_email_key"})
			},
			wantErr: true,
			errIs:   domain.ErrAlreadyBooked,
		},
		{
			name: "foreign key violation passes through",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO bookings`).
					WillReturnError(&pq.Error{Code: "23503"})
			},
			wantErr: true,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO bookings`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
			errIs:   sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			b := domain.NewBooking("ev-1", "ada@example.com", now, now)
			err = NewBookingRepository(db).Create(ctx, b)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					require.ErrorIs(t, err, tt.errIs)
				} else {
					require.NotErrorIs(t, err, domain.ErrAlreadyBooked)
				}
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, b.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
