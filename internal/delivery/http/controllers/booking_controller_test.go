package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"devevent/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingAction struct {
	resp    domain.BookingResponse
	calls   int
	lastReq domain.BookingRequest
	ctxErr  error
}

func (f *fakeBookingAction) CreateBooking(ctx context.Context, req domain.BookingRequest) domain.BookingResponse {
	f.calls++
	f.lastReq = req
	f.ctxErr = ctx.Err()
	return f.resp
}

const validEventID = "3f1c2b9e-8d4a-4c1e-9f7b-2a6d5e4c3b21"

func TestBookingController_CreateBooking(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		resp       domain.BookingResponse
		wantStatus int
		wantResp   domain.BookingResponse
		wantCalled bool
	}{
		{
			name:       "created",
			body:       `{"eventId":"` + validEventID + `","slug":"devfest-2025","email":" ada@example.com "}`,
			resp:       domain.BookingResponse{Success: true},
			wantStatus: http.StatusCreated,
			wantResp:   domain.BookingResponse{Success: true},
			wantCalled: true,
		},
		{
			name:       "already booked",
			body:       `{"eventId":"` + validEventID + `","slug":"devfest-2025","email":"ada@example.com"}`,
			resp:       domain.BookingResponse{Success: false, Error: "You have already booked this event!"},
			wantStatus: http.StatusConflict,
			wantResp:   domain.BookingResponse{Success: false, Error: "You have already booked this event!"},
			wantCalled: true,
		},
		{
			name:       "generic failure",
			body:       `{"eventId":"` + validEventID + `","slug":"devfest-2025","email":"ada@example.com"}`,
			resp:       domain.BookingResponse{Success: false},
			wantStatus: http.StatusInternalServerError,
			wantResp:   domain.BookingResponse{Success: false},
			wantCalled: true,
		},
		{
			name:       "missing email",
			body:       `{"eventId":"` + validEventID + `","slug":"devfest-2025"}`,
			wantStatus: http.StatusBadRequest,
			wantResp:   domain.BookingResponse{Success: false, Error: "email is required"},
		},
		{
			name:       "event id not a uuid",
			body:       `{"eventId":"42","email":"ada@example.com"}`,
			wantStatus: http.StatusBadRequest,
			wantResp:   domain.BookingResponse{Success: false, Error: "eventId must be a UUID"},
		},
		{
			name:       "unknown field",
			body:       `{"eventId":"` + validEventID + `","email":"a@b.c","seats":3}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action := &fakeBookingAction{resp: tt.resp}
			ctrl := NewBookingController(testLogger, action)
			req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			ctrl.CreateBooking(w, req)

			require.Equal(t, tt.wantStatus, w.Code)
			var got domain.BookingResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			if tt.wantStatus == http.StatusBadRequest && tt.wantResp.Error == "" {
				assert.False(t, got.Success)
				assert.NotEmpty(t, got.Error)
			} else {
				assert.Equal(t, tt.wantResp, got)
			}
			assert.Equal(t, tt.wantCalled, action.calls == 1)
			if tt.wantCalled {
				assert.Equal(t, "ada@example.com", action.lastReq.Email)
				assert.Equal(t, "devfest-2025", action.lastReq.Slug)
			}
		})
	}
}

func TestBookingController_GenericFailureOmitsError(t *testing.T) {
	ctrl := NewBookingController(testLogger, &fakeBookingAction{resp: domain.BookingResponse{}})
	req := httptest.NewRequest(http.MethodPost, "/api/bookings",
		strings.NewReader(`{"eventId":"`+validEventID+`","email":"ada@example.com"}`))
	w := httptest.NewRecorder()

	ctrl.CreateBooking(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"success":false}`, w.Body.String())
}

func TestBookingController_CreateBookingIgnoresClientCancel(t *testing.T) {
	action := &fakeBookingAction{resp: domain.BookingResponse{Success: true}}
	c := NewBookingController(testLogger, action)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	body := `{"eventId":"` + validEventID + `","slug":"devfest-2025","email":"ada@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body)).WithContext(ctx)
	rr := httptest.NewRecorder()

	c.CreateBooking(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.NoError(t, action.ctxErr)
}
