package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/Ranggadya/Venue-Event-Management-System/internal/domain"
	"github.com/Ranggadya/Venue-Event-Management-System/internal/handler/dto"
	hmocks "github.com/Ranggadya/Venue-Event-Management-System/internal/handler/mocks"
	"github.com/Ranggadya/Venue-Event-Management-System/internal/pricing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockVenueSvc, *hmocks.MockBookingSvc, http.Handler) {
	t.Helper()
	venueSvc := hmocks.NewMockVenueSvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)

	h := NewHandler(venueSvc, bookingSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/venues", h.CreateVenue)
		api.GET("/venues", h.ListVenues)
		api.GET("/venues/:id", h.GetVenue)
		api.PATCH("/venues/:id", h.UpdateVenue)
		api.DELETE("/venues/:id", h.DeleteVenue)
		api.GET("/venues/:id/availability", h.CheckAvailability)
		api.POST("/venues/:id/quote", h.QuoteVenue)
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.PATCH("/events/:id", h.UpdateEvent)
		api.DELETE("/events/:id", h.DeleteEvent)
		api.PUT("/events/:id/payment", h.SetPayment)
	}

	return venueSvc, bookingSvc, r
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			_ = json.NewEncoder(&buf).Encode(b)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func sampleEvent(id string) *domain.Event {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	return &domain.Event{
		ID:              id,
		VenueID:         uuid.New().String(),
		Name:            "Wedding",
		StartAt:         start,
		EndAt:           start.Add(8 * time.Hour),
		Status:          domain.EventStatusUpcoming,
		RentalType:      domain.RentalTypeHourly,
		BasePrice:       decimal.NewFromInt(800000),
		DiscountPercent: decimal.NewFromInt(10),
		AdditionalFees:  decimal.NewFromInt(50000),
		FinalPrice:      decimal.NewFromInt(770000),
		CreatedAt:       start.Add(-48 * time.Hour),
		UpdatedAt:       start.Add(-48 * time.Hour),
	}
}

// --- Venues ---

func TestHandler_CreateVenue_Success(t *testing.T) {
	venueSvc, _, r := setupRouter(t)

	venue := &domain.Venue{
		ID:           uuid.New().String(),
		Name:         "Grand Hall",
		Capacity:     200,
		PricePerHour: decimal.NewNullDecimal(decimal.NewFromInt(150000)),
		Currency:     "IDR",
		Status:       domain.VenueStatusActive,
		CreatedAt:    time.Now(),
	}

	venueSvc.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in domain.CreateVenueInput) bool {
		return in.Name == "Grand Hall" &&
			in.PricePerHour.Valid && in.PricePerHour.Decimal.Equal(decimal.NewFromInt(150000)) &&
			!in.PricePerDay.Valid
	})).Return(venue, nil)

	w := doJSON(r, http.MethodPost, "/api/venues",
		`{"name":"Grand Hall","capacity":200,"price_per_hour":"150000"}`)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.VenueResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Grand Hall", resp.Name)
	require.NotNil(t, resp.PricePerHour)
	assert.Equal(t, "150000", *resp.PricePerHour)
	assert.Nil(t, resp.PricePerDay)
}

func TestHandler_CreateVenue_BadRequest(t *testing.T) {
	_, _, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/venues", `{"name":"","capacity":0}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateVenue_ValidationError(t *testing.T) {
	venueSvc, _, r := setupRouter(t)

	venueSvc.EXPECT().Create(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: price_per_hour must be positive", domain.ErrValidation))

	w := doJSON(r, http.MethodPost, "/api/venues", `{"name":"Hall","capacity":10,"price_per_hour":-1}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetVenue_Success(t *testing.T) {
	venueSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	details := &domain.VenueDetails{
		Venue:        domain.Venue{ID: id, Name: "Grand Hall"},
		Summary:      domain.VenueSummary{Upcoming: 1, PaidRevenue: decimal.NewFromInt(770000)},
		ActiveEvents: []domain.Event{*sampleEvent(uuid.New().String())},
	}
	venueSvc.EXPECT().GetDetails(mock.Anything, id).Return(details, nil)

	w := doJSON(r, http.MethodGet, "/api/venues/"+id, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.VenueDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "770000", resp.Summary.PaidRevenue)
	assert.Len(t, resp.ActiveEvents, 1)
}

func TestHandler_GetVenue_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/venues/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetVenue_NotFound(t *testing.T) {
	venueSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	venueSvc.EXPECT().GetDetails(mock.Anything, id).Return(nil, domain.ErrVenueNotFound)

	w := doJSON(r, http.MethodGet, "/api/venues/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListVenues(t *testing.T) {
	venueSvc, _, r := setupRouter(t)

	venueSvc.EXPECT().List(mock.Anything).Return([]*domain.Venue{{ID: "v1"}, {ID: "v2"}}, nil)

	w := doJSON(r, http.MethodGet, "/api/venues", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.VenueResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_UpdateVenue_ClearsRate(t *testing.T) {
	venueSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	venueSvc.EXPECT().Update(mock.Anything, id, mock.MatchedBy(func(in domain.UpdateVenueInput) bool {
		return in.PricePerDay != nil && !in.PricePerDay.Valid &&
			in.PricePerHour == nil &&
			in.Status != nil && *in.Status == domain.VenueStatusMaintenance
	})).Return(&domain.Venue{ID: id, Status: domain.VenueStatusMaintenance}, nil)

	w := doJSON(r, http.MethodPatch, "/api/venues/"+id, `{"clear_price_per_day":true,"status":"maintenance"}`)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_DeleteVenue_ActiveBookings(t *testing.T) {
	venueSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	venueSvc.EXPECT().Delete(mock.Anything, id).
		Return(fmt.Errorf("delete venue: %w", domain.ErrActiveBookingsExist))

	w := doJSON(r, http.MethodDelete, "/api/venues/"+id, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_DeleteVenue_Success(t *testing.T) {
	venueSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	venueSvc.EXPECT().Delete(mock.Anything, id).Return(nil)

	w := doJSON(r, http.MethodDelete, "/api/venues/"+id, nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_CheckAvailability_Conflict(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	id := uuid.New().String()
	start := time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	blocking := sampleEvent(uuid.New().String())

	bookingSvc.EXPECT().CheckAvailability(mock.Anything, id, start, end, "").
		Return(&domain.AvailabilityResult{
			Available: false,
			Conflict:  domain.NewConflictError(blocking).Conflict(),
		}, nil)

	q := url.Values{}
	q.Set("start", start.Format(time.RFC3339))
	q.Set("end", end.Format(time.RFC3339))
	w := doJSON(r, http.MethodGet, "/api/venues/"+id+"/availability?"+q.Encode(), nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Available)
	require.NotNil(t, resp.Conflict)
	assert.Equal(t, blocking.ID, resp.Conflict.EventID)
	assert.Equal(t, "2026-03-10T09:00:00Z", resp.Conflict.StartAt)
}

func TestHandler_CheckAvailability_BadTime(t *testing.T) {
	_, _, r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/venues/"+uuid.New().String()+"/availability?start=tomorrow&end=later", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_QuoteVenue(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().Quote(mock.Anything, id, mock.Anything).Return(&pricing.Quote{
		RentalType:      domain.RentalTypeDaily,
		DurationHours:   10,
		BasePrice:       decimal.NewFromInt(700000),
		DiscountPercent: decimal.NewFromInt(10),
		AdditionalFees:  decimal.NewFromInt(50000),
		FinalPrice:      decimal.NewFromInt(680000),
	}, nil)

	w := doJSON(r, http.MethodPost, "/api/venues/"+id+"/quote",
		`{"start_at":"2026-03-12T08:00:00Z","end_at":"2026-03-12T18:00:00Z","discount_percent":10,"additional_fees":"50000"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.QuoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "daily", resp.RentalType)
	assert.Equal(t, "680000", resp.FinalPrice)
}

func TestHandler_QuoteVenue_MissingRates(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().Quote(mock.Anything, id, mock.Anything).
		Return(nil, fmt.Errorf("quote: %w", domain.ErrConfiguration))

	w := doJSON(r, http.MethodPost, "/api/venues/"+id+"/quote",
		`{"start_at":"2026-03-12T08:00:00Z","end_at":"2026-03-12T18:00:00Z"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	event := sampleEvent(uuid.New().String())

	bookingSvc.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in domain.CreateEventInput) bool {
		return in.VenueID == event.VenueID &&
			in.StartAt.Equal(event.StartAt) &&
			in.DiscountPercent.Equal(decimal.NewFromInt(10)) &&
			in.RentalType == nil
	})).Return(event, nil)

	w := doJSON(r, http.MethodPost, "/api/events", map[string]any{
		"venue_id":         event.VenueID,
		"name":             "Wedding",
		"start_at":         event.StartAt.Format(time.RFC3339),
		"end_at":           event.EndAt.Format(time.RFC3339),
		"discount_percent": "10",
		"additional_fees":  "50000",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "770000", resp.FinalPrice)
	assert.Equal(t, "hourly", resp.RentalType)
	assert.Equal(t, "2026-03-10T09:00:00Z", resp.StartAt)
	assert.Nil(t, resp.PaymentDate)
}

func TestHandler_CreateEvent_BadRequest(t *testing.T) {
	_, _, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/events", `{"name":""}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, _, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/events", map[string]any{
		"venue_id": uuid.New().String(),
		"name":     "X",
		"start_at": "not-a-date",
		"end_at":   "2026-03-10T10:00:00Z",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"past date", domain.ErrPastDate, http.StatusUnprocessableEntity},
		{"venue unavailable", domain.ErrVenueUnavailable, http.StatusUnprocessableEntity},
		{"capacity", domain.ErrCapacityExceeded, http.StatusUnprocessableEntity},
		{"invalid range", domain.ErrInvalidRange, http.StatusBadRequest},
		{"venue missing", domain.ErrVenueNotFound, http.StatusNotFound},
		{"storage", fmt.Errorf("insert event: %w: boom", domain.ErrStorage), http.StatusInternalServerError},
		{"constraint backstop", fmt.Errorf("insert event: %w", domain.ErrConflict), http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, bookingSvc, r := setupRouter(t)

			bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).
				Return(nil, fmt.Errorf("create event: %w", tt.err))

			w := doJSON(r, http.MethodPost, "/api/events", map[string]any{
				"venue_id": uuid.New().String(),
				"name":     "X",
				"start_at": "2026-03-10T09:00:00Z",
				"end_at":   "2026-03-10T10:00:00Z",
			})

			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestHandler_CreateEvent_ConflictDetails(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	blocking := sampleEvent(uuid.New().String())
	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("create event: %w", domain.NewConflictError(blocking)))

	w := doJSON(r, http.MethodPost, "/api/events", map[string]any{
		"venue_id": blocking.VenueID,
		"name":     "Overlap",
		"start_at": "2026-03-10T16:00:00Z",
		"end_at":   "2026-03-10T18:00:00Z",
	})

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Conflict)
	assert.Equal(t, blocking.ID, resp.Conflict.EventID)
	assert.Equal(t, "Wedding", resp.Conflict.EventName)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrEventNotFound)

	w := doJSON(r, http.MethodGet, "/api/events/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListEvents_Filter(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	venueID := uuid.New().String()
	bookingSvc.EXPECT().List(mock.Anything, domain.EventFilter{VenueID: venueID, Status: domain.EventStatusUpcoming}).
		Return([]*domain.Event{sampleEvent("e1"), sampleEvent("e2")}, nil)

	w := doJSON(r, http.MethodGet, "/api/events?status=upcoming&venue_id="+venueID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_ListEvents_InvalidVenue(t *testing.T) {
	_, _, r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/events?venue_id=abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateEvent(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	id := uuid.New().String()
	event := sampleEvent(id)
	event.Status = domain.EventStatusCancelled

	bookingSvc.EXPECT().Update(mock.Anything, id, mock.MatchedBy(func(in domain.UpdateEventInput) bool {
		return in.Status != nil && *in.Status == domain.EventStatusCancelled &&
			in.EndAt != nil && in.EndAt.Equal(time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)) &&
			in.StartAt == nil
	})).Return(event, nil)

	w := doJSON(r, http.MethodPatch, "/api/events/"+id, `{"status":"cancelled","end_at":"2026-03-10T18:00:00Z"}`)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_UpdateEvent_InvalidTime(t *testing.T) {
	_, _, r := setupRouter(t)

	w := doJSON(r, http.MethodPatch, "/api/events/"+uuid.New().String(), `{"start_at":"yesterday"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteEvent(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	id := uuid.New().String()
	bookingSvc.EXPECT().Delete(mock.Anything, id).Return(nil)

	w := doJSON(r, http.MethodDelete, "/api/events/"+id, nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_SetPayment(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	id := uuid.New().String()
	event := sampleEvent(id)
	paidAt := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	event.IsPaid = true
	event.PaymentDate = &paidAt

	bookingSvc.EXPECT().SetPaid(mock.Anything, id, true).Return(event, nil)

	w := doJSON(r, http.MethodPut, "/api/events/"+id+"/payment", `{"is_paid":true}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsPaid)
	require.NotNil(t, resp.PaymentDate)
	assert.Equal(t, "2026-03-01T08:00:00Z", *resp.PaymentDate)
}

func TestHandler_SetPayment_MissingFlag(t *testing.T) {
	_, _, r := setupRouter(t)

	w := doJSON(r, http.MethodPut, "/api/events/"+uuid.New().String()+"/payment", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
