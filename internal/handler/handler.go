package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Ranggadya/Venue-Event-Management-System/internal/domain"
	"github.com/Ranggadya/Venue-Event-Management-System/internal/handler/dto"
	"github.com/Ranggadya/Venue-Event-Management-System/internal/pricing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/ginext"
)

type VenueSvc interface {
	Create(ctx context.Context, input domain.CreateVenueInput) (*domain.Venue, error)
	GetDetails(ctx context.Context, id string) (*domain.VenueDetails, error)
	List(ctx context.Context) ([]*domain.Venue, error)
	Update(ctx context.Context, id string, input domain.UpdateVenueInput) (*domain.Venue, error)
	Delete(ctx context.Context, id string) error
}

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error)
	Update(ctx context.Context, id string, input domain.UpdateEventInput) (*domain.Event, error)
	Delete(ctx context.Context, id string) error
	SetPaid(ctx context.Context, id string, paid bool) (*domain.Event, error)
	CheckAvailability(ctx context.Context, venueID string, start, end time.Time, excludeEventID string) (*domain.AvailabilityResult, error)
	Quote(ctx context.Context, venueID string, input domain.QuoteInput) (*pricing.Quote, error)
}

type Handler struct {
	venueService   VenueSvc
	bookingService BookingSvc
}

func NewHandler(venueService VenueSvc, bookingService BookingSvc) *Handler {
	return &Handler{
		venueService:   venueService,
		bookingService: bookingService,
	}
}

// Venues

func (h *Handler) CreateVenue(c *ginext.Context) {
	var req dto.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateVenueInput{
		Name:         req.Name,
		Description:  req.Description,
		Address:      req.Address,
		Capacity:     req.Capacity,
		PricePerHour: toNullDecimal(req.PricePerHour),
		PricePerDay:  toNullDecimal(req.PricePerDay),
		Currency:     req.Currency,
		Status:       domain.VenueStatus(req.Status),
	}

	venue, err := h.venueService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVenueResponse(venue))
}

func (h *Handler) GetVenue(c *ginext.Context) {
	id, ok := pathID(c, "venue")
	if !ok {
		return
	}

	details, err := h.venueService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVenueDetailsResponse(details))
}

func (h *Handler) ListVenues(c *ginext.Context) {
	venues, err := h.venueService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.VenueResponse, 0, len(venues))
	for _, v := range venues {
		resp = append(resp, dto.ToVenueResponse(v))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateVenue(c *ginext.Context) {
	id, ok := pathID(c, "venue")
	if !ok {
		return
	}

	var req dto.UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateVenueInput{
		Name:         req.Name,
		Description:  req.Description,
		Address:      req.Address,
		Capacity:     req.Capacity,
		PricePerHour: rateUpdate(req.PricePerHour, req.ClearPricePerHour),
		PricePerDay:  rateUpdate(req.PricePerDay, req.ClearPricePerDay),
		Currency:     req.Currency,
	}
	if req.Status != nil {
		status := domain.VenueStatus(*req.Status)
		input.Status = &status
	}

	venue, err := h.venueService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVenueResponse(venue))
}

func (h *Handler) DeleteVenue(c *ginext.Context) {
	id, ok := pathID(c, "venue")
	if !ok {
		return
	}

	if err := h.venueService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) CheckAvailability(c *ginext.Context) {
	id, ok := pathID(c, "venue")
	if !ok {
		return
	}

	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start format, expected RFC3339"})
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end format, expected RFC3339"})
		return
	}

	exclude := c.Query("exclude_event_id")
	if exclude != "" {
		if _, err = uuid.Parse(exclude); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid exclude_event_id"})
			return
		}
	}

	res, err := h.bookingService.CheckAvailability(c.Request.Context(), id, start, end, exclude)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(res))
}

func (h *Handler) QuoteVenue(c *ginext.Context) {
	id, ok := pathID(c, "venue")
	if !ok {
		return
	}

	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, end, err := parseWindow(req.StartAt, req.EndAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	quote, err := h.bookingService.Quote(c.Request.Context(), id, domain.QuoteInput{
		StartAt:         start,
		EndAt:           end,
		DiscountPercent: req.DiscountPercent,
		AdditionalFees:  req.AdditionalFees,
		RentalType:      toRentalType(req.RentalType),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, end, err := parseWindow(req.StartAt, req.EndAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateEventInput{
		VenueID:         req.VenueID,
		Name:            req.Name,
		Description:     req.Description,
		StartAt:         start,
		EndAt:           end,
		AttendeeCount:   req.AttendeeCount,
		DiscountPercent: req.DiscountPercent,
		AdditionalFees:  req.AdditionalFees,
		RentalType:      toRentalType(req.RentalType),
		IsPaid:          req.IsPaid,
	}

	event, err := h.bookingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := pathID(c, "event")
	if !ok {
		return
	}

	event, err := h.bookingService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	filter := domain.EventFilter{
		VenueID: c.Query("venue_id"),
		Status:  domain.EventStatus(c.Query("status")),
	}
	if filter.VenueID != "" {
		if _, err := uuid.Parse(filter.VenueID); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid venue_id"})
			return
		}
	}

	events, err := h.bookingService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id, ok := pathID(c, "event")
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateEventInput{
		VenueID:         req.VenueID,
		Name:            req.Name,
		Description:     req.Description,
		AttendeeCount:   req.AttendeeCount,
		DiscountPercent: req.DiscountPercent,
		AdditionalFees:  req.AdditionalFees,
		RentalType:      toRentalType(req.RentalType),
		IsPaid:          req.IsPaid,
	}
	if req.StartAt != nil {
		t, err := time.Parse(time.RFC3339, *req.StartAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_at format, expected RFC3339"})
			return
		}
		input.StartAt = &t
	}
	if req.EndAt != nil {
		t, err := time.Parse(time.RFC3339, *req.EndAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_at format, expected RFC3339"})
			return
		}
		input.EndAt = &t
	}
	if req.Status != nil {
		status := domain.EventStatus(*req.Status)
		input.Status = &status
	}

	event, err := h.bookingService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id, ok := pathID(c, "event")
	if !ok {
		return
	}

	if err := h.bookingService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) SetPayment(c *ginext.Context) {
	id, ok := pathID(c, "event")
	if !ok {
		return
	}

	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.bookingService.SetPaid(c.Request.Context(), id, *req.IsPaid)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var conflict *domain.ConflictError

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Error:    err.Error(),
			Conflict: dto.ToConflictResponse(conflict.Conflict()),
		})

	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrActiveBookingsExist):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPastDate),
		errors.Is(err, domain.ErrVenueUnavailable),
		errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrConfiguration):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidRange):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func pathID(c *ginext.Context, kind string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + kind + " id"})
		return "", false
	}
	return id, true
}

func parseWindow(startRaw, endRaw string) (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339, startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid start_at format, expected RFC3339")
	}
	end, err := time.Parse(time.RFC3339, endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid end_at format, expected RFC3339")
	}
	return start, end, nil
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func rateUpdate(d *decimal.Decimal, unset bool) *decimal.NullDecimal {
	switch {
	case unset:
		return &decimal.NullDecimal{}
	case d != nil:
		nd := decimal.NewNullDecimal(*d)
		return &nd
	}
	return nil
}

func toRentalType(s *string) *domain.RentalType {
	if s == nil {
		return nil
	}
	rt := domain.RentalType(*s)
	return &rt
}
