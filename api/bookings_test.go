package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/rohittkale/Airline-Reservation-System/internal/domain"
	"github.com/rohittkale/Airline-Reservation-System/internal/service/booking"
)

// MockBookingUseCase is a mock implementation of booking.BookingUseCase
type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) QuoteFare(ctx context.Context, flightID int64, seatClass string) (int64, error) {
	args := m.Called(ctx, flightID, seatClass)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingUseCase) CreateBooking(ctx context.Context, input booking.CreateBookingInput) (*domain.Booking, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) CancelBooking(ctx context.Context, input booking.CancelBookingInput) (*domain.Booking, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) ListUserBookings(ctx context.Context, userID int64) ([]domain.BookingHistoryItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingHistoryItem), args.Error(1)
}

func (m *MockBookingUseCase) ListAllBookings(ctx context.Context) ([]domain.BookingAdminItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingAdminItem), args.Error(1)
}

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:               1,
		Reference:        "c2f7a7a0-0d3c-4f2a-9a64-6f4c2b8a1d11",
		UserID:           7,
		FlightID:         3,
		PassengerName:    "Asha Verma",
		SeatNumber:       "B07",
		SeatClass:        domain.SeatClassBusiness,
		TotalAmountCents: 15000,
		BookingDate:      time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC),
		Status:           domain.BookingStatusConfirmed,
	}
}

func TestBookingHandler_create(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(createBookingRequest{
		FlightID:      3,
		PassengerName: "Asha Verma",
		SeatClass:     "Business",
	})
	c.Request = httptest.NewRequest("POST", "/bookings", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(ctxUserID, int64(7))
	c.Set(ctxRole, domain.RoleCustomer)

	input := booking.CreateBookingInput{
		FlightID:      3,
		UserID:        7,
		PassengerName: "Asha Verma",
		SeatClass:     "Business",
	}
	mockService.On("CreateBooking", c.Request.Context(), input).Return(confirmedBooking(), nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response bookingResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "B07", response.SeatNumber)
	assert.Equal(t, int64(15000), response.TotalAmountCents)
	assert.Equal(t, string(domain.BookingStatusConfirmed), response.Status)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_create_noSeats(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(createBookingRequest{FlightID: 3, PassengerName: "Asha Verma", SeatClass: "Economy"})
	c.Request = httptest.NewRequest("POST", "/bookings", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(ctxUserID, int64(7))

	mockService.On("CreateBooking", c.Request.Context(), mock.Anything).Return(nil, domain.ErrSeatsUnavailable)

	handler.create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestBookingHandler_quote(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("GET", "/bookings/quote?flight_id=3&seat_class=First+Class", nil)

	mockService.On("QuoteFare", c.Request.Context(), int64(3), "First Class").Return(int64(20000), nil)

	handler.quote(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response quoteResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, int64(20000), response.TotalAmountCents)
}

func TestBookingHandler_quote_badSeatClass(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("GET", "/bookings/quote?flight_id=3&seat_class=Premium", nil)

	mockService.On("QuoteFare", c.Request.Context(), int64(3), "Premium").Return(int64(0), domain.ErrInvalidSeatClass)

	handler.quote(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingHandler_cancel(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Request = httptest.NewRequest("DELETE", "/bookings/1", nil)
	c.Set(ctxUserID, int64(7))
	c.Set(ctxRole, domain.RoleCustomer)

	cancelled := confirmedBooking()
	cancelled.Status = domain.BookingStatusCancelled

	input := booking.CancelBookingInput{BookingID: 1, UserID: 7, Role: domain.RoleCustomer}
	mockService.On("CancelBooking", c.Request.Context(), input).Return(cancelled, nil)

	handler.cancel(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response bookingResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, string(domain.BookingStatusCancelled), response.Status)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_cancel_forbidden(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Request = httptest.NewRequest("DELETE", "/bookings/1", nil)
	c.Set(ctxUserID, int64(8))
	c.Set(ctxRole, domain.RoleCustomer)

	mockService.On("CancelBooking", c.Request.Context(), mock.Anything).Return(nil, domain.ErrForbidden)

	handler.cancel(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestBookingHandler_list(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("GET", "/bookings", nil)
	c.Set(ctxUserID, int64(7))

	items := []domain.BookingHistoryItem{
		{
			Booking:      *confirmedBooking(),
			FlightNumber: "AI101",
			Airline:      "Air India",
			Source:       "Mumbai",
			Destination:  "Delhi",
		},
	}
	mockService.On("ListUserBookings", c.Request.Context(), int64(7)).Return(items, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []bookingHistoryResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response, 1)
	assert.Equal(t, "AI101", response[0].FlightNumber)
	assert.Equal(t, "Mumbai", response[0].Source)
}

func TestBookingHandler_listAll(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("GET", "/bookings/all", nil)
	c.Set(ctxUserID, int64(1))
	c.Set(ctxRole, domain.RoleAdmin)

	items := []domain.BookingAdminItem{
		{
			Booking:      *confirmedBooking(),
			UserEmail:    "asha@example.com",
			FlightNumber: "AI101",
			Source:       "Mumbai",
			Destination:  "Delhi",
		},
	}
	mockService.On("ListAllBookings", c.Request.Context()).Return(items, nil)

	handler.listAll(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []bookingAdminResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response, 1)
	assert.Equal(t, "asha@example.com", response[0].UserEmail)
	assert.Equal(t, "AI101", response[0].FlightNumber)
}
