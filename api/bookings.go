package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rohittkale/Airline-Reservation-System/internal/domain"
	"github.com/rohittkale/Airline-Reservation-System/internal/service/booking"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	FlightID      int64  `json:"flight_id"`
	PassengerName string `json:"passenger_name"`
	SeatClass     string `json:"seat_class"`
}

type bookingResponse struct {
	ID               int64  `json:"id"`
	Reference        string `json:"reference"`
	FlightID         int64  `json:"flight_id"`
	PassengerName    string `json:"passenger_name"`
	SeatNumber       string `json:"seat_number"`
	SeatClass        string `json:"seat_class"`
	TotalAmountCents int64  `json:"total_amount_cents"`
	BookingDate      string `json:"booking_date"`
	Status           string `json:"status"`
}

type bookingHistoryResponse struct {
	bookingResponse
	FlightNumber string `json:"flight_number"`
	Airline      string `json:"airline"`
	Source       string `json:"source"`
	Destination  string `json:"destination"`
}

type bookingAdminResponse struct {
	bookingResponse
	UserEmail    string `json:"user_email"`
	FlightNumber string `json:"flight_number"`
	Source       string `json:"source"`
	Destination  string `json:"destination"`
}

type quoteResponse struct {
	FlightID         int64  `json:"flight_id"`
	SeatClass        string `json:"seat_class"`
	TotalAmountCents int64  `json:"total_amount_cents"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

// Register wires customer endpoints on the authenticated group and the
// all-bookings listing on the admin group.
func (h *BookingHandler) Register(authed, admin *gin.RouterGroup) {
	authed.GET("/quote", h.quote)
	authed.GET("/", h.list)
	authed.POST("/", h.create)
	authed.DELETE("/:id", h.cancel)

	admin.GET("/all", h.listAll)
}

func (h *BookingHandler) quote(c *gin.Context) {
	flightID, err := strconv.ParseInt(c.Query("flight_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid flight_id"})
		return
	}
	seatClass := c.Query("seat_class")

	amount, err := h.service.QuoteFare(c.Request.Context(), flightID, seatClass)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, quoteResponse{FlightID: flightID, SeatClass: seatClass, TotalAmountCents: amount})
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		FlightID:      req.FlightID,
		UserID:        callerID(c),
		PassengerName: req.PassengerName,
		SeatClass:     req.SeatClass,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toBookingResponse(created))
}

func (h *BookingHandler) cancel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	cancelled, err := h.service.CancelBooking(c.Request.Context(), booking.CancelBookingInput{
		BookingID: id,
		UserID:    callerID(c),
		Role:      callerRole(c),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponse(cancelled))
}

func (h *BookingHandler) list(c *gin.Context) {
	items, err := h.service.ListUserBookings(c.Request.Context(), callerID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]bookingHistoryResponse, 0, len(items))
	for _, it := range items {
		out = append(out, bookingHistoryResponse{
			bookingResponse: toBookingResponse(&it.Booking),
			FlightNumber:    it.FlightNumber,
			Airline:         it.Airline,
			Source:          it.Source,
			Destination:     it.Destination,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *BookingHandler) listAll(c *gin.Context) {
	items, err := h.service.ListAllBookings(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]bookingAdminResponse, 0, len(items))
	for _, it := range items {
		out = append(out, bookingAdminResponse{
			bookingResponse: toBookingResponse(&it.Booking),
			UserEmail:       it.UserEmail,
			FlightNumber:    it.FlightNumber,
			Source:          it.Source,
			Destination:     it.Destination,
		})
	}
	c.JSON(http.StatusOK, out)
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:               b.ID,
		Reference:        b.Reference,
		FlightID:         b.FlightID,
		PassengerName:    b.PassengerName,
		SeatNumber:       b.SeatNumber,
		SeatClass:        string(b.SeatClass),
		TotalAmountCents: b.TotalAmountCents,
		BookingDate:      b.BookingDate.Format(time.RFC3339),
		Status:           string(b.Status),
	}
}
