package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rohittkale/Airline-Reservation-System/internal/service/reports"
)

type ReportHandler struct {
	service reports.ReportUseCase
}

type revenueRowResponse struct {
	FlightNumber string `json:"flight_number"`
	RevenueCents int64  `json:"revenue_cents"`
}

type occupancyRowResponse struct {
	FlightNumber     string  `json:"flight_number"`
	TotalSeats       int     `json:"total_seats"`
	AvailableSeats   int     `json:"available_seats"`
	OccupancyPercent float64 `json:"occupancy_percent"`
}

type routeRowResponse struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Bookings    int64  `json:"bookings"`
}

type customerRowResponse struct {
	Email      string `json:"email"`
	Bookings   int64  `json:"bookings"`
	SpentCents int64  `json:"spent_cents"`
}

func NewReportHandler(service reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) Register(router *gin.RouterGroup) {
	router.GET("/revenue", h.revenue)
	router.GET("/occupancy", h.occupancy)
	router.GET("/routes", h.routes)
	router.GET("/customers", h.customers)
}

func (h *ReportHandler) revenue(c *gin.Context) {
	rows, err := h.service.RevenueByFlight(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]revenueRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, revenueRowResponse{FlightNumber: r.FlightNumber, RevenueCents: r.RevenueCents})
	}
	c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) occupancy(c *gin.Context) {
	rows, err := h.service.OccupancyByFlight(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]occupancyRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, occupancyRowResponse{
			FlightNumber:     r.FlightNumber,
			TotalSeats:       r.TotalSeats,
			AvailableSeats:   r.AvailableSeats,
			OccupancyPercent: r.OccupancyPercent,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) routes(c *gin.Context) {
	rows, err := h.service.TopRoutes(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]routeRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, routeRowResponse{Source: r.Source, Destination: r.Destination, Bookings: r.Bookings})
	}
	c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) customers(c *gin.Context) {
	rows, err := h.service.TopCustomersBySpend(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]customerRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, customerRowResponse{Email: r.Email, Bookings: r.Bookings, SpentCents: r.SpentCents})
	}
	c.JSON(http.StatusOK, out)
}
