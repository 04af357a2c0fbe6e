package bootstrap

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/rohittkale/Airline-Reservation-System/api"
	"github.com/rohittkale/Airline-Reservation-System/config"
	"github.com/rohittkale/Airline-Reservation-System/internal/domain"
	"github.com/rohittkale/Airline-Reservation-System/internal/service/booking"
	"github.com/rohittkale/Airline-Reservation-System/internal/service/flights"
	"github.com/rohittkale/Airline-Reservation-System/internal/service/reports"
	"github.com/rohittkale/Airline-Reservation-System/internal/service/users"
)

// Services groups the use cases the HTTP surface exposes.
type Services struct {
	Users    users.UserUseCase
	Flights  flights.FlightUseCase
	Bookings booking.BookingUseCase
	Reports  reports.ReportUseCase
}

// Run starts the HTTP server and blocks until the context is cancelled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, svc Services) error {
	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: NewRouter(cfg, svc),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	}
}

// NewRouter wires handlers and middleware onto a gin engine.
func NewRouter(cfg *config.Config, svc Services) *gin.Engine {
	router := gin.Default()

	authHandler := api.NewAuthHandler(svc.Users)
	flightHandler := api.NewFlightHandler(svc.Flights)
	bookingHandler := api.NewBookingHandler(svc.Bookings)
	reportHandler := api.NewReportHandler(svc.Reports)

	authGroup := router.Group("/auth")
	usersGroup := router.Group("/users")
	usersGroup.Use(api.AuthRequired(cfg.Auth.JWTSecret))
	authHandler.Register(authGroup, usersGroup)

	flightsPublic := router.Group("/flights")
	flightsAdmin := router.Group("/flights")
	flightsAdmin.Use(api.AuthRequired(cfg.Auth.JWTSecret), api.RequireRole(domain.RoleAdmin))
	flightHandler.Register(flightsPublic, flightsAdmin)

	bookingsGroup := router.Group("/bookings")
	bookingsGroup.Use(api.AuthRequired(cfg.Auth.JWTSecret))
	bookingsAdmin := router.Group("/bookings")
	bookingsAdmin.Use(api.AuthRequired(cfg.Auth.JWTSecret), api.RequireRole(domain.RoleAdmin))
	bookingHandler.Register(bookingsGroup, bookingsAdmin)

	reportsGroup := router.Group("/reports")
	reportsGroup.Use(api.AuthRequired(cfg.Auth.JWTSecret), api.RequireRole(domain.RoleAdmin))
	reportHandler.Register(reportsGroup)

	if cfg.HTTP.SwaggerDir != "" {
		router.StaticFile("/swagger/openapi.json", cfg.HTTP.SwaggerDir+"/openapi.json")
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/openapi.json"),
		)))
	}

	return router
}
