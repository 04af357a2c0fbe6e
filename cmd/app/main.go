package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/rohittkale/Airline-Reservation-System/config"
	"github.com/rohittkale/Airline-Reservation-System/internal/bootstrap"
	"github.com/rohittkale/Airline-Reservation-System/internal/cache"
	"github.com/rohittkale/Airline-Reservation-System/internal/kafka"
	"github.com/rohittkale/Airline-Reservation-System/internal/repository"
	"github.com/rohittkale/Airline-Reservation-System/internal/service/booking"
	"github.com/rohittkale/Airline-Reservation-System/internal/service/flights"
	"github.com/rohittkale/Airline-Reservation-System/internal/service/reports"
	"github.com/rohittkale/Airline-Reservation-System/internal/service/users"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.FlightsCacheTTL)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	userRepo := repository.NewUserRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	reportRepo := repository.NewReportRepository(pool)

	svc := bootstrap.Services{
		Users:   users.NewUserService(userRepo, cfg.Auth.JWTSecret, time.Duration(cfg.Auth.AccessTTLMinutes)*time.Minute, cfg.Auth.BcryptCost),
		Flights: flights.NewFlightService(flightRepo, redisCache),
		Bookings: booking.NewBookingService(
			bookingRepo,
			flightRepo,
			redisCache,
			producer,
			cfg.Kafka.BookingEventsTopic,
			time.Duration(cfg.Booking.SeatGuardTTL)*time.Second,
		),
		Reports: reports.NewReportService(reportRepo, cfg.Booking.ReportRowLimit),
	}

	if err := bootstrap.Run(ctx, cfg, svc); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
