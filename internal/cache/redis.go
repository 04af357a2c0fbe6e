package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rohittkale/Airline-Reservation-System/config"
	"github.com/rohittkale/Airline-Reservation-System/internal/domain"
)

type RedisCache struct {
	client     *redis.Client
	flightsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsTTL: flightsTTL,
	}
}

func (c *RedisCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, flightsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey(), payload, c.flightsTTL).Err()
}

// InvalidateFlights drops the cached flight list. Called after any mutation
// that changes seat counts or the flight set.
func (c *RedisCache) InvalidateFlights(ctx context.Context) error {
	return c.client.Del(ctx, flightsKey()).Err()
}

// AcquireSeatGuard reserves a (flight, seat) pair for the guard TTL so two
// concurrent bookings do not draw the same seat. Best effort only; the
// random allocation stays authoritative.
func (c *RedisCache) AcquireSeatGuard(ctx context.Context, flightID int64, seat string, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, seatGuardKey(flightID, seat), "taken", ttl).Result()
}

func (c *RedisCache) ReleaseSeatGuard(ctx context.Context, flightID int64, seat string) error {
	return c.client.Del(ctx, seatGuardKey(flightID, seat)).Err()
}

func flightsKey() string {
	return "cache:flights"
}

func seatGuardKey(flightID int64, seat string) string {
	return fmt.Sprintf("guard:flight:%d:seat:%s", flightID, seat)
}
