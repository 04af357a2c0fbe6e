package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// BookingEvent is published on every booking state change and consumed by
// the notifications worker.
type BookingEvent struct {
	Type             string    `json:"type"`
	Reference        string    `json:"reference"`
	BookingID        int64     `json:"booking_id"`
	UserID           int64     `json:"user_id"`
	FlightID         int64     `json:"flight_id"`
	PassengerName    string    `json:"passenger_name"`
	SeatNumber       string    `json:"seat_number"`
	SeatClass        string    `json:"seat_class"`
	TotalAmountCents int64     `json:"total_amount_cents"`
	Status           string    `json:"status"`
	BookingDate      time.Time `json:"booking_date"`
}

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	})
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
