package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// Booking lifecycle event types.
const (
	TypeBookingCreated   = "booking.created"
	TypeBookingApproved  = "booking.approved"
	TypeBookingRejected  = "booking.rejected"
	TypeBookingCancelled = "booking.cancelled"
)

// BookingEvent is the message published on every booking status change.
type BookingEvent struct {
	Type        string          `json:"type"`
	BookingID   int64           `json:"booking_id"`
	ReferenceNo string          `json:"reference_no"`
	UserID      int64           `json:"user_id"`
	CompanyID   int64           `json:"company_id"`
	TravelType  string          `json:"travel_type"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

// Producer publishes booking lifecycle events to Kafka. A nil *Producer is
// valid and drops every event, so the broker stays optional.
type Producer struct {
	writer *kafka.Writer
	topic  string
}

func NewProducer(brokers []string, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
	return &Producer{writer: writer, topic: topic}
}

// Publish sends one booking event keyed by booking id. Events are emitted
// after the owning database transaction commits, so a publish failure never
// affects ledger state; callers log and move on.
func (p *Producer) Publish(ctx context.Context, event BookingEvent) error {
	if p == nil {
		return nil
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal booking event: %w", err)
	}

	message := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.BookingID, 10)),
		Value: data,
		Time:  time.Now(),
	}
	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to write booking event: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
