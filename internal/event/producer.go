// Package event publishes storefront domain events to Kafka. Publishing is
// best-effort everywhere: callers treat broker failures as log-and-continue.
package event

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-faster/errors"
	"github.com/segmentio/kafka-go"

	"github.com/compustore/backend/internal/cart"
	"github.com/compustore/backend/internal/enquiry"
)

// Topics for the storefront event stream.
const (
	TopicCartUpdated     = "storefront.cart.updated"
	TopicCartCleared     = "storefront.cart.cleared"
	TopicEnquiryReceived = "storefront.enquiry.received"
)

// writer is the kafka.Writer surface the producer needs. Tests substitute a
// recording implementation.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

var (
	_ cart.Publisher    = (*Producer)(nil)
	_ enquiry.Publisher = (*Producer)(nil)
)

// Producer publishes storefront events. Messages are keyed by session or
// enquiry ID so one aggregate's events stay ordered within a partition.
type Producer struct {
	writer writer
	now    func() time.Time
}

// NewProducer creates a Producer writing to the given brokers. All topics
// share one writer; kafka-go routes by message topic.
func NewProducer(brokers []string) *Producer {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
	return &Producer{writer: w, now: time.Now}
}

// cartUpdatedEvent is the payload for TopicCartUpdated.
type cartUpdatedEvent struct {
	SessionID  string          `json:"session_id"`
	Items      []cart.LineItem `json:"items"`
	Subtotal   int64           `json:"subtotal"`
	ItemCount  int             `json:"item_count"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// cartClearedEvent is the payload for TopicCartCleared.
type cartClearedEvent struct {
	SessionID  string    `json:"session_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// enquiryReceivedEvent is the payload for TopicEnquiryReceived.
type enquiryReceivedEvent struct {
	EnquiryID  string    `json:"enquiry_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	OccurredAt time.Time `json:"occurred_at"`
}

// CartUpdated publishes the cart's full state after a mutation.
func (p *Producer) CartUpdated(ctx context.Context, sessionID string, c *cart.Cart) error {
	return p.publish(ctx, TopicCartUpdated, sessionID, cartUpdatedEvent{
		SessionID:  sessionID,
		Items:      c.Items(),
		Subtotal:   c.Subtotal(),
		ItemCount:  c.ItemCount(),
		OccurredAt: p.now().UTC(),
	})
}

// CartCleared publishes that the session's cart was emptied.
func (p *Producer) CartCleared(ctx context.Context, sessionID string) error {
	return p.publish(ctx, TopicCartCleared, sessionID, cartClearedEvent{
		SessionID:  sessionID,
		OccurredAt: p.now().UTC(),
	})
}

// EnquiryReceived publishes a new contact form submission.
func (p *Producer) EnquiryReceived(ctx context.Context, e *enquiry.Enquiry) error {
	return p.publish(ctx, TopicEnquiryReceived, e.ID, enquiryReceivedEvent{
		EnquiryID:  e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Subject:    e.Subject,
		OccurredAt: p.now().UTC(),
	})
}

func (p *Producer) publish(ctx context.Context, topic, key string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "marshal event")
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errors.Wrapf(err, "publish to %s", topic)
	}
	return nil
}

// Close flushes pending messages and releases the writer.
func (p *Producer) Close() error {
	if w, ok := p.writer.(*kafka.Writer); ok {
		return w.Close()
	}
	return nil
}
