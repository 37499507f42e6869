package producer

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	evt_model "github.com/RoyceAzure/lab/storefront/internal/domain/model/event"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

// 訂單事件發佈，key用orderID做分區，同一訂單事件保序
type IOrderEventProducer interface {
	ProduceOrderPlacedEvent(ctx context.Context, order *model.Order) error
	ProduceOrderStatusChangedEvent(ctx context.Context, orderID string, from, to model.OrderStatus) error
	ProducePaymentStatusChangedEvent(ctx context.Context, orderID string, from, to model.PaymentStatus) error
	Close() error
}

type OrderEventProducer struct {
	writer *kafka.Writer
	closed atomic.Bool
}

func NewOrderEventProducer(brokers []string, topic string) *OrderEventProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireAll,
		Async:        false,
		MaxAttempts:  3,
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			log.Error().Msgf("kafka producer error: "+msg, args...)
		}),
		Compression: kafka.Snappy,
	}

	return &OrderEventProducer{writer: writer}
}

func (p *OrderEventProducer) ProduceOrderPlacedEvent(ctx context.Context, order *model.Order) error {
	event := &evt_model.OrderPlacedEvent{
		BaseEvent:   newBaseEvent(order.OrderID, evt_model.OrderPlacedEventName),
		OrderID:     order.OrderID,
		UserID:      order.UserID,
		OrderDate:   order.OrderDate,
		Items:       order.Items,
		Subtotal:    order.Subtotal,
		TotalAmount: order.TotalAmount,
		CouponCode:  order.CouponCode,
	}
	return p.produce(ctx, order.OrderID, event)
}

func (p *OrderEventProducer) ProduceOrderStatusChangedEvent(ctx context.Context, orderID string, from, to model.OrderStatus) error {
	event := &evt_model.OrderStatusChangedEvent{
		BaseEvent:  newBaseEvent(orderID, evt_model.OrderStatusChangedEventName),
		OrderID:    orderID,
		FromStatus: from,
		ToStatus:   to,
	}
	return p.produce(ctx, orderID, event)
}

func (p *OrderEventProducer) ProducePaymentStatusChangedEvent(ctx context.Context, orderID string, from, to model.PaymentStatus) error {
	event := &evt_model.PaymentStatusChangedEvent{
		BaseEvent:  newBaseEvent(orderID, evt_model.PaymentStatusChangedName),
		OrderID:    orderID,
		FromStatus: from,
		ToStatus:   to,
	}
	return p.produce(ctx, orderID, event)
}

func (p *OrderEventProducer) produce(ctx context.Context, key string, event evt_model.Event) error {
	if p.closed.Load() {
		return fmt.Errorf("producer is closed")
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", event.Type(), err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to produce %s event: %w", event.Type(), err)
	}
	return nil
}

func (p *OrderEventProducer) Close() error {
	if p.closed.CompareAndSwap(false, true) {
		return p.writer.Close()
	}
	return nil
}

func newBaseEvent(aggregateID string, eventType evt_model.EventType) evt_model.BaseEvent {
	return evt_model.BaseEvent{
		EventID:     uuid.New().String(),
		AggregateID: aggregateID,
		CreatedAt:   time.Now().UTC(),
		EventType:   eventType,
	}
}

var _ IOrderEventProducer = (*OrderEventProducer)(nil)
