package event

import "time"

type EventType string

const (
	OrderPlacedEventName        EventType = "OrderPlaced"
	OrderStatusChangedEventName EventType = "OrderStatusChanged"
	PaymentStatusChangedName    EventType = "PaymentStatusChanged"
)

type BaseEvent struct {
	EventID     string    `json:"eventId"`
	AggregateID string    `json:"aggregateId"`
	CreatedAt   time.Time `json:"createdAt"`
	EventType   EventType `json:"eventType"`
}

func (e *BaseEvent) GetID() string {
	return e.EventID
}

type Event interface {
	Type() EventType
	GetID() string
}
