package events

import (
	"encoding/json"
	"time"
)

// Base de todos los eventos de integración
type IntegrationEvent struct {
	Type      string          `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"` // contenido específico del evento
}

// Tipos de evento que publica el servicio tras cada cambio de estado.
const (
	BookCreated        = "book.created"
	BookDeleted        = "book.deleted"
	OrderStatusChanged = "order.status_changed"
	PaymentCompleted   = "payment.completed"
	TrackingAppended   = "tracking.appended"
)

// NewIntegrationEvent serializa el payload y arma el sobre con timestamp UTC.
func NewIntegrationEvent(eventType string, payload interface{}) (IntegrationEvent, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return IntegrationEvent{}, err
	}
	return IntegrationEvent{
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}, nil
}
