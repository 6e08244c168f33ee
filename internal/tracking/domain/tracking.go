package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	sharedBus "github.com/davicafu/bookcourier/internal/shared/platform/bus"
)

// TrackingEvent es una entrada inmutable del ledger de seguimiento.
// El ledger es append-only: nunca se actualiza ni se borra una entrada.
type TrackingEvent struct {
	ID         uuid.UUID `json:"id"`
	TrackingID string    `json:"trackingId"`
	Status     string    `json:"status"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (e *TrackingEvent) PartitionKey() string {
	return e.TrackingID
}

// Verificación estática
var _ sharedBus.Keyer = (*TrackingEvent)(nil)

// Códigos de estado conocidos. El set es abierto: los cambios de estado de
// pedido generan códigos book_order_<status> vía OrderStatusCode.
const (
	StatusParcelCreated    = "book_parcel_created"
	StatusOrdered          = "book_has_ordered"
	StatusPaymentCompleted = "payment_completed"
)

// OrderStatusCode deriva el código de ledger para un cambio de estado de pedido.
func OrderStatusCode(orderStatus string) string {
	return "book_order_" + orderStatus
}

// MessageFor deriva el mensaje de display a partir del status: cada '_' se
// sustituye por un espacio. Es una proyección de solo lectura, nunca se
// vuelve a parsear.
func MessageFor(status string) string {
	return strings.ReplaceAll(status, "_", " ")
}

// NewTrackingEvent construye una entrada lista para insertar.
func NewTrackingEvent(trackingID, status string) *TrackingEvent {
	return &TrackingEvent{
		ID:         uuid.New(),
		TrackingID: trackingID,
		Status:     status,
		Message:    MessageFor(status),
		CreatedAt:  time.Now().UTC(),
	}
}

// NewTrackingID genera un identificador opaco BOOK-<YYYYMMDD>-<6 hex mayúsculas>.
// Se genera una sola vez al crear el libro y nunca se reutiliza.
func NewTrackingID() string {
	b := make([]byte, 3)
	_, _ = rand.Read(b)
	date := time.Now().UTC().Format("20060102")
	return fmt.Sprintf("BOOK-%s-%s", date, strings.ToUpper(hex.EncodeToString(b)))
}
