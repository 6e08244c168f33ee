package domain

import (
	"time"

	"github.com/google/uuid"

	sharedBus "github.com/davicafu/bookcourier/internal/shared/platform/bus"
)

// OrderStatus es el estado de envío de un pedido. Conjunto cerrado.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// ParseOrderStatus valida un estado recibido por la API.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderPending:
		return OrderPending, nil
	case OrderShipped:
		return OrderShipped, nil
	case OrderDelivered:
		return OrderDelivered, nil
	case OrderCancelled:
		return OrderCancelled, nil
	default:
		return "", ErrInvalidOrderStatus
	}
}

// PaymentStatus es el estado de cobro del pedido.
type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

// Order representa un pedido de un libro. El "estado actual" vive aquí de
// forma redundante con el ledger: el ledger manda para el historial, el
// pedido manda para las consultas de estado actual.
type Order struct {
	ID            uuid.UUID     `json:"id"`
	BookID        uuid.UUID     `json:"bookId"`
	BookTitle     string        `json:"bookTitle"`
	BuyerEmail    string        `json:"buyerEmail"`
	Quantity      int           `json:"quantity"`
	UnitPrice     float64       `json:"unitPrice"`
	Status        OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	TrackingID    string        `json:"trackingId"`
	CreatedAt     time.Time     `json:"createdAt"`
}

func (o *Order) PartitionKey() string {
	return o.ID.String()
}

// Verificación estática
var _ sharedBus.Keyer = (*Order)(nil)
