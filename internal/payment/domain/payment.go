package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	orderDomain "github.com/davicafu/bookcourier/internal/order/domain"
)

// ---------- Errores de dominio ----------
var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrSessionNotPaid  = errors.New("checkout session not paid")
)

// Payment es el registro de un cobro liquidado. Se inserta exactamente una
// vez por referencia de transacción: la reconciliación es idempotente.
type Payment struct {
	ID             uuid.UUID `json:"id"`
	OrderID        uuid.UUID `json:"orderId"`
	BuyerEmail     string    `json:"buyerEmail"`
	Amount         float64   `json:"amount"`
	TransactionRef string    `json:"transactionRef"`
	SessionID      string    `json:"sessionId"`
	PaidAt         time.Time `json:"paidAt"`
}

// CheckoutSession es la vista local de una sesión de checkout hosteada por
// el proveedor de pagos. El proveedor es la autoridad sobre su estado.
type CheckoutSession struct {
	ID             string  `json:"id"`
	URL            string  `json:"url"`
	Status         string  `json:"status"` // "open" | "paid" | "expired"
	TransactionRef string  `json:"transactionRef"`
	OrderID        string  `json:"orderId"`
	BuyerEmail     string  `json:"buyerEmail"`
	Amount         float64 `json:"amount"`
}

const SessionPaid = "paid"

// ---------- Interfaces (Ports) ----------

// CreateSessionInput agrupa lo necesario para abrir una sesión de checkout.
type CreateSessionInput struct {
	OrderID    string
	BuyerEmail string
	Amount     float64
	ProductRef string // título del libro, para la página de checkout
	SuccessURL string
	CancelURL  string
}

// CheckoutProvider delega en el checkout hosteado del proveedor externo.
type CheckoutProvider interface {
	CreateSession(ctx context.Context, in CreateSessionInput) (*CheckoutSession, error)
	GetSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
}

// PaymentRepository define las operaciones persistentes para Payment.
type PaymentRepository interface {
	// GetByTransactionRef debe devolver ErrPaymentNotFound si no existe.
	// Es el existence check que hace idempotente la reconciliación.
	GetByTransactionRef(ctx context.Context, ref string) (*Payment, error)

	// ListByBuyer devuelve los pagos de un comprador, más recientes primero.
	ListByBuyer(ctx context.Context, email string) ([]*Payment, error)

	// ApplySettlement marca el pedido como pagado e inserta el registro de
	// pago dentro de una misma transacción.
	ApplySettlement(ctx context.Context, p *Payment) error
}

// OrderReader resuelve el pedido que se está cobrando.
type OrderReader interface {
	GetOrder(ctx context.Context, id uuid.UUID) (*orderDomain.Order, error)
}

// TrackingLogger es el append best-effort al ledger de seguimiento.
type TrackingLogger interface {
	AppendAsync(trackingID, status string)
}
