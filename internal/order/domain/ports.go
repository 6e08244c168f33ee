package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"

	bookDomain "github.com/davicafu/bookcourier/internal/book/domain"
)

// ---------- Errores de dominio ----------
var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderAlreadyExists = errors.New("order already exists")
	ErrInvalidOrderStatus = errors.New("invalid order status")
)

// ---------- Interfaces (Ports) ----------

// OrderRepository define las operaciones persistentes para Order.
type OrderRepository interface {
	Create(ctx context.Context, o *Order) error

	// GetByID debe devolver ErrOrderNotFound si no existe.
	GetByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// ListByBuyer devuelve los pedidos de un comprador, más recientes primero.
	ListByBuyer(ctx context.Context, email string) ([]*Order, error)

	// ExistsActive indica si el comprador ya tiene un pedido no cancelado
	// del mismo libro (chequeo de duplicados).
	ExistsActive(ctx context.Context, buyerEmail string, bookID uuid.UUID) (bool, error)

	// UpdateStatus debe devolver ErrOrderNotFound si no existe.
	UpdateStatus(ctx context.Context, id uuid.UUID, status OrderStatus) (*Order, error)
}

// BookReader resuelve el libro que se está pidiendo (snapshot de título,
// precio y trackingId).
type BookReader interface {
	GetBook(ctx context.Context, id uuid.UUID) (*bookDomain.Book, error)
}

// TrackingLogger es el append best-effort al ledger de seguimiento.
type TrackingLogger interface {
	AppendAsync(trackingID, status string)
}
