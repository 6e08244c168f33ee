package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"

	sharedDomain "github.com/davicafu/bookcourier/internal/shared/domain"
)

// ---------- Errores de dominio ----------
var (
	ErrBookNotFound      = errors.New("book not found")
	ErrInvalidBookStatus = errors.New("invalid book status")
)

// ---------- Interfaces (Ports) ----------

// BookRepository define las operaciones persistentes para Book.
type BookRepository interface {
	Create(ctx context.Context, b *Book) error

	// GetByID debe devolver ErrBookNotFound si no existe.
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)

	// UpdateStatus debe devolver ErrBookNotFound si no existe.
	UpdateStatus(ctx context.Context, id uuid.UUID, status BookStatus) (*Book, error)

	// DeleteCascade borra el libro Y todos los pedidos que lo referencian,
	// dentro de una misma transacción. Devuelve cuántos pedidos cayeron.
	// Debe devolver ErrBookNotFound si el libro no existe.
	DeleteCascade(ctx context.Context, id uuid.UUID) (int64, error)

	// List devuelve libros según criteria + paginación + orden.
	List(ctx context.Context, criteria sharedDomain.Criteria, pagination sharedDomain.Pagination, sort sharedDomain.Sort) ([]*Book, error)

	// Count devuelve el total de documentos que matchean el criteria,
	// ignorando la paginación.
	Count(ctx context.Context, criteria sharedDomain.Criteria) (int64, error)
}

// TrackingLogger es el append best-effort al ledger de seguimiento.
// Nunca bloquea ni falla la operación que lo dispara.
type TrackingLogger interface {
	AppendAsync(trackingID, status string)
}
