package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	bookDomain "github.com/davicafu/bookcourier/internal/book/domain"
)

// ---------- Errores de dominio ----------
var (
	ErrEntryNotFound = errors.New("wishlist entry not found")
	ErrEntryExists   = errors.New("wishlist entry already exists")
)

// Entry es un libro guardado en la wishlist de un usuario.
// Lleva un snapshot de display para no re-consultar el catálogo al listar.
type Entry struct {
	ID        uuid.UUID `json:"id"`
	UserEmail string    `json:"userEmail"`
	BookID    uuid.UUID `json:"bookId"`
	BookTitle string    `json:"bookTitle"`
	CoverURL  string    `json:"coverURL,omitempty"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
}

// ---------- Interfaces (Ports) ----------

// WishlistRepository define las operaciones persistentes para Entry.
type WishlistRepository interface {
	Create(ctx context.Context, e *Entry) error

	// ListByUser devuelve las entradas de un usuario, más recientes primero.
	ListByUser(ctx context.Context, email string) ([]*Entry, error)

	// Exists indica si (email, bookId) ya está en la wishlist.
	Exists(ctx context.Context, email string, bookID uuid.UUID) (bool, error)

	// DeleteByID debe devolver ErrEntryNotFound si no existe.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// BookReader resuelve el snapshot del libro a guardar.
type BookReader interface {
	GetBook(ctx context.Context, id uuid.UUID) (*bookDomain.Book, error)
}
