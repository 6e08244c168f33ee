package domain

import (
	"time"

	"github.com/google/uuid"

	sharedBus "github.com/davicafu/bookcourier/internal/shared/platform/bus"
)

// BookStatus es el estado de publicación de un libro. Conjunto cerrado.
type BookStatus string

const (
	BookAvailable   BookStatus = "available"
	BookUnavailable BookStatus = "unavailable"
)

// ParseBookStatus valida un estado recibido por la API.
func ParseBookStatus(s string) (BookStatus, error) {
	switch BookStatus(s) {
	case BookAvailable:
		return BookAvailable, nil
	case BookUnavailable:
		return BookUnavailable, nil
	default:
		return "", ErrInvalidBookStatus
	}
}

// Book representa un libro publicado en el catálogo.
type Book struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Author      string     `json:"author"`
	Description string     `json:"description,omitempty"`
	CoverURL    string     `json:"coverURL,omitempty"`
	Status      BookStatus `json:"status"`
	Price       float64    `json:"price"`
	Quantity    int        `json:"quantity"`
	TrackingID  string     `json:"trackingId"`
	OwnerEmail  string     `json:"ownerEmail"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func (b *Book) PartitionKey() string {
	return b.ID.String()
}

// Verificación estática
var _ sharedBus.Keyer = (*Book)(nil)
