package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	identityDomain "github.com/davicafu/bookcourier/internal/identity/domain"
	sharedDomain "github.com/davicafu/bookcourier/internal/shared/domain"
)

// ---------- Errores de dominio ----------
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// ---------- Interfaces (Ports) ----------

// UserRepository define las operaciones persistentes para User.
type UserRepository interface {
	// Create inserta el usuario. No chequea duplicados: esa política vive
	// en el servicio (existence check por email).
	Create(ctx context.Context, u *User) error

	// GetByEmail debe devolver ErrUserNotFound si no existe.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// GetByID debe devolver ErrUserNotFound si no existe.
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)

	// UpdateRole debe devolver ErrUserNotFound si el usuario no existe.
	UpdateRole(ctx context.Context, id uuid.UUID, role identityDomain.Role) (*User, error)

	// List devuelve usuarios según criteria + paginación + orden.
	List(ctx context.Context, criteria sharedDomain.Criteria, pagination sharedDomain.Pagination, sort sharedDomain.Sort) ([]*User, error)
}

// ---------- Helpers comunes (cache keys, etc.) ----------

// CacheKeyRole forma la key de cache del rol almacenado de un email.
func CacheKeyRole(email string) string {
	return fmt.Sprintf("user:role:%s", email)
}
