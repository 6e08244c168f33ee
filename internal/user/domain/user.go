package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	identityDomain "github.com/davicafu/bookcourier/internal/identity/domain"
	sharedBus "github.com/davicafu/bookcourier/internal/shared/platform/bus"
)

// User representa un usuario del marketplace.
type User struct {
	ID        uuid.UUID           `json:"id"`
	UserID    string              `json:"userId"` // identificador legible USER-...
	Name      string              `json:"name"`
	Email     string              `json:"email"`
	PhotoURL  string              `json:"photoURL,omitempty"`
	Role      identityDomain.Role `json:"role"`
	CreatedAt time.Time           `json:"createdAt"`
}

func (u *User) PartitionKey() string {
	return u.ID.String()
}

// Verificación estática
var _ sharedBus.Keyer = (*User)(nil)

// NewUser construye un usuario con rol por defecto "user" e ids generados.
func NewUser(name, email, photoURL string) *User {
	return &User{
		ID:        uuid.New(),
		UserID:    NewUserID(),
		Name:      name,
		Email:     email,
		PhotoURL:  photoURL,
		Role:      identityDomain.RoleUser,
		CreatedAt: time.Now().UTC(),
	}
}

// NewUserID genera un identificador legible USER-<YYMMDDHHMM>-<10 hex mayúsculas>.
func NewUserID() string {
	b := make([]byte, 5)
	_, _ = rand.Read(b)
	date := time.Now().UTC().Format("0601021504")
	return fmt.Sprintf("USER-%s-%s", date, strings.ToUpper(hex.EncodeToString(b)))
}
