package domain

import (
	"context"
	"errors"
)

// ---------- Errores de dominio ----------
var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid bearer token")
	ErrInvalidRole  = errors.New("invalid role")
)

// Principal es la identidad autenticada derivada de una credencial verificada.
type Principal struct {
	Email string `json:"email"`
}

// Role es el rol almacenado de un usuario. Conjunto cerrado, plano y
// mutuamente excluyente: un admin NO pasa un chequeo de librarian.
type Role string

const (
	RoleUser      Role = "user"
	RoleLibrarian Role = "librarian"
	RoleAdmin     Role = "admin"
)

// ParseRole valida un rol recibido por la API. Ausente => RoleUser.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser:
		return RoleUser, nil
	case RoleLibrarian:
		return RoleLibrarian, nil
	case RoleAdmin:
		return RoleAdmin, nil
	case "":
		return RoleUser, nil
	default:
		return "", ErrInvalidRole
	}
}

// ---------- Interfaces (Ports) ----------

// TokenVerifier delega la verificación de credenciales al proveedor de
// identidad externo y devuelve el principal autenticado.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (Principal, error)
}

// RoleReader resuelve el rol almacenado de un principal por su email.
// Email desconocido => RoleUser, nunca error.
type RoleReader interface {
	RoleByEmail(ctx context.Context, email string) (Role, error)
}
