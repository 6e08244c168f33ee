package http

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/davicafu/bookcourier/internal/identity/domain"
	"github.com/davicafu/bookcourier/pkg/utils"
)

const principalKey = "principal"

// Guard agrupa los middlewares de autenticación y autorización.
// La autenticación delega en el proveedor de identidad (TokenVerifier);
// la autorización compara el rol almacenado con el requerido por la ruta.
type Guard struct {
	verifier domain.TokenVerifier
	roles    domain.RoleReader
	log      *zap.Logger
}

func NewGuard(verifier domain.TokenVerifier, roles domain.RoleReader, log *zap.Logger) *Guard {
	return &Guard{verifier: verifier, roles: roles, log: log}
}

// RequireAuth extrae el bearer token, lo verifica contra el proveedor e
// inyecta el principal en el contexto de la request. 401 si falta o es inválido.
func (g *Guard) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := ""
		if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			token = parts[1]
		}
		if token == "" {
			utils.SendUnauthorized(c, "Unauthorized Access!")
			c.Abort()
			return
		}

		principal, err := g.verifier.Verify(c.Request.Context(), token)
		if err != nil {
			g.log.Debug("token verification failed", zap.Error(err))
			utils.SendUnauthorized(c, "Unauthorized Access!")
			c.Abort()
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// RequireRole deniega con 403 salvo que el rol almacenado del principal sea
// EXACTAMENTE el requerido. Los roles son planos: no hay jerarquía, un admin
// no pasa un chequeo de librarian.
func (g *Guard) RequireRole(required domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFrom(c)
		if !ok {
			utils.SendUnauthorized(c, "Unauthorized Access!")
			c.Abort()
			return
		}

		role, err := g.roles.RoleByEmail(c.Request.Context(), principal.Email)
		if err != nil {
			g.log.Warn("role lookup failed", zap.String("email", principal.Email), zap.Error(err))
			utils.SendInternalServerError(c, "could not resolve role")
			c.Abort()
			return
		}

		switch role {
		case domain.RoleUser, domain.RoleLibrarian, domain.RoleAdmin:
			if role != required {
				utils.SendForbidden(c, "Forbidden Access!")
				c.Abort()
				return
			}
		default:
			utils.SendForbidden(c, "Forbidden Access!")
			c.Abort()
			return
		}

		c.Next()
	}
}

// PrincipalFrom recupera el principal autenticado del contexto.
func PrincipalFrom(c *gin.Context) (domain.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return domain.Principal{}, false
	}
	p, ok := v.(domain.Principal)
	return p, ok
}
