package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/davicafu/bookcourier/internal/identity/domain"
	"github.com/davicafu/bookcourier/internal/identity/infra/outbound/staticverifier"
)

// stubRoleReader devuelve el rol configurado por email.
type stubRoleReader struct {
	roles map[string]domain.Role
}

func (r stubRoleReader) RoleByEmail(ctx context.Context, email string) (domain.Role, error) {
	if role, ok := r.roles[email]; ok {
		return role, nil
	}
	return domain.RoleUser, nil
}

func setupRouter(roles map[string]domain.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)

	guard := NewGuard(staticverifier.New("secret"), stubRoleReader{roles: roles}, zap.NewNop())

	r := gin.New()
	r.GET("/librarian-only", guard.RequireAuth(), guard.RequireRole(domain.RoleLibrarian), func(c *gin.Context) {
		principal, _ := PrincipalFrom(c)
		c.JSON(http.StatusOK, gin.H{"email": principal.Email})
	})
	return r
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/librarian-only", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_MissingToken(t *testing.T) {
	r := setupRouter(nil)

	w := doRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized Access!")
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	r := setupRouter(nil)

	w := doRequest(r, "wrong-secret:alice@example.com")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized Access!")
}

func TestRequireRole_ExactMatchPasses(t *testing.T) {
	r := setupRouter(map[string]domain.Role{
		"lib@example.com": domain.RoleLibrarian,
	})

	w := doRequest(r, "secret:lib@example.com")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "lib@example.com")
}

func TestRequireRole_AdminDoesNotPassLibrarianCheck(t *testing.T) {
	// Roles planos: admin NO hereda librarian
	r := setupRouter(map[string]domain.Role{
		"admin@example.com": domain.RoleAdmin,
	})

	w := doRequest(r, "secret:admin@example.com")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Forbidden Access!")
}

func TestRequireRole_PlainUserDenied(t *testing.T) {
	r := setupRouter(map[string]domain.Role{
		"user@example.com": domain.RoleUser,
	})

	w := doRequest(r, "secret:user@example.com")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_UsesStoredRoleNotToken(t *testing.T) {
	// El rol sale del almacén, no del token: un email sin registro es "user"
	r := setupRouter(nil)

	w := doRequest(r, "secret:unknown@example.com")
	assert.Equal(t, http.StatusForbidden, w.Code)
}
