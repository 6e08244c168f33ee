package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	identityDomain "github.com/davicafu/bookcourier/internal/identity/domain"
	"github.com/davicafu/bookcourier/internal/user/domain"
	"github.com/davicafu/bookcourier/tests/mocks"
)

func TestCreateUser_Success(t *testing.T) {
	repo := mocks.NewInMemoryUserRepo()
	cache := mocks.NewDummyCache()
	service := NewUserService(repo, cache, zap.NewNop())

	user, err := service.CreateUser(context.Background(), "Pepe", "pepe@example.com", "https://img.local/pepe.png")
	assert.NoError(t, err)
	assert.Equal(t, "pepe@example.com", user.Email)
	assert.Equal(t, identityDomain.RoleUser, user.Role)
	assert.Regexp(t, `^USER-\d{10}-[0-9A-F]{10}$`, user.UserID)
	assert.Len(t, repo.Users, 1)
}

func TestCreateUser_AlreadyExistsReturnsExisting(t *testing.T) {
	repo := mocks.NewInMemoryUserRepo()
	service := NewUserService(repo, nil, zap.NewNop())

	first, err := service.CreateUser(context.Background(), "Juan", "dup@example.com", "")
	assert.NoError(t, err)

	// Re-registro del mismo email: no-op que devuelve el existente
	second, err := service.CreateUser(context.Background(), "Otro Nombre", "dup@example.com", "")
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Juan", second.Name)
	assert.Len(t, repo.Users, 1)
}

func TestRoleByEmail_UnknownEmailIsUser(t *testing.T) {
	repo := mocks.NewInMemoryUserRepo()
	service := NewUserService(repo, nil, zap.NewNop())

	role, err := service.RoleByEmail(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	assert.Equal(t, identityDomain.RoleUser, role)
}

func TestRoleByEmail_CacheHitSkipsRepo(t *testing.T) {
	repo := mocks.NewInMemoryUserRepo()
	cache := mocks.NewDummyCache()
	service := NewUserService(repo, cache, zap.NewNop())

	cache.SetForTest(domain.CacheKeyRole("cached@example.com"), identityDomain.RoleLibrarian)

	role, err := service.RoleByEmail(context.Background(), "cached@example.com")
	assert.NoError(t, err)
	assert.Equal(t, identityDomain.RoleLibrarian, role)
}

func TestRoleByEmail_CacheErrorFallsBackToRepo(t *testing.T) {
	repo := mocks.NewInMemoryUserRepo()
	cache := mocks.NewDummyCache()
	cache.FailGet = errors.New("redis down")
	service := NewUserService(repo, cache, zap.NewNop())

	user, _ := service.CreateUser(context.Background(), "Ana", "ana@example.com", "")
	_, err := service.SetRole(context.Background(), user.ID, identityDomain.RoleAdmin)
	assert.NoError(t, err)

	role, err := service.RoleByEmail(context.Background(), "ana@example.com")
	assert.NoError(t, err)
	assert.Equal(t, identityDomain.RoleAdmin, role)
}

func TestSetRole_UpdatesAndInvalidatesCache(t *testing.T) {
	repo := mocks.NewInMemoryUserRepo()
	cache := mocks.NewDummyCache()
	service := NewUserService(repo, cache, zap.NewNop())

	// Alta directa por repo para no disparar el Set en background del servicio
	user := domain.NewUser("Eva", "eva@example.com", "")
	assert.NoError(t, repo.Create(context.Background(), user))
	cache.SetForTest(domain.CacheKeyRole("eva@example.com"), identityDomain.RoleUser)

	updated, err := service.SetRole(context.Background(), user.ID, identityDomain.RoleLibrarian)
	assert.NoError(t, err)
	assert.Equal(t, identityDomain.RoleLibrarian, updated.Role)

	// La invalidación corre en background
	assert.Eventually(t, func() bool {
		return !cache.Has(domain.CacheKeyRole("eva@example.com"))
	}, time.Second, 10*time.Millisecond)
}

func TestSetRole_NotFound(t *testing.T) {
	repo := mocks.NewInMemoryUserRepo()
	service := NewUserService(repo, nil, zap.NewNop())

	_, err := service.SetRole(context.Background(), uuid.New(), identityDomain.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestSearchUsers_MatchesNameOrEmail(t *testing.T) {
	repo := mocks.NewInMemoryUserRepo()
	service := NewUserService(repo, nil, zap.NewNop())

	_, _ = service.CreateUser(context.Background(), "Maria Lopez", "maria@example.com", "")
	_, _ = service.CreateUser(context.Background(), "Carlos Ruiz", "lopez.carlos@example.com", "")
	_, _ = service.CreateUser(context.Background(), "Pedro Gil", "pedro@example.com", "")

	// "lopez" matchea por nombre en una y por email en otra
	users, err := service.SearchUsers(context.Background(), "lopez", 0, 0)
	assert.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestSearchUsers_EmptyTextReturnsAll(t *testing.T) {
	repo := mocks.NewInMemoryUserRepo()
	service := NewUserService(repo, nil, zap.NewNop())

	_, _ = service.CreateUser(context.Background(), "Uno", "uno@example.com", "")
	_, _ = service.CreateUser(context.Background(), "Dos", "dos@example.com", "")

	users, err := service.SearchUsers(context.Background(), "", 0, 0)
	assert.NoError(t, err)
	assert.Len(t, users, 2)
}
