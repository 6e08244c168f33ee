package application

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	identityDomain "github.com/davicafu/bookcourier/internal/identity/domain"
	sharedDomain "github.com/davicafu/bookcourier/internal/shared/domain"
	sharedCache "github.com/davicafu/bookcourier/internal/shared/platform/cache"
	"github.com/davicafu/bookcourier/internal/user/domain"
	"github.com/google/uuid"
)

// UserService define los casos de uso relacionados con User.
type UserService struct {
	repo  domain.UserRepository
	cache sharedCache.Cache
	log   *zap.Logger
}

// NewUserService constructor
func NewUserService(repo domain.UserRepository, cache sharedCache.Cache, log *zap.Logger) *UserService {
	return &UserService{repo: repo, cache: cache, log: log}
}

func retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		err = fn()
		if err == nil {
			return nil
		}

		select {
		case <-time.After(delay):
			// espera antes del siguiente intento
		case <-ctx.Done():
			return ctx.Err() // contexto cancelado
		}
	}
	return err
}

// CreateUser crea el usuario si no existe otro con el mismo email.
// Si existe, devuelve el existente junto con ErrUserAlreadyExists: la ruta
// lo traduce a un 200 informativo, no a un conflicto.
func (s *UserService) CreateUser(ctx context.Context, name, email, photoURL string) (*domain.User, error) {
	existing, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return existing, domain.ErrUserAlreadyExists
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	user := domain.NewUser(name, email, photoURL)
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	if s.cache != nil {
		go func(u *domain.User) {
			ctxCache, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()
			_ = s.cache.Set(ctxCache, domain.CacheKeyRole(u.Email), u.Role, 60)
		}(user)
	}

	return user, nil
}

// RoleByEmail resuelve el rol almacenado de un email (primero cache, luego
// repo con reintentos). Email desconocido => "user", nunca error.
func (s *UserService) RoleByEmail(ctx context.Context, email string) (identityDomain.Role, error) {
	if s.cache != nil {
		var cached identityDomain.Role
		if ok, _ := s.cache.Get(ctx, domain.CacheKeyRole(email), &cached); ok {
			return cached, nil
		}
	}

	var user *domain.User
	err := retry(ctx, 3, 100*time.Millisecond, func() error {
		var err error
		user, err = s.repo.GetByEmail(ctx, email)
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil // ausente se resuelve como "user", no se reintenta
		}
		return err
	})
	if err != nil {
		return "", err
	}

	role := identityDomain.RoleUser
	if user != nil && user.Role != "" {
		role = user.Role
	}

	if s.cache != nil {
		go func() {
			ctxCache, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()
			_ = s.cache.Set(ctxCache, domain.CacheKeyRole(email), role, 60)
		}()
	}

	return role, nil
}

// SetRole cambia el rol almacenado de un usuario e invalida su cache.
func (s *UserService) SetRole(ctx context.Context, id uuid.UUID, role identityDomain.Role) (*domain.User, error) {
	user, err := s.repo.UpdateRole(ctx, id, role)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		go func(email string) {
			ctxCache, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()
			_ = s.cache.Delete(ctxCache, domain.CacheKeyRole(email))
		}(user.Email)
	}

	return user, nil
}

// SearchUsers devuelve usuarios cuyo nombre O email matchee searchText
// (regex case-insensitive), paginados y ordenados por fecha de alta.
func (s *UserService) SearchUsers(ctx context.Context, searchText string, limit, skip int) ([]*domain.User, error) {
	var criteria sharedDomain.Criteria
	if searchText != "" {
		criteria = sharedDomain.Or(domain.SearchTextCriteria{Text: searchText})
	}

	if limit <= 0 {
		limit = 50
	}

	users, err := s.repo.List(ctx,
		criteria,
		sharedDomain.OffsetPagination{Limit: limit, Offset: skip},
		sharedDomain.Sort{Field: "createdAt", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []*domain.User{}
	}
	return users, nil
}

// Verificación estática: UserService actúa como RoleReader del Role Guard.
var _ identityDomain.RoleReader = (*UserService)(nil)
