package mocks

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	identityDomain "github.com/davicafu/bookcourier/internal/identity/domain"
	sharedDomain "github.com/davicafu/bookcourier/internal/shared/domain"
	userDomain "github.com/davicafu/bookcourier/internal/user/domain"
)

// InMemoryUserRepo simula UserRepository.
type InMemoryUserRepo struct {
	Users map[uuid.UUID]*userDomain.User
	mu    sync.Mutex
}

func NewInMemoryUserRepo() *InMemoryUserRepo {
	return &InMemoryUserRepo{Users: make(map[uuid.UUID]*userDomain.User)}
}

func (r *InMemoryUserRepo) Create(ctx context.Context, u *userDomain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Users[u.ID] = u
	return nil
}

func (r *InMemoryUserRepo) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, userDomain.ErrUserNotFound
}

func (r *InMemoryUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*userDomain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.Users[id]
	if !ok {
		return nil, userDomain.ErrUserNotFound
	}
	return u, nil
}

func (r *InMemoryUserRepo) UpdateRole(ctx context.Context, id uuid.UUID, role identityDomain.Role) (*userDomain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.Users[id]
	if !ok {
		return nil, userDomain.ErrUserNotFound
	}
	u.Role = role
	return u, nil
}

// List aplica el criteria de forma aproximada: eq exacto, ILIKE como
// Contains case-insensitive, OR para CompositeCriteria con OpOr.
func (r *InMemoryUserRepo) List(ctx context.Context, criteria sharedDomain.Criteria, pagination sharedDomain.Pagination, sortBy sharedDomain.Sort) ([]*userDomain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	isOr := false
	var conds []sharedDomain.Criterion
	if criteria != nil {
		if composite, ok := criteria.(sharedDomain.CompositeCriteria); ok && composite.Operator == sharedDomain.OpOr {
			isOr = true
		}
		conds = criteria.ToConditions()
	}

	var out []*userDomain.User
	for _, u := range r.Users {
		if matchUser(u, conds, isOr) {
			out = append(out, u)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if sortBy.Desc {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	if p, ok := pagination.(sharedDomain.OffsetPagination); ok {
		if p.Offset >= len(out) {
			return nil, nil
		}
		out = out[p.Offset:]
		if p.Limit > 0 && p.Limit < len(out) {
			out = out[:p.Limit]
		}
	}

	return out, nil
}

func matchUser(u *userDomain.User, conds []sharedDomain.Criterion, isOr bool) bool {
	if len(conds) == 0 {
		return true
	}

	fieldValue := func(field string) string {
		switch field {
		case "name":
			return u.Name
		case "email":
			return u.Email
		default:
			return ""
		}
	}

	for _, c := range conds {
		value, _ := c.Value.(string)
		var ok bool
		switch c.Op {
		case sharedDomain.OpILike:
			ok = strings.Contains(strings.ToLower(fieldValue(c.Field)), strings.ToLower(value))
		default:
			ok = fieldValue(c.Field) == value
		}

		if isOr && ok {
			return true
		}
		if !isOr && !ok {
			return false
		}
	}

	return !isOr
}

// Verificación estática
var _ userDomain.UserRepository = (*InMemoryUserRepo)(nil)
