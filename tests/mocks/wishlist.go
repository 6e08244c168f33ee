package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	wishlistDomain "github.com/davicafu/bookcourier/internal/wishlist/domain"
)

// InMemoryWishlistRepo simula WishlistRepository.
type InMemoryWishlistRepo struct {
	Entries map[uuid.UUID]*wishlistDomain.Entry
	mu      sync.Mutex
}

func NewInMemoryWishlistRepo() *InMemoryWishlistRepo {
	return &InMemoryWishlistRepo{Entries: make(map[uuid.UUID]*wishlistDomain.Entry)}
}

func (r *InMemoryWishlistRepo) Create(ctx context.Context, e *wishlistDomain.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Entries[e.ID] = e
	return nil
}

func (r *InMemoryWishlistRepo) ListByUser(ctx context.Context, email string) ([]*wishlistDomain.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*wishlistDomain.Entry
	for _, e := range r.Entries {
		if e.UserEmail == email {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *InMemoryWishlistRepo) Exists(ctx context.Context, email string, bookID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.Entries {
		if e.UserEmail == email && e.BookID == bookID {
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryWishlistRepo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.Entries[id]; !ok {
		return wishlistDomain.ErrEntryNotFound
	}
	delete(r.Entries, id)
	return nil
}

// Verificación estática
var _ wishlistDomain.WishlistRepository = (*InMemoryWishlistRepo)(nil)
