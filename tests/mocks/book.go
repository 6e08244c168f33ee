package mocks

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	bookDomain "github.com/davicafu/bookcourier/internal/book/domain"
	sharedDomain "github.com/davicafu/bookcourier/internal/shared/domain"
)

// InMemoryBookRepo simula BookRepository. Si OrderStore no es nil,
// DeleteCascade borra también los pedidos del libro, como haría la
// transacción real.
type InMemoryBookRepo struct {
	Books      map[uuid.UUID]*bookDomain.Book
	OrderStore *InMemoryOrderRepo
	mu         sync.Mutex
}

func NewInMemoryBookRepo() *InMemoryBookRepo {
	return &InMemoryBookRepo{Books: make(map[uuid.UUID]*bookDomain.Book)}
}

func (r *InMemoryBookRepo) Create(ctx context.Context, b *bookDomain.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Books[b.ID] = b
	return nil
}

func (r *InMemoryBookRepo) GetByID(ctx context.Context, id uuid.UUID) (*bookDomain.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.Books[id]
	if !ok {
		return nil, bookDomain.ErrBookNotFound
	}
	return b, nil
}

func (r *InMemoryBookRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status bookDomain.BookStatus) (*bookDomain.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.Books[id]
	if !ok {
		return nil, bookDomain.ErrBookNotFound
	}
	b.Status = status
	return b, nil
}

func (r *InMemoryBookRepo) DeleteCascade(ctx context.Context, id uuid.UUID) (int64, error) {
	r.mu.Lock()
	if _, ok := r.Books[id]; !ok {
		r.mu.Unlock()
		return 0, bookDomain.ErrBookNotFound
	}
	delete(r.Books, id)
	r.mu.Unlock()

	if r.OrderStore == nil {
		return 0, nil
	}
	return r.OrderStore.DeleteByBookID(id), nil
}

func (r *InMemoryBookRepo) List(ctx context.Context, criteria sharedDomain.Criteria, pagination sharedDomain.Pagination, sortBy sharedDomain.Sort) ([]*bookDomain.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*bookDomain.Book
	for _, b := range r.Books {
		if matchBook(b, criteria) {
			out = append(out, b)
		}
	}
	sortBooks(out, sortBy)

	if p, ok := pagination.(sharedDomain.OffsetPagination); ok {
		if p.Offset >= len(out) {
			return []*bookDomain.Book{}, nil
		}
		out = out[p.Offset:]
		if p.Limit > 0 && p.Limit < len(out) {
			out = out[:p.Limit]
		}
	}
	return out, nil
}

func (r *InMemoryBookRepo) Count(ctx context.Context, criteria sharedDomain.Criteria) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, b := range r.Books {
		if matchBook(b, criteria) {
			n++
		}
	}
	return n, nil
}

// matchBook aproxima la semántica de los filtros Mongo: AND de condiciones,
// ILIKE como Contains case-insensitive.
func matchBook(b *bookDomain.Book, criteria sharedDomain.Criteria) bool {
	if criteria == nil {
		return true
	}
	for _, c := range criteria.ToConditions() {
		if !matchBookCondition(b, c) {
			return false
		}
	}
	return true
}

func matchBookCondition(b *bookDomain.Book, c sharedDomain.Criterion) bool {
	var field string
	switch c.Field {
	case "title":
		field = b.Title
	case "author":
		field = b.Author
	case "status":
		field = string(b.Status)
	case "ownerEmail":
		field = b.OwnerEmail
	default:
		return false
	}
	want := fmt.Sprintf("%v", c.Value)
	switch c.Op {
	case sharedDomain.OpEq:
		return field == want
	case sharedDomain.OpILike:
		return strings.Contains(strings.ToLower(field), strings.ToLower(want))
	default:
		return false
	}
}

func sortBooks(books []*bookDomain.Book, s sharedDomain.Sort) {
	less := func(i, j int) bool { return books[i].CreatedAt.Before(books[j].CreatedAt) }
	switch s.Field {
	case "price":
		less = func(i, j int) bool { return books[i].Price < books[j].Price }
	case "title":
		less = func(i, j int) bool { return books[i].Title < books[j].Title }
	}
	if s.Desc {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}
	sort.Slice(books, less)
}

// Verificación estática
var _ bookDomain.BookRepository = (*InMemoryBookRepo)(nil)
