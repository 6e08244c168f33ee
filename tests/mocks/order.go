package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	orderDomain "github.com/davicafu/bookcourier/internal/order/domain"
)

// InMemoryOrderRepo simula OrderRepository.
type InMemoryOrderRepo struct {
	Orders map[uuid.UUID]*orderDomain.Order
	mu     sync.Mutex
}

func NewInMemoryOrderRepo() *InMemoryOrderRepo {
	return &InMemoryOrderRepo{Orders: make(map[uuid.UUID]*orderDomain.Order)}
}

func (r *InMemoryOrderRepo) Create(ctx context.Context, o *orderDomain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Orders[o.ID] = o
	return nil
}

func (r *InMemoryOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*orderDomain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.Orders[id]
	if !ok {
		return nil, orderDomain.ErrOrderNotFound
	}
	return o, nil
}

func (r *InMemoryOrderRepo) ListByBuyer(ctx context.Context, email string) ([]*orderDomain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*orderDomain.Order
	for _, o := range r.Orders {
		if o.BuyerEmail == email {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *InMemoryOrderRepo) ExistsActive(ctx context.Context, buyerEmail string, bookID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.Orders {
		if o.BuyerEmail == buyerEmail && o.BookID == bookID && o.Status != orderDomain.OrderCancelled {
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status orderDomain.OrderStatus) (*orderDomain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.Orders[id]
	if !ok {
		return nil, orderDomain.ErrOrderNotFound
	}
	o.Status = status
	return o, nil
}

// MarkPaid replica el efecto de la transacción de settlement sobre el pedido.
func (r *InMemoryOrderRepo) MarkPaid(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.Orders[id]
	if !ok {
		return orderDomain.ErrOrderNotFound
	}
	o.PaymentStatus = orderDomain.PaymentPaid
	return nil
}

// DeleteByBookID borra los pedidos de un libro; lo usa el mock de libros
// para simular la cascada.
func (r *InMemoryOrderRepo) DeleteByBookID(bookID uuid.UUID) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	var deleted int64
	for id, o := range r.Orders {
		if o.BookID == bookID {
			delete(r.Orders, id)
			deleted++
		}
	}
	return deleted
}

// Verificación estática
var _ orderDomain.OrderRepository = (*InMemoryOrderRepo)(nil)
