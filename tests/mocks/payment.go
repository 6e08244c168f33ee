package mocks

import (
	"context"
	"sort"
	"sync"

	paymentDomain "github.com/davicafu/bookcourier/internal/payment/domain"
)

// InMemoryPaymentRepo simula PaymentRepository. Si OrderStore no es nil,
// ApplySettlement marca además el pedido como pagado, como haría la
// transacción real.
type InMemoryPaymentRepo struct {
	Payments   map[string]*paymentDomain.Payment // por transactionRef
	OrderStore *InMemoryOrderRepo
	mu         sync.Mutex
}

func NewInMemoryPaymentRepo() *InMemoryPaymentRepo {
	return &InMemoryPaymentRepo{Payments: make(map[string]*paymentDomain.Payment)}
}

func (r *InMemoryPaymentRepo) GetByTransactionRef(ctx context.Context, ref string) (*paymentDomain.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.Payments[ref]
	if !ok {
		return nil, paymentDomain.ErrPaymentNotFound
	}
	return p, nil
}

func (r *InMemoryPaymentRepo) ListByBuyer(ctx context.Context, email string) ([]*paymentDomain.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*paymentDomain.Payment
	for _, p := range r.Payments {
		if p.BuyerEmail == email {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaidAt.After(out[j].PaidAt) })
	return out, nil
}

func (r *InMemoryPaymentRepo) ApplySettlement(ctx context.Context, p *paymentDomain.Payment) error {
	if r.OrderStore != nil {
		if err := r.OrderStore.MarkPaid(p.OrderID); err != nil {
			return err
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Payments[p.TransactionRef] = p
	return nil
}

// Verificación estática
var _ paymentDomain.PaymentRepository = (*InMemoryPaymentRepo)(nil)
