package fake

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/davicafu/bookcourier/internal/payment/domain"
)

// Provider simula el checkout hosteado en memoria, para desarrollo local y
// tests. MarkPaid simula que el cliente completó el pago.
type Provider struct {
	mu       sync.Mutex
	sessions map[string]*domain.CheckoutSession
}

func New() *Provider {
	return &Provider{sessions: make(map[string]*domain.CheckoutSession)}
}

func (p *Provider) CreateSession(ctx context.Context, in domain.CreateSessionInput) (*domain.CheckoutSession, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := "cs_" + uuid.NewString()
	session := &domain.CheckoutSession{
		ID:             id,
		URL:            fmt.Sprintf("https://checkout.local/%s", id),
		Status:         "open",
		TransactionRef: "txn_" + uuid.NewString(),
		OrderID:        in.OrderID,
		BuyerEmail:     in.BuyerEmail,
		Amount:         in.Amount,
	}
	p.sessions[id] = session

	return copySession(session), nil
}

func (p *Provider) GetSession(ctx context.Context, sessionID string) (*domain.CheckoutSession, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	session, ok := p.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("unknown checkout session %q", sessionID)
	}
	return copySession(session), nil
}

// MarkPaid marca la sesión como pagada, como haría el proveedor real tras
// el pago del cliente.
func (p *Provider) MarkPaid(sessionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if session, ok := p.sessions[sessionID]; ok {
		session.Status = domain.SessionPaid
	}
}

func copySession(s *domain.CheckoutSession) *domain.CheckoutSession {
	copied := *s
	return &copied
}

// Verificación estática
var _ domain.CheckoutProvider = (*Provider)(nil)
