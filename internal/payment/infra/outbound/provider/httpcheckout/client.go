package httpcheckout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/davicafu/bookcourier/internal/payment/domain"
)

// Client habla con la API de checkout hosteado del proveedor de pagos.
// El proveedor es la autoridad sobre el estado de la sesión; aquí no se
// verifica ninguna firma ni se interpreta nada más allá de la respuesta.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpc: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type sessionResp struct {
	ID             string  `json:"id"`
	URL            string  `json:"url"`
	Status         string  `json:"status"`
	TransactionRef string  `json:"transaction_ref"`
	OrderID        string  `json:"order_id"`
	BuyerEmail     string  `json:"customer_email"`
	Amount         float64 `json:"amount"`
}

func (c *Client) CreateSession(ctx context.Context, in domain.CreateSessionInput) (*domain.CheckoutSession, error) {
	payload := map[string]interface{}{
		"order_id":       in.OrderID,
		"customer_email": in.BuyerEmail,
		"amount":         in.Amount,
		"product_ref":    in.ProductRef,
		"success_url":    in.SuccessURL,
		"cancel_url":     in.CancelURL,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/checkout/sessions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("payment provider http %d", resp.StatusCode)
	}

	var r sessionResp
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}

	return fromSessionResp(&r), nil
}

func (c *Client) GetSession(ctx context.Context, sessionID string) (*domain.CheckoutSession, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/checkout/sessions/"+sessionID, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("payment provider http %d", resp.StatusCode)
	}

	var r sessionResp
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}

	return fromSessionResp(&r), nil
}

func fromSessionResp(r *sessionResp) *domain.CheckoutSession {
	return &domain.CheckoutSession{
		ID:             r.ID,
		URL:            r.URL,
		Status:         r.Status,
		TransactionRef: r.TransactionRef,
		OrderID:        r.OrderID,
		BuyerEmail:     r.BuyerEmail,
		Amount:         r.Amount,
	}
}

// Verificación estática
var _ domain.CheckoutProvider = (*Client)(nil)
