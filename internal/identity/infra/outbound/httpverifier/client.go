package httpverifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/davicafu/bookcourier/internal/identity/domain"
)

// Client llama al endpoint de verificación de tokens del proveedor de
// identidad. El proveedor es la única autoridad: aquí no se decodifica
// ni valida nada localmente.
type Client struct {
	verifyURL string
	httpc     *http.Client
}

func New(verifyURL string) *Client {
	return &Client{
		verifyURL: verifyURL,
		httpc: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type verifyRequest struct {
	Token string `json:"token"`
}

type verifyResponse struct {
	Email string `json:"email"`
}

func (c *Client) Verify(ctx context.Context, token string) (domain.Principal, error) {
	body, err := json.Marshal(verifyRequest{Token: token})
	if err != nil {
		return domain.Principal{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, bytes.NewReader(body))
	if err != nil {
		return domain.Principal{}, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("verify token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return domain.Principal{}, domain.ErrInvalidToken
	}

	var r verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return domain.Principal{}, fmt.Errorf("decode verify response: %w", err)
	}
	if r.Email == "" {
		return domain.Principal{}, domain.ErrInvalidToken
	}

	return domain.Principal{Email: r.Email}, nil
}

// Verificación estática
var _ domain.TokenVerifier = (*Client)(nil)
