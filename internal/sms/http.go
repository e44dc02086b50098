package sms

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/stockkeeper/internal/netx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// tokenTTL bounds how long a signed gateway request stays valid.
const tokenTTL = 5 * time.Minute

const issuer = "stockkeeper"

type gatewayMessage struct {
	To   string `json:"to"`
	Body string `json:"body"`
}

// HTTPTransport posts {"to","body"} to an SMS gateway. Each request carries
// an HS256 bearer token and a fresh Idempotency-Key, which is also the
// token's jti.
type HTTPTransport struct {
	url    string
	secret []byte
	client *http.Client
	now    func() time.Time
}

func NewHTTPTransport(url string, secret []byte, client *http.Client) *HTTPTransport {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPTransport{url: url, secret: secret, client: client, now: time.Now}
}

func (t *HTTPTransport) Send(ctx context.Context, destination, body string) error {
	if t.url == "" {
		return errors.New("sms gateway url is not configured")
	}

	key := uuid.NewString()
	headers := map[string]string{"Idempotency-Key": key}

	if len(t.secret) > 0 {
		token, err := t.sign(key)
		if err != nil {
			return fmt.Errorf("sign request: %w", err)
		}
		headers["Authorization"] = "Bearer " + token
	}

	if err := netx.PostJSON(ctx, t.client, t.url, headers, gatewayMessage{To: destination, Body: body}); err != nil {
		return fmt.Errorf("sms gateway: %w", err)
	}
	return nil
}

func (t *HTTPTransport) sign(id string) (string, error) {
	now := t.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    issuer,
		ID:        id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	})
	return token.SignedString(t.secret)
}
