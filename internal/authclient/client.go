// Package authclient resolves opaque bearer tokens against the auth
// service. Tokens carry no claims, so there is nothing to verify
// locally: every check is a fresh network round trip, which keeps
// revocation visibility current at the cost of coupling to the auth
// service's availability.
package authclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/iqbal-fadhil/thesis-try-out-app/internal/util"
)

// Identity is the projection of an account returned by resolving a
// token. It is held only for the duration of one request.
type Identity struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsStaff   bool   `json:"is_staff"`
}

// Resolver maps a token to the identity of its owning account.
// Implementations must fail closed: any doubt means no identity.
type Resolver interface {
	Resolve(ctx context.Context, token string) (*Identity, error)
}

// HTTPResolver calls the auth service's resolve endpoint. No cache:
// an auth service outage means nobody is authenticated, never everybody.
type HTTPResolver struct {
	baseURL string
	client  *http.Client
}

func NewHTTPResolver(baseURL string, timeout time.Duration) *HTTPResolver {
	return &HTTPResolver{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (r *HTTPResolver) Resolve(ctx context.Context, token string) (*Identity, error) {
	if strings.TrimSpace(token) == "" {
		return nil, util.ErrUnauthorized
	}

	endpoint := fmt.Sprintf("%s/api/auth/me?token=%s", r.baseURL, url.QueryEscape(token))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, util.ErrUnauthorized
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, util.ErrUnauthorized
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, util.ErrUnauthorized
	}

	var id Identity
	if err := json.NewDecoder(resp.Body).Decode(&id); err != nil {
		return nil, util.ErrUnauthorized
	}
	if id.Username == "" {
		return nil, util.ErrUnauthorized
	}

	return &id, nil
}
