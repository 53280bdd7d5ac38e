package authclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iqbal-fadhil/thesis-try-out-app/internal/util"
)

func TestResolveSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/me", r.URL.Path)
		assert.Equal(t, "tok-123", r.URL.Query().Get("token"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"username":"alice","email":"alice@example.com","first_name":"Alice","last_name":"Doe","is_staff":true}`))
	}))
	defer srv.Close()

	resolver := NewHTTPResolver(srv.URL, time.Second)
	id, err := resolver.Resolve(context.Background(), "tok-123")
	require.NoError(t, err)

	assert.Equal(t, "alice", id.Username)
	assert.Equal(t, "alice@example.com", id.Email)
	assert.True(t, id.IsStaff)
}

func TestResolveEmptyTokenShortCircuits(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	resolver := NewHTTPResolver(srv.URL, time.Second)

	for _, token := range []string{"", "   "} {
		_, err := resolver.Resolve(context.Background(), token)
		assert.ErrorIs(t, err, util.ErrUnauthorized)
	}
	assert.False(t, called, "empty token must not hit the network")
}

func TestResolveFailsClosed(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
		}))
		defer srv.Close()

		resolver := NewHTTPResolver(srv.URL, time.Second)
		_, err := resolver.Resolve(context.Background(), "tok")
		assert.ErrorIs(t, err, util.ErrUnauthorized)
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer srv.Close()

		resolver := NewHTTPResolver(srv.URL, time.Second)
		_, err := resolver.Resolve(context.Background(), "tok")
		assert.ErrorIs(t, err, util.ErrUnauthorized)
	})

	t.Run("body without identity", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		resolver := NewHTTPResolver(srv.URL, time.Second)
		_, err := resolver.Resolve(context.Background(), "tok")
		assert.ErrorIs(t, err, util.ErrUnauthorized)
	})

	t.Run("transport failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // connection refused from here on

		resolver := NewHTTPResolver(srv.URL, time.Second)
		_, err := resolver.Resolve(context.Background(), "tok")
		assert.ErrorIs(t, err, util.ErrUnauthorized)
	})

	t.Run("timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		resolver := NewHTTPResolver(srv.URL, 20*time.Millisecond)
		_, err := resolver.Resolve(context.Background(), "tok")
		assert.ErrorIs(t, err, util.ErrUnauthorized)
	})
}
