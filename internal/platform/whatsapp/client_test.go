package whatsapp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	cfgpkg "github.com/gauswarn/storefront/pkg/config"
)

func newTestClient(baseURL string) *Client {
	cfg := &cfgpkg.Config{}
	cfg.WhatsApp.User = "gw_user"
	cfg.WhatsApp.Pass = "gw_pass"
	cfg.WhatsApp.Sender = "BUZWAP"
	cfg.WhatsApp.BaseURL = baseURL
	return NewClient(cfg)
}

func TestSend_BuildsGatewayQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		require.Equal(t, "gw_user", q.Get("user"))
		require.Equal(t, "gw_pass", q.Get("pass"))
		require.Equal(t, "BUZWAP", q.Get("sender"))
		require.Equal(t, "9876543210", q.Get("phone"))
		require.Equal(t, "wa", q.Get("priority"))
		require.Equal(t, "normal", q.Get("stype"))
		require.Contains(t, q.Get("text"), "Order ID")
		w.Write([]byte("S.OK"))
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).Send(context.Background(), "9876543210", "Thank you for your order! Order ID: SMZ123")
	require.NoError(t, err)
}

func TestSend_GatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).Send(context.Background(), "9876543210", "hi")
	require.Error(t, err)
}
