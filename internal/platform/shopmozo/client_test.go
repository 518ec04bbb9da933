package shopmozo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	cfgpkg "github.com/gauswarn/storefront/pkg/config"
)

func newTestClient(baseURL string) *Client {
	cfg := &cfgpkg.Config{}
	cfg.Shopmozo.PublicKey = "pub_key"
	cfg.Shopmozo.PrivateKey = "priv_key"
	cfg.Shopmozo.BaseURL = baseURL
	return NewClient(cfg)
}

func TestPushOrder_ReturnsCarrierID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/push-order", r.URL.Path)
		require.Equal(t, "pub_key", r.Header.Get("public-key"))
		require.Equal(t, "priv_key", r.Header.Get("private-key"))

		var req PushOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "PREPAID", req.PaymentType)
		require.Len(t, req.ProductDetail, 1)

		w.Write([]byte(`{"result":"1","message":"ok","data":{"order_id":"SMZ123"}}`))
	}))
	defer srv.Close()

	id, err := newTestClient(srv.URL).PushOrder(context.Background(), &PushOrderRequest{
		OrderID:     "ORD_abc12345_1",
		PaymentType: "PREPAID",
		ProductDetail: []ProductDetail{
			{Name: "A2 Ghee 1L", SKUNumber: "SKU001", Quantity: 1, UnitPrice: 1500},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "SMZ123", id)
}

func TestPushOrder_RejectedResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"result":"0","message":"invalid warehouse"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).PushOrder(context.Background(), &PushOrderRequest{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid warehouse")
}

func TestPushOrder_EmptyOrderID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"result":"1","message":"ok","data":{}}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).PushOrder(context.Background(), &PushOrderRequest{})
	require.Error(t, err)
}
