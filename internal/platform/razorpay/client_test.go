package razorpay

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	cfgpkg "github.com/gauswarn/storefront/pkg/config"
)

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	secret := "test_secret"
	sig := sign(secret, "order_abc", "pay_xyz")

	require.True(t, VerifySignature(secret, "order_abc", "pay_xyz", sig))
	require.False(t, VerifySignature(secret, "order_abc", "pay_other", sig))
	require.False(t, VerifySignature(secret, "order_abc", "pay_xyz", sig+"00"))
	require.False(t, VerifySignature("wrong_secret", "order_abc", "pay_xyz", sig))
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	cfg := &cfgpkg.Config{}
	cfg.Razorpay.KeyID = "rzp_test_key"
	cfg.Razorpay.KeySecret = "rzp_test_secret"
	cfg.Razorpay.BaseURL = baseURL
	c, err := NewClient(cfg, zap.NewNop().Sugar())
	require.NoError(t, err)
	return c
}

func TestCreateOrder_SendsBasicAuthAndParsesOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/orders", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "rzp_test_key", user)
		require.Equal(t, "rzp_test_secret", pass)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"order_test1","entity":"order","amount":50000,"currency":"INR","receipt":"TEMP_1","status":"created","notes":{"userId":"7"}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	order, err := c.CreateOrder(context.Background(), &CreateOrderRequest{
		Amount:   50000,
		Currency: "INR",
		Receipt:  "TEMP_1",
		Notes:    map[string]string{"userId": "7"},
	})
	require.NoError(t, err)
	require.Equal(t, "order_test1", order.ID)
	require.Equal(t, int64(50000), order.Amount)
	require.Equal(t, "7", order.Notes["userId"])
}

func TestFetchPayment_SurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/payments/pay_missing", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"The id provided does not exist"}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.FetchPayment(context.Background(), "pay_missing")
	require.Error(t, err)
	require.Contains(t, err.Error(), "The id provided does not exist")
}

func TestNewClient_RequiresCredentials(t *testing.T) {
	cfg := &cfgpkg.Config{}
	_, err := NewClient(cfg, zap.NewNop().Sugar())
	require.ErrorIs(t, err, ErrMissingCredentials)
}
