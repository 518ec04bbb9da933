package payment

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gauswarn/storefront/internal/platform/shopmozo"
	"github.com/gauswarn/storefront/pkg/config"
	types "github.com/gauswarn/storefront/pkg/types"
)

var localIDPattern = regexp.MustCompile(`^ORD_[0-9a-f]{8}_\d+$`)

type stubShippingClient struct {
	lastReq *shopmozo.PushOrderRequest
	calls   int
	id      string
	err     error
}

func (s *stubShippingClient) PushOrder(_ context.Context, req *shopmozo.PushOrderRequest) (string, error) {
	s.lastReq = req
	s.calls++
	return s.id, s.err
}

func newTestAdapter(client ShippingClient) *ShippingAdapter {
	cfg := &config.Config{}
	cfg.Shopmozo.WarehouseID = "43190"
	return NewShippingAdapter(client, cfg, zap.NewNop().Sugar())
}

func testCustomer() types.CustomerSnapshot {
	return types.CustomerSnapshot{
		Name:        "Asha Patel",
		Mobile:      "9876543210",
		Email:       "asha@example.com",
		HouseNumber: "12-B Shanti Nagar",
		Pincode:     "302001",
		City:        "Jaipur",
		State:       "Rajasthan",
	}
}

func TestShippingAdapter_UsesCarrierID(t *testing.T) {
	stub := &stubShippingClient{id: "SMZ987"}
	a := newTestAdapter(stub)

	id := a.CreateOrder(context.Background(), testCustomer(), []types.CartItem{
		{Name: "A2 Ghee 1L", Quantity: 2, UnitPrice: 1500},
	}, "2026-08-29")

	require.Equal(t, "SMZ987", id)
	require.NotNil(t, stub.lastReq)
	require.Equal(t, "PREPAID", stub.lastReq.PaymentType)
	require.Equal(t, "43190", stub.lastReq.WarehouseID)
	require.Equal(t, "Asha Patel", stub.lastReq.ConsigneeName)
	require.Len(t, stub.lastReq.ProductDetail, 1)
	// missing catalog fields fall back to ghee defaults
	require.Equal(t, "SKU001", stub.lastReq.ProductDetail[0].SKUNumber)
	require.Equal(t, "Ghee", stub.lastReq.ProductDetail[0].ProductCategory)
	require.Equal(t, "17021190", stub.lastReq.ProductDetail[0].HSN)
}

func TestShippingAdapter_FallbackOnCarrierFailure(t *testing.T) {
	stub := &stubShippingClient{err: errors.New("carrier down")}
	a := newTestAdapter(stub)

	id := a.CreateOrder(context.Background(), testCustomer(), []types.CartItem{
		{Name: "A2 Ghee 1L", Quantity: 1, UnitPrice: 1500},
	}, "2026-08-29")

	require.Regexp(t, localIDPattern, id)
}

func TestShippingAdapter_EmptyCartSkipsCarrier(t *testing.T) {
	stub := &stubShippingClient{id: "SMZ987"}
	a := newTestAdapter(stub)

	id := a.CreateOrder(context.Background(), testCustomer(), nil, "2026-08-29")

	require.Regexp(t, localIDPattern, id)
	require.Nil(t, stub.lastReq)
}
