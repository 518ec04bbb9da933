package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/gauswarn/storefront/internal/models"
	"github.com/gauswarn/storefront/internal/platform/razorpay"
	"github.com/gauswarn/storefront/pkg/config"
	types "github.com/gauswarn/storefront/pkg/types"
)

type stubProvider struct {
	sigOK    bool
	payment  *razorpay.Payment
	fetchErr error
}

func (p *stubProvider) CreateOrder(_ context.Context, _ *razorpay.CreateOrderRequest) (*razorpay.Order, error) {
	panic("not used")
}

func (p *stubProvider) FetchPayment(_ context.Context, _ string) (*razorpay.Payment, error) {
	return p.payment, p.fetchErr
}

func (p *stubProvider) VerifySignature(_, _, _ string) bool { return p.sigOK }

type stubPendingStore struct {
	row         *models.PendingPayment
	loadErr     error
	updates     map[string]any
	updateCalls int
}

func (s *stubPendingStore) Create(_ context.Context, _ *models.PendingPayment) error { return nil }

func (s *stubPendingStore) Load(_ context.Context, _ int64) (*models.PendingPayment, error) {
	return s.row, s.loadErr
}

func (s *stubPendingStore) Update(_ context.Context, _ int64, updates map[string]any) error {
	s.updateCalls++
	s.updates = updates
	return nil
}

type stubCallbackLog struct {
	entries []*models.PaymentCallbackLog
}

func (s *stubCallbackLog) Save(_ context.Context, entry *models.PaymentCallbackLog) {
	s.entries = append(s.entries, entry)
}

func newTestService(provider ProviderClient) *Service {
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test_jwt_secret"
	mgr := NewService(cfg, zap.NewNop().Sugar(), nil, provider, nil, nil, nil)
	return mgr.(*Service)
}

func newVerifyService(provider ProviderClient, rows pendingStore, ship ShippingClient, msg MessagingClient) *Service {
	cfg := &config.Config{}
	cfg.Shopmozo.WarehouseID = "43190"
	log := zap.NewNop().Sugar()
	return &Service{
		cfg:      cfg,
		log:      log,
		rows:     rows,
		provider: provider,
		shipping: NewShippingAdapter(ship, cfg, log),
		notifier: NewNotifier(msg, log),
		events:   &stubCallbackLog{},
	}
}

func capturedPayment() *razorpay.Payment {
	return &razorpay.Payment{
		ID: "pay_1", OrderID: "order_1", Amount: 150000, Status: "captured", Captured: true,
	}
}

func TestVerify_MissingParams(t *testing.T) {
	s := newTestService(&stubProvider{sigOK: true})

	for _, in := range []*VerifyInput{
		{PaymentID: "pay_1", Signature: "sig"},
		{OrderID: "order_1", Signature: "sig"},
		{OrderID: "order_1", PaymentID: "pay_1"},
	} {
		_, err := s.Verify(context.Background(), in)
		require.ErrorIs(t, err, ErrMissingParams)
	}
}

func TestVerify_RejectsBadSignature(t *testing.T) {
	s := newTestService(&stubProvider{sigOK: false})

	_, err := s.Verify(context.Background(), &VerifyInput{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: "forged",
	})
	require.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerify_CapturedStoresShippingOrderAndNotifies(t *testing.T) {
	cart := []types.CartItem{{Name: "A2 Ghee 1L", Quantity: 1, UnitPrice: 1500}}
	rows := &stubPendingStore{row: &models.PendingPayment{
		ID:           42,
		Name:         "Asha Patel",
		Mobile:       "9876543210",
		Status:       models.PaymentStatusPending,
		CartSnapshot: datatypes.NewJSONType(cart),
	}}
	ship := &stubShippingClient{id: "SMZ123"}
	msg := &stubMessagingClient{}
	s := newVerifyService(&stubProvider{sigOK: true, payment: capturedPayment()}, rows, ship, msg)

	res, err := s.Verify(context.Background(), &VerifyInput{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: "sig",
		Notes:     CallbackNotes{RowID: "42", Mobile: "9876543210"},
	})
	require.NoError(t, err)
	require.True(t, res.Paid)
	require.Equal(t, models.PaymentStatusCaptured, res.PaymentStatus)
	require.NotNil(t, res.ShippingOrderID)
	require.Equal(t, "SMZ123", *res.ShippingOrderID)

	require.Equal(t, 1, rows.updateCalls)
	require.Equal(t, true, rows.updates["is_payment_paid"])
	require.Equal(t, models.PaymentStatusCaptured, rows.updates["status"])
	require.Equal(t, "pay_1", rows.updates["razorpay_payment_id"])
	require.Equal(t, res.ShippingOrderID, rows.updates["shopmozo_order_id"])

	require.Equal(t, 1, ship.calls)
	require.Equal(t, 1, msg.calls)
	require.Contains(t, msg.text, "SMZ123")
}

func TestVerify_ReplayReusesShippingOrder(t *testing.T) {
	existing := "SMZ123"
	rows := &stubPendingStore{row: &models.PendingPayment{
		ID:              42,
		IsPaid:          true,
		Status:          models.PaymentStatusCaptured,
		ShippingOrderID: &existing,
	}}
	ship := &stubShippingClient{id: "SMZ999"}
	msg := &stubMessagingClient{}
	s := newVerifyService(&stubProvider{sigOK: true, payment: capturedPayment()}, rows, ship, msg)

	res, err := s.Verify(context.Background(), &VerifyInput{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: "sig",
		Notes:     CallbackNotes{RowID: "42", Mobile: "9876543210"},
	})
	require.NoError(t, err)
	require.True(t, res.Paid)
	require.NotNil(t, res.ShippingOrderID)
	require.Equal(t, "SMZ123", *res.ShippingOrderID)

	// already reconciled: no second shipping order, no second message, no write
	require.Equal(t, 0, ship.calls)
	require.Equal(t, 0, msg.calls)
	require.Equal(t, 0, rows.updateCalls)
}

func TestVerify_NotCapturedSkipsSideEffects(t *testing.T) {
	rows := &stubPendingStore{}
	ship := &stubShippingClient{id: "SMZ999"}
	msg := &stubMessagingClient{}
	s := newVerifyService(&stubProvider{sigOK: true, payment: &razorpay.Payment{
		ID: "pay_1", OrderID: "order_1", Amount: 150000, Status: models.PaymentStatusFailed,
	}}, rows, ship, msg)

	res, err := s.Verify(context.Background(), &VerifyInput{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: "sig",
		Notes:     CallbackNotes{RowID: "42", Mobile: "9876543210"},
	})
	require.NoError(t, err)
	require.False(t, res.Paid)
	require.Nil(t, res.ShippingOrderID)

	require.Equal(t, 1, rows.updateCalls)
	require.Equal(t, false, rows.updates["is_payment_paid"])
	require.Equal(t, 0, ship.calls)
	require.Equal(t, 0, msg.calls)
}

func TestStatus_MapsFetchErrorToNotFound(t *testing.T) {
	s := newTestService(&stubProvider{fetchErr: errors.New("status 400")})

	_, err := s.Status(context.Background(), "pay_missing")
	require.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestStatus_ReturnsMajorUnits(t *testing.T) {
	s := newTestService(&stubProvider{payment: &razorpay.Payment{
		ID: "pay_1", Amount: 150000, Status: "captured", OrderID: "order_1", Captured: true,
	}})

	res, err := s.Status(context.Background(), "pay_1")
	require.NoError(t, err)
	require.Equal(t, "captured", res.PaymentStatus)
	require.Equal(t, float64(1500), res.Amount)
	require.True(t, res.Captured)
}
