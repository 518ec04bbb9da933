package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubMessagingClient struct {
	mobile string
	text   string
	calls  int
	err    error
}

func (s *stubMessagingClient) Send(_ context.Context, mobile, text string) error {
	s.mobile = mobile
	s.text = text
	s.calls++
	return s.err
}

func TestNotifier_OrderConfirmedMessage(t *testing.T) {
	stub := &stubMessagingClient{}
	n := NewNotifier(stub, zap.NewNop().Sugar())

	n.OrderConfirmed(context.Background(), "9876543210", "SMZ123", 1500)

	require.Equal(t, "9876543210", stub.mobile)
	require.Contains(t, stub.text, "Order ID: SMZ123")
	require.Contains(t, stub.text, "₹1500.00")
}

func TestNotifier_SwallowsSendErrors(t *testing.T) {
	stub := &stubMessagingClient{err: errors.New("gateway down")}
	n := NewNotifier(stub, zap.NewNop().Sugar())

	// must not panic or propagate
	n.OrderConfirmed(context.Background(), "9876543210", "SMZ123", 1500)
	require.Equal(t, "9876543210", stub.mobile)
}
