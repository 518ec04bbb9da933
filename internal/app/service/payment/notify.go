package payment

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/gauswarn/storefront/pkg/logctx"
)

// Notifier sends the order-confirmation message. Strictly best-effort:
// failures are logged and swallowed, never retried, never surfaced.
type Notifier struct {
	client MessagingClient
	log    *zap.SugaredLogger
}

func NewNotifier(client MessagingClient, log *zap.SugaredLogger) *Notifier {
	return &Notifier{client: client, log: log}
}

func (n *Notifier) OrderConfirmed(ctx context.Context, mobile, orderID string, amount float64) {
	text := fmt.Sprintf(
		"Thank you for your order! Order ID: %s, Amount: ₹%.2f. Your Gauswarn Ghee order has been confirmed.",
		orderID, amount,
	)
	if err := n.client.Send(ctx, mobile, text); err != nil {
		logctx.FromCtx(ctx, n.log).Warnw("whatsapp notification failed", "order_id", orderID, "error", err.Error())
	}
}
