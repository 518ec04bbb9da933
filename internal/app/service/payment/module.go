package payment

import (
	"go.uber.org/fx"

	"github.com/gauswarn/storefront/internal/platform/razorpay"
	"github.com/gauswarn/storefront/internal/platform/shopmozo"
	"github.com/gauswarn/storefront/internal/platform/whatsapp"
)

// Module wires the platform clients to the narrow interfaces the core uses.
var Module = fx.Options(
	fx.Provide(razorpay.NewClient),
	fx.Provide(shopmozo.NewClient),
	fx.Provide(whatsapp.NewClient),
	fx.Provide(func(c *razorpay.Client) ProviderClient { return c }),
	fx.Provide(func(c *shopmozo.Client) ShippingClient { return c }),
	fx.Provide(func(c *whatsapp.Client) MessagingClient { return c }),
	fx.Provide(NewShippingAdapter),
	fx.Provide(NewNotifier),
	fx.Provide(NewService),
)
