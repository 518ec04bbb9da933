package paymentlog

import "go.uber.org/fx"

// Module exposes the callback audit log service via Fx.
var Module = fx.Options(
	fx.Provide(New),
)
