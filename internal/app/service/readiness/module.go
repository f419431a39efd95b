package readiness

import "go.uber.org/fx"

// Module exposes the readiness service via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
)
