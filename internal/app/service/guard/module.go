package guard

import "go.uber.org/fx"

// Module exposes the guard service via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
)
