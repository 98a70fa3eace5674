package cmd

import "go.uber.org/fx"

var Module = fx.Module("cli",
	fx.Provide(
		func() Opener { return OpenWarehouse },
		fx.Annotate(setup, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(refresh, fx.ResultTags(`group:"commands"`)),
	),
	fx.Invoke(Run),
)
