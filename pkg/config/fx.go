package config

import "go.uber.org/fx"

// Module provides the *Loader used by commands to read their config file.
// Commands load the file themselves since its path is a command flag.
var Module = fx.Module("config", fx.Provide(NewLoader))
