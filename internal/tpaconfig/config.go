// Package tpaconfig loads the library's handful of tunable defaults
// (simplify budget, to_decimal precision) through layered Viper
// defaults, an optional file, and environment variables.
//
// The engine's digit radix is deliberately not part of this surface:
// bigint.SetRadix documents itself as a testing hatch, not a
// production API, since every live Int constructed under the old
// radix is invalidated the moment it's called. Loading a radix from a
// config file would invite calling it at runtime, so there is nothing
// here to load.
package tpaconfig

// Config holds the default values internal/cli seeds its flags from.
// Library callers that embed tpa directly never need this package;
// it exists for cmd/tpa and other first-party entry points.
type Config struct {
	DefaultSimplifyBudgetMS int64 `mapstructure:"default_simplify_budget_ms"`
	DefaultMaxDP            int   `mapstructure:"default_max_dp"`

	configPath string
}

// GetConfigPath returns the file path Config was loaded from, if any.
func (c *Config) GetConfigPath() string { return c.configPath }
