// Package context carries the state shared by all listdiff commands through
// the command context.
package context

import (
	"context"

	v1 "pagedlist.dev/listdiff/cli/configuration/v1"
)

type configKey struct{}

// WithConfig stores the loaded configuration in ctx.
func WithConfig(ctx context.Context, cfg *v1.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// Config returns the configuration stored in ctx. It never returns nil.
func Config(ctx context.Context) *v1.Config {
	if cfg, ok := ctx.Value(configKey{}).(*v1.Config); ok && cfg != nil {
		return cfg
	}
	return &v1.Config{}
}
