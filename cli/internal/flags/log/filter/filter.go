// Package filter drops log records whose realm has a higher minimum level than
// the record. Libraries in this repository tag their records with a realm
// attribute, e.g. realm=diff.
package filter

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// LoggingKeyRealm is the attribute key identifying the realm of a record.
const LoggingKeyRealm = "realm"

type realmFilter struct {
	handler slog.Handler
	levels  map[string]slog.Level
	// realm set through WithAttrs, takes precedence over record attributes
	preset string
}

// New wraps handler so that records of a realm listed in levels are only passed
// on if their level is at least the realm's level.
func New(handler slog.Handler, levels map[string]slog.Level) slog.Handler {
	if len(levels) == 0 {
		return handler
	}
	return &realmFilter{handler: handler, levels: levels}
}

func (f *realmFilter) Enabled(ctx context.Context, level slog.Level) bool {
	return f.handler.Enabled(ctx, level)
}

func (f *realmFilter) Handle(ctx context.Context, record slog.Record) error {
	realm := f.preset
	if realm == "" {
		record.Attrs(func(attr slog.Attr) bool {
			if attr.Key == LoggingKeyRealm {
				realm = attr.Value.String()
				return false
			}
			return true
		})
	}
	if minLevel, ok := f.levels[realm]; ok && record.Level < minLevel {
		return nil
	}
	return f.handler.Handle(ctx, record)
}

func (f *realmFilter) WithAttrs(attrs []slog.Attr) slog.Handler {
	preset := f.preset
	if preset == "" {
		for _, attr := range attrs {
			if attr.Key == LoggingKeyRealm {
				preset = attr.Value.String()
				break
			}
		}
	}
	return &realmFilter{handler: f.handler.WithAttrs(attrs), levels: f.levels, preset: preset}
}

func (f *realmFilter) WithGroup(name string) slog.Handler {
	return &realmFilter{handler: f.handler.WithGroup(name), levels: f.levels, preset: f.preset}
}

// ParseRealmLevels parses "realm=level" pairs, e.g. "diff=debug".
func ParseRealmLevels(raw ...string) (map[string]slog.Level, error) {
	levels := make(map[string]slog.Level, len(raw))
	for _, entry := range raw {
		realm, levelStr, found := strings.Cut(entry, "=")
		if !found || realm == "" {
			return nil, fmt.Errorf("invalid realm filter %q, expected realm=level", entry)
		}
		var level slog.Level
		if err := level.UnmarshalText([]byte(levelStr)); err != nil {
			return nil, fmt.Errorf("invalid log level in realm filter %q: %w", entry, err)
		}
		levels[realm] = level
	}
	return levels, nil
}
