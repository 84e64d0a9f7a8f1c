package filter

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealmFilter(t *testing.T) {
	type record struct {
		level slog.Level
		realm string
		msg   string
	}
	tests := []struct {
		name     string
		filters  []string
		records  []record
		expected []string
		filtered []string
	}{
		{
			name:    "diff=WARN drops info records of realm diff",
			filters: []string{"diff=WARN"},
			records: []record{
				{level: slog.LevelInfo, realm: "diff", msg: "diff info"},
				{level: slog.LevelWarn, realm: "diff", msg: "diff warn"},
				{level: slog.LevelInfo, realm: "cli", msg: "cli info"},
				{level: slog.LevelInfo, msg: "no realm"},
			},
			expected: []string{"diff warn", "cli info", "no realm"},
			filtered: []string{"diff info"},
		},
		{
			name:    "multiple realms",
			filters: []string{"diff=ERROR", "snapshot=warn"},
			records: []record{
				{level: slog.LevelWarn, realm: "diff", msg: "diff warn"},
				{level: slog.LevelError, realm: "diff", msg: "diff error"},
				{level: slog.LevelDebug, realm: "snapshot", msg: "snapshot debug"},
				{level: slog.LevelWarn, realm: "snapshot", msg: "snapshot warn"},
			},
			expected: []string{"diff error", "snapshot warn"},
			filtered: []string{"diff warn", "snapshot debug"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			levels, err := ParseRealmLevels(tt.filters...)
			require.NoError(t, err)
			logger := slog.New(New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}), levels))
			for _, r := range tt.records {
				if r.realm == "" {
					logger.Log(context.Background(), r.level, r.msg)
					continue
				}
				logger.Log(context.Background(), r.level, r.msg, LoggingKeyRealm, r.realm)
			}
			for _, msg := range tt.expected {
				assert.Contains(t, buf.String(), msg)
			}
			for _, msg := range tt.filtered {
				assert.NotContains(t, buf.String(), msg)
			}
		})
	}
}

func TestRealmFilterWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	levels, err := ParseRealmLevels("diff=warn")
	require.NoError(t, err)
	logger := slog.New(New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}), levels)).
		With(LoggingKeyRealm, "diff").
		WithGroup("details")

	logger.Info("dropped")
	logger.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestNewWithoutLevelsReturnsHandler(t *testing.T) {
	h := slog.NewTextHandler(&bytes.Buffer{}, nil)
	assert.Same(t, h, New(h, nil))
}

func TestParseRealmLevels(t *testing.T) {
	levels, err := ParseRealmLevels("diff=debug", "cli=ERROR")
	require.NoError(t, err)
	assert.Equal(t, map[string]slog.Level{"diff": slog.LevelDebug, "cli": slog.LevelError}, levels)

	_, err = ParseRealmLevels("diff")
	assert.ErrorContains(t, err, "expected realm=level")
	_, err = ParseRealmLevels("=info")
	assert.Error(t, err)
	_, err = ParseRealmLevels("diff=loud")
	assert.ErrorContains(t, err, "invalid log level")
}
