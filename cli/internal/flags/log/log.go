// Package log wires the logging flags of the command line client.
package log

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"pagedlist.dev/listdiff/cli/internal/flags/enum"
	"pagedlist.dev/listdiff/cli/internal/flags/log/filter"
)

const (
	LevelFlag  = "loglevel"
	FormatFlag = "logformat"
	FilterFlag = "logfilter"

	FormatText = "text"
	FormatJSON = "json"
)

func RegisterLoggingFlags(flags *pflag.FlagSet) {
	enum.Var(flags, LevelFlag, []string{"warn", "debug", "info", "error"}, "set the log level")
	enum.Var(flags, FormatFlag, []string{FormatText, FormatJSON}, "set the log format")
	flags.StringSlice(FilterFlag, nil, `minimum log level per realm, e.g. "diff=debug"`)
}

// GetBaseLogger builds the logger configured through the logging flags.
// Logs go to the error stream of the command so that they never mix with its output.
// realmLevels are applied before the levels given by flag.
func GetBaseLogger(cmd *cobra.Command, realmLevels map[string]string) (*slog.Logger, error) {
	level, err := GetLoggerLevel(cmd)
	if err != nil {
		return nil, err
	}

	format, err := enum.Get(cmd.Flags(), FormatFlag)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch format {
	case FormatJSON:
		handler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	case FormatText:
		handler = slog.NewTextHandler(cmd.ErrOrStderr(), opts)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	raw := make([]string, 0, len(realmLevels))
	for realm, lvl := range realmLevels {
		raw = append(raw, realm+"="+lvl)
	}
	fromFlag, err := cmd.Flags().GetStringSlice(FilterFlag)
	if err != nil {
		return nil, err
	}
	levels, err := filter.ParseRealmLevels(append(raw, fromFlag...)...)
	if err != nil {
		return nil, err
	}

	return slog.New(filter.New(handler, levels)), nil
}

func GetLoggerLevel(cmd *cobra.Command) (slog.Level, error) {
	logLevel, err := enum.Get(cmd.Flags(), LevelFlag)
	if err != nil {
		return slog.LevelWarn, err
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return slog.LevelWarn, fmt.Errorf("invalid log level: %s", logLevel)
	}
	return level, nil
}
