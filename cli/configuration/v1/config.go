// Package v1 holds the configuration file format of the listdiff command line client.
//
//	type: listdiff.config.pagedlist.dev/v1
//	identityKeys: [id]
//	detectMoves: true
//	output: table
//	logging:
//	  diff: debug
package v1

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

const (
	ConfigType   = "listdiff.config.pagedlist.dev"
	ConfigTypeV1 = "v1"

	ConfigFlag = "config"
)

var ErrUnsupportedType = errors.New("unsupported configuration type")

// Config supplies defaults for flags that are not set explicitly.
type Config struct {
	Type string `json:"type"`
	// IdentityKeys are the entity attributes that make up an entity's identity.
	IdentityKeys []string `json:"identityKeys,omitempty"`
	// DetectMoves toggles move detection, nil keeps the default.
	DetectMoves *bool `json:"detectMoves,omitempty"`
	// Output is the default output format.
	Output string `json:"output,omitempty"`
	// Logging maps realms to their minimum log level.
	Logging map[string]string `json:"logging,omitempty"`
}

func RegisterConfigFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().String(ConfigFlag, "", "path to a listdiff configuration file")
}

// GetConfigForCommand loads the file given by the config flag.
// It returns nil if the flag is not set.
func GetConfigForCommand(cmd *cobra.Command) (*Config, error) {
	path, err := cmd.Flags().GetString(ConfigFlag)
	if err != nil {
		return nil, fmt.Errorf("getting config flag failed: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	return Load(path)
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading configuration failed: %w", err)
	}
	cfg, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("loading configuration from %s failed: %w", path, err)
	}
	return cfg, nil
}

// Decode parses a configuration in YAML or JSON. Unknown fields are rejected.
func Decode(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("decoding configuration failed: %w", err)
	}
	switch cfg.Type {
	case ConfigType, ConfigType + "/" + ConfigTypeV1:
	default:
		return nil, fmt.Errorf("%q: %w", cfg.Type, ErrUnsupportedType)
	}
	return cfg, nil
}
