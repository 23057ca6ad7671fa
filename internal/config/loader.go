package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix used by all isospec settings.
const envPrefix = "ISOSPEC"

// newViper builds a pre-configured Viper instance: YAML file type, the
// ISOSPEC_ env prefix, automatic env binding, and a key replacer mapping
// "." to "_" so nested keys like "generator.tab_size" resolve to
// ISOSPEC_GENERATOR_TAB_SIZE.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// Unmarshal only sees keys viper already knows about, so every nested
	// key is bound explicitly for its environment override to apply.
	for _, key := range []string{
		"generator.tab_size", "generator.hash_size", "generator.delta",
		"server.addr", "log.level", "log.format",
	} {
		_ = v.BindEnv(key)
	}
	return v
}

// Load reads the YAML file at configPath, merges any ISOSPEC_* environment
// overrides, applies defaults for unset fields, and validates the result.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}
	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config entirely from ISOSPEC_* environment variables
// and defaults, with no config file required — the preferred strategy when
// running isospec serve in a container.
func LoadFromEnv() (*Config, error) {
	v := newViper()
	return unmarshalAndFinalize(v)
}

func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return cfg, nil
}
