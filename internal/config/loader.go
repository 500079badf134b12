package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	"github.com/ukaji3/dbsources-go/internal/logging"
	"github.com/ukaji3/dbsources-go/pkg/dbsources"
)

// flagKeys maps CLI flag names to config keys where they differ.
var flagKeys = map[string]string{
	"port":          "ui.port",
	"max-upload-mb": "ui.max_upload_mb",
	"preview-limit": "ui.preview_limit",
}

// findConfigFile finds the config file to use.
// Priority: explicit path > dbsources.yaml > dbsources.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"dbsources.yaml", "dbsources.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load loads configuration from file, environment variables, and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
// It returns the config file used, if any.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, string, error) {
	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"sheet":            dbsources.DefaultSheet,
		"column":           dbsources.DefaultColumn,
		"marker":           dbsources.DefaultMarker,
		"format":           DefaultFormat,
		"include_views":    true,
		"log_level":        DefaultLogLevel,
		"verbose":          false,
		"ui.port":          DefaultPort,
		"ui.max_upload_mb": DefaultMaxUploadMB,
		"ui.preview_limit": DefaultPreviewLimit,
	}, "."), nil); err != nil {
		return nil, "", fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	configFileUsed := findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, "", fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// 3. Environment variables: DBSOURCES_UI__PORT -> ui.port
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, "", fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags (only those explicitly set)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			if f.Name == "no-views" {
				noViews, _ := flags.GetBool("no-views")
				return "include_views", !noViews
			}
			if key, ok := flagKeys[f.Name]; ok {
				return key, posflag.FlagVal(flags, f)
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, "", fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, "", fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, configFileUsed, nil
}

// Level returns the effective log level; Verbose forces debug.
func (c *Config) Level() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	level, _ := logging.ParseLevel(c.LogLevel)
	return level
}
