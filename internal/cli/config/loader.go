package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config file names probed in the working directory.
const (
	ConfigFileName    = "cmdbmap.yaml"
	ConfigFileNameAlt = "cmdbmap.yml"
)

// envPrefix namespaces the environment variables (CMDBMAP_DATA_DIR etc.).
const envPrefix = "CMDBMAP_"

// Load builds the configuration. cfgFile may be empty, in which case the
// default file names are probed and a missing file is fine. flags may be
// nil; when set, explicitly changed flags override everything else.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, string, error) {
	k := koanf.New(".")

	defaults := map[string]any{
		"data_dir":  DefaultDataDir,
		"max_paths": 0, // 0 = pathfind defaults, applied below
		"max_len":   0,
		"output":    DefaultOutput,
		"verbose":   false,
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, "", fmt.Errorf("failed to load defaults: %w", err)
	}

	fileUsed := findConfigFile(cfgFile)
	if cfgFile != "" && fileUsed == "" {
		return nil, "", fmt.Errorf("config file not found: %s", cfgFile)
	}
	if fileUsed != "" {
		if err := k.Load(file.Provider(fileUsed), yaml.Parser()); err != nil {
			return nil, "", fmt.Errorf("failed to read config file %s: %w", fileUsed, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envToKey), nil); err != nil {
		return nil, "", fmt.Errorf("failed to load environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only explicitly set flags override lower layers.
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, "", fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, "", fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	return &cfg, fileUsed, nil
}

// findConfigFile resolves the config file path. An explicit path wins;
// otherwise the default names are probed.
func findConfigFile(explicit string) string {
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit
		}
		return ""
	}
	for _, name := range []string{ConfigFileName, ConfigFileNameAlt} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// envToKey maps CMDBMAP_DATA_DIR to data_dir.
func envToKey(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, envPrefix))
}
