package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/borderize"
)

const defaultConfigFile = ".borderize.yaml"

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigFile
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set)
	fs := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(fs, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (BORDERIZE_* prefix)
	if err := k.Load(env.Provider("BORDERIZE_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable to a config key. The first underscore
// separates the section, the rest become dashes:
//
//	BORDERIZE_OUTPUT_CSS_FNAME -> output.css-fname
//	BORDERIZE_COLORS_SEED      -> colors.seed
//	BORDERIZE_VERBOSE          -> verbose
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "BORDERIZE_"))
	section, rest, found := strings.Cut(key, "_")
	if !found {
		return key
	}
	return section + "." + strings.ReplaceAll(rest, "_", "-")
}

// buildConfig constructs the library's Config struct from koanf state.
func buildConfig(input string) borderize.Config {
	return borderize.Config{
		SourceDir:    getStringWithFallback("src-dir", "input.src-dir", ""),
		DestDir:      getStringWithFallback("dest-dir", "output.dest-dir", ""),
		Input:        input,
		OutputName:   getStringWithFallback("css-fname", "output.css-fname", borderize.DefaultOutputName),
		NoAttributes: getBoolWithFallback("no-attributes", "labels.no-attributes", false),
		Only:         getStringsWithFallback("only", "labels.only", nil),
		Exclude:      getStringsWithFallback("exclude", "labels.exclude", nil),
		IgnoreTags:   getStringsWithFallback("ignore-tags", "labels.ignore-tags", nil),
		Scope:        getStringWithFallback("scope", "input.scope", ""),
		Parser:       getStringWithFallback("parser", "input.parser", "lenient"),
		Encoding:     getStringWithFallback("encoding", "input.encoding", "utf-8"),
		Format:       getStringWithFallback("format", "output.format", "css"),
		Palette:      getStringsWithFallback("palette", "colors.palette", nil),
		Seed:         getUint64WithFallback("seed", "colors.seed", 0),
		KeepColors:   getBoolWithFallback("keep-colors", "colors.keep", false),
		Verbose:      getBoolWithFallback("verbose", "verbose", false),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getUint64WithFallback checks the flag key first, then the config file key, then returns the default.
// Values that are not valid unsigned integers fall through to the next source.
func getUint64WithFallback(flagKey, configKey string, defaultVal uint64) uint64 {
	for _, key := range []string{flagKey, configKey} {
		if v, ok := uint64Value(k.Get(key)); ok {
			return v
		}
	}
	return defaultVal
}

// uint64Value converts a koanf value without going through int64, so seeds
// above math.MaxInt64 survive. Flags arrive as uint64, env vars as strings
// and YAML numbers as int or uint64.
func uint64Value(v interface{}) (uint64, bool) {
	switch n := v.(type) {
	case uint64:
		return n, true
	case uint:
		return uint64(n), true
	case int:
		return uint64(n), n >= 0
	case int64:
		return uint64(n), n >= 0
	case float64:
		return uint64(n), n >= 0 && n == math.Trunc(n)
	case string:
		u, err := strconv.ParseUint(strings.TrimSpace(n), 10, 64)
		return u, err == nil
	}
	return 0, false
}

// getStringsWithFallback checks the flag key first, then the config file key, then returns the default.
// A plain string value (as set through the environment) is split on commas.
func getStringsWithFallback(flagKey, configKey string, defaultVal []string) []string {
	for _, key := range []string{flagKey, configKey} {
		if !k.Exists(key) {
			continue
		}
		if v, ok := k.Get(key).(string); ok {
			return splitList(v)
		}
		return k.Strings(key)
	}
	return defaultVal
}

// splitList splits a comma-separated value into trimmed, non-empty items
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
