package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/styled/internal/catalog"
	"github.com/yacobolo/styled/internal/logger"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".styled.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// Only flags set on the command line; defaults live in the build functions.
	flags := cmd.Flags()
	provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("STYLED_", ".", func(s string) string {
		// STYLED_RENDER_ROOT -> render.root
		// STYLED_LOG_LEVEL -> log.level
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "STYLED_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// renderConfig is the resolved configuration of the render command.
type renderConfig struct {
	Root       string
	Include    []string
	Components []string
	CustomTags []string
	CSS        bool
	Stats      bool
	StatsTop   int
	HashTags   bool
	Format     string
	Quiet      bool
	Color      bool
	LogLevel   string
}

func buildRenderConfig() renderConfig {
	return renderConfig{
		Root:       getStringWithFallback("root", "render.root", "."),
		Include:    getStringsWithFallback("include", "render.include", catalog.DefaultPatterns),
		Components: getStringsWithFallback("component", "render.components", nil),
		CustomTags: getStringsWithFallback("tag", "tags", nil),
		CSS:        getBoolWithFallback("css", "render.css", true),
		Stats:      getBoolWithFallback("stats", "render.stats", false),
		StatsTop:   getIntWithFallback("stats-top", "render.stats-top", 5),
		HashTags:   getBoolWithFallback("hash-tags", "render.hash-tags", false),
		Format:     getStringWithFallback("format", "render.format", "text"),
		Quiet:      getBoolWithFallback("quiet", "quiet", false),
		Color:      getBoolWithFallback("color", "color", false),
		LogLevel:   logLevel(),
	}
}

// logLevel resolves the log level; --verbose means debug.
func logLevel() string {
	if getBoolWithFallback("verbose", "verbose", false) {
		return "debug"
	}
	return getStringWithFallback("log-level", "log.level", "warn")
}

func newLogger(level string) (*logger.Logger, error) {
	return logger.New(logger.Options{Level: level, Console: true, Writer: os.Stderr})
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

// getStringsWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringsWithFallback(flagKey, configKey string, defaultVal []string) []string {
	if v := k.Strings(flagKey); len(v) > 0 {
		return v
	}
	if v := k.Strings(configKey); len(v) > 0 {
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

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
