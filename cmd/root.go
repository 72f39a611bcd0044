// Package cmd provides the command-line interface for webref.
//
// Configuration System:
//
//	Settings come from several sources with clear precedence:
//	1. Command-line flags (--config, --port, --catalog, etc.) - highest priority
//	2. WEBREF_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (WEBREF_SERVER_PORT, etc.)
//	4. Configuration file (.webref.yml) - lowest priority
//
// Environment Variables:
//
//	WEBREF_CONFIG_FILE: Path to custom configuration file
//	WEBREF_SERVER_PORT: Override server port
//	WEBREF_CATALOG_FILE: Catalog overlay file
//	WEBREF_PREVIEW_HIGHLIGHT_STYLE: Chroma style for examples
//	And the rest following the WEBREF_<SECTION>_<OPTION> pattern
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/conneroisu/webref/internal/catalog"
	"github.com/conneroisu/webref/internal/config"
	"github.com/conneroisu/webref/internal/errors"
	"github.com/conneroisu/webref/internal/logging"
)

// defaultConfigName is the file searched for in the working directory.
const defaultConfigName = ".webref"

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "webref",
	Short: "A browsable HTML and CSS reference with live property previews",
	Long: `webref serves a two-tab reference of HTML tags and CSS properties.
Every entry has a highlighted example and, for CSS properties, a live preview
scene chosen from the property name.

Quick Start:
  webref serve                    Start the reference browser
  webref list css --search grid   Search a table from the terminal
  webref show html div            Show one entry
  webref preview justify-content  Show which preview scene a property gets
  webref export dist              Write a static copy of the site

Documentation: https://github.com/conneroisu/webref`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .webref.yml, can also use WEBREF_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")
	rootCmd.PersistentFlags().String("catalog", "", "catalog overlay file (YAML)")

	bindFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	bindFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
	bindFlag("catalog.file", rootCmd.PersistentFlags().Lookup("catalog"))
}

type flagBinding struct {
	key  string
	flag *pflag.Flag
}

var flagBindings []flagBinding

// bindFlag binds a flag to a config key. Bindings are recorded so they can
// be restored after viper.Reset.
func bindFlag(key string, flag *pflag.Flag) {
	flagBindings = append(flagBindings, flagBinding{key: key, flag: flag})
	_ = viper.BindPFlag(key, flag)
}

func rebindFlags() {
	for _, b := range flagBindings {
		_ = viper.BindPFlag(b.key, b.flag)
	}
}

// initConfig selects the configuration file and enables WEBREF_ environment
// overrides. A missing file is not an error.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("WEBREF_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(defaultConfigName)
	}

	viper.SetEnvPrefix("WEBREF")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig loads the configuration and attaches suggestions on failure.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		path := viper.ConfigFileUsed()
		if path == "" {
			path = defaultConfigName + ".yml"
		}
		return nil, errors.NewEnhancedError("Failed to load configuration", err, errors.ConfigError(err.Error(), path))
	}
	return cfg, nil
}

// newLogger builds the process logger from the log section.
func newLogger(cfg *config.Config, w io.Writer) logging.Logger {
	return logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
		Output: w,
	})
}

// loadCatalog returns the built-in catalog with the configured overlay applied.
func loadCatalog(ctx context.Context, cfg *config.Config, logger logging.Logger) (*catalog.Catalog, error) {
	cat := catalog.Default()
	if cfg.Catalog.File == "" {
		return cat, nil
	}

	if err := cat.LoadFile(cfg.Catalog.File, cfg.Catalog.Mode); err != nil {
		return nil, errors.NewIOError(errors.ErrCodeCatalogLoad, "failed to load catalog overlay", err).
			WithFile(cfg.Catalog.File)
	}
	logger.Info(ctx, "Catalog overlay loaded",
		"file", cfg.Catalog.File,
		"mode", cfg.Catalog.Mode,
		"html", cat.Count(catalog.KindTag),
		"css", cat.Count(catalog.KindProperty))
	return cat, nil
}

// parseKind resolves a kind argument, suggesting the valid spellings.
func parseKind(arg string) (catalog.Kind, error) {
	kind, ok := catalog.ParseKind(arg)
	if !ok {
		return "", errors.NewEnhancedError(fmt.Sprintf("Unknown kind %q", arg), errors.ErrUnknownKind(arg), []errors.ErrorSuggestion{
			{Title: "Use html or css", Description: "html lists tags, css lists properties", Command: "webref list css"},
		})
	}
	return kind, nil
}
