package main

import (
	"fmt"
	"log/slog"
	"os"

	theme "github.com/dangdungcntt/go-theme"
	"github.com/spf13/cobra"
)

const appName = "themer"

var (
	flagConfig    string
	flagRoot      string
	flagTheme     string
	flagCache     bool
	flagCachePath string
	flagBaseURL   string
	flagLogLevel  string
)

var rootCmd = &cobra.Command{
	Use:           appName,
	Short:         "Render themed templates",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "YAML config file")
	pf.StringVar(&flagRoot, "root", "", "themes root directory")
	pf.StringVar(&flagTheme, "theme", "", "active theme")
	pf.BoolVar(&flagCache, "cache", false, "mirror templates into the cache directory")
	pf.StringVar(&flagCachePath, "cache-path", "", "cache directory (default <tmp>/themeengine_cache)")
	pf.StringVar(&flagBaseURL, "base-url", "", "base URL for asset links")
	pf.StringVar(&flagLogLevel, "log-level", "", "debug, info, warn or error")

	rootCmd.AddCommand(renderCmd, serveCmd)
}

// loadConfig merges the config file with flags set on the command line.
func loadConfig(cmd *cobra.Command) (theme.Config, error) {
	cfg, err := theme.LoadConfig(flagConfig)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("root") {
		cfg.ThemesRoot = flagRoot
	}
	if flags.Changed("theme") {
		cfg.Theme = flagTheme
	}
	if flags.Changed("cache") {
		cfg.Cache = flagCache
	}
	if flags.Changed("cache-path") {
		cfg.CachePath = flagCachePath
	}
	if flags.Changed("base-url") {
		cfg.BaseURL = flagBaseURL
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	return cfg, nil
}

func newEngine(cfg theme.Config) (*theme.Engine, *slog.Logger) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	e := theme.New(cfg.ThemesRoot, cfg.Theme, cfg.Options(logger)...)
	if cfg.Cache && !e.CacheAvailable() {
		logger.Warn("rendering without cache")
	}
	return e, logger
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
