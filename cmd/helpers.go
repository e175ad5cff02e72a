package cmd

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sxsun/folio/internal/article"
	"github.com/sxsun/folio/internal/catalog"
	"github.com/sxsun/folio/internal/config"
)

// debugLogFile receives logs of interactive commands run with --verbose.
const debugLogFile = "folio-debug.log"

var logLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)

// buildLogger creates the process logger. Interactive commands get a nop
// logger unless verbose, and then write to debugLogFile so the terminal UI
// stays intact.
func buildLogger(interactive, verbose bool) (*zap.Logger, error) {
	if interactive && !verbose {
		return zap.NewNop(), nil
	}
	zcfg := zap.NewProductionConfig()
	if verbose {
		logLevel.SetLevel(zapcore.DebugLevel)
	}
	zcfg.Level = logLevel
	if interactive {
		zcfg.OutputPaths = []string{debugLogFile}
		zcfg.ErrorOutputPaths = []string{debugLogFile}
	}
	return zcfg.Build()
}

// loadConfig loads and validates the config, providing a user-friendly error.
// The configured log level applies unless --verbose was given.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `folio init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	if !verbose && cfg.LogLevel != "" {
		var lvl zapcore.Level
		if err := lvl.UnmarshalText([]byte(cfg.LogLevel)); err == nil {
			logLevel.SetLevel(lvl)
		}
	}
	return cfg, nil
}

// newFetcher reads articles from the asset host when one is configured and
// from the local content directory otherwise.
func newFetcher(cfg *config.Config) article.Fetcher {
	if cfg.AssetBaseURL != "" {
		return article.NewHTTPFetcher(cfg.AssetBaseURL, cfg.Timeout())
	}
	return article.FSFetcher{FS: os.DirFS(cfg.ContentDir)}
}

func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	c, err := catalog.Load(os.DirFS(cfg.ContentDir))
	if err != nil {
		return nil, fmt.Errorf("loading catalog from %s: %w", cfg.ContentDir, err)
	}
	return c, nil
}
