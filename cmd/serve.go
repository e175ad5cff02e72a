package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sxsun/folio/internal/article"
	"github.com/sxsun/folio/internal/catalog"
	"github.com/sxsun/folio/internal/server"
	"github.com/sxsun/folio/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio site over HTTP",
	Long: `Starts the portfolio web server. Articles are read from the content
directory (or the configured asset host) on every view and rendered to HTML
with highlighted, copyable code blocks.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides config)")
	serveCmd.Flags().Bool("open", false, "open the site in a browser")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Port = port
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	st, err := site.New(site.Options{
		Title:    cfg.Title,
		Owner:    cfg.Owner,
		Catalog:  cat,
		Loader:   article.NewLoader(newFetcher(cfg), article.Page, logger),
		Renderer: article.NewRenderer(article.WithCodeStyle(cfg.CodeStyle)),
		Feed:     catalog.NewFeedClient(cfg.FeedURL, cfg.Timeout()),
		Content:  os.DirFS(cfg.ContentDir),
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}

	srv := server.New(server.Config{
		Port:     cfg.Port,
		AllowAll: cfg.AllowAllOrigins,
	}, logger)
	st.Routes(srv.Router())

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown", zap.Error(err))
		}
	}()

	url := fmt.Sprintf("http://localhost:%d", cfg.Port)
	fmt.Fprintf(os.Stderr, "folio %s serving %s at %s\n", Version, cfg.Title, url)
	fmt.Fprintf(os.Stderr, "  Content: %s\n", cfg.ContentDir)
	fmt.Fprintf(os.Stderr, "  Articles: %d\n", len(cat.Articles))
	fmt.Fprintln(os.Stderr, "Press Ctrl+C to stop.")

	if open, _ := cmd.Flags().GetBool("open"); open {
		go func() {
			if err := site.OpenBrowser(url); err != nil {
				logger.Debug("opening browser", zap.Error(err))
			}
		}()
	}

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
