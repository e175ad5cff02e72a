package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sxsun/folio/internal/article"
	"github.com/sxsun/folio/internal/tui"
)

var readCmd = &cobra.Command{
	Use:   "read <article>",
	Short: "Read an article in the terminal",
	Long: `Opens one article full screen. The identifier is the article path
without the .md extension, e.g. "sxhub/2025031102".

Keys: tab/shift+tab select a code block, c or y copies it, q quits.`,
	Args:        cobra.ExactArgs(1),
	Annotations: map[string]string{interactiveAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		variant := article.Page
		if modal, _ := cmd.Flags().GetBool("modal"); modal {
			variant = article.Modal
		}
		loader := article.NewLoader(newFetcher(cfg), variant, logger)

		model := tui.NewReader(cmd.Context(), loader, args[0], tui.Options{
			CodeStyle: cfg.CodeStyle,
			Logger:    logger,
		})
		if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run(); err != nil {
			return fmt.Errorf("running reader: %w", err)
		}
		return nil
	},
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse articles in the terminal",
	Long: `Lists the catalog's articles. Enter opens the selected article in an
overlay, esc closes it, / filters and q quits.`,
	Annotations: map[string]string{interactiveAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cat, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		loader := article.NewLoader(newFetcher(cfg), article.Modal, logger)
		model := tui.NewBrowser(cmd.Context(), loader, cat.Articles, tui.Options{
			CodeStyle: cfg.CodeStyle,
			Logger:    logger,
		})
		if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run(); err != nil {
			return fmt.Errorf("running browser: %w", err)
		}
		return nil
	},
}

func init() {
	readCmd.Flags().Bool("modal", false, "use the modal viewer's not-found text")
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(browseCmd)
}
