package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sxsun/folio/internal/article"
	"github.com/sxsun/folio/internal/catalog"
	"github.com/sxsun/folio/internal/progress"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that every catalog article can be loaded",
	Long: `Fetches each article listed in the catalog exactly as the viewer would
and reports the ones that fall back to the not-found page. Exits non-zero if
any article is unavailable.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Int("concurrency", 4, "number of articles fetched in parallel")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	limit, _ := cmd.Flags().GetInt("concurrency")

	loader := article.NewLoader(newFetcher(cfg), article.Page, logger)
	reporter := progress.NewReporter(os.Stderr)

	missing, err := checkArticles(cmd.Context(), loader, cat.Articles, limit, reporter)
	if err != nil {
		return err
	}

	if len(missing) == 0 {
		fmt.Printf("All %d articles available.\n", len(cat.Articles))
		return nil
	}
	fmt.Printf("%d of %d articles unavailable:\n", len(missing), len(cat.Articles))
	for _, id := range missing {
		fmt.Printf("  - %s\n", id)
	}
	return fmt.Errorf("%d articles unavailable", len(missing))
}

// checkArticles loads every article and returns the identifiers that fell
// back, sorted.
func checkArticles(ctx context.Context, loader *article.Loader, articles []catalog.Article, limit int, reporter progress.Reporter) ([]string, error) {
	if limit < 1 {
		limit = 1
	}

	var (
		mu      sync.Mutex
		missing []string
	)
	reporter.Start(len(articles))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, a := range articles {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			doc := loader.Load(gctx, a.Slug)
			if !doc.Found {
				mu.Lock()
				missing = append(missing, a.ID())
				mu.Unlock()
			}
			reporter.Advance(a.ID())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("checking articles: %w", err)
	}
	reporter.Finish()

	sort.Strings(missing)
	return missing, nil
}
