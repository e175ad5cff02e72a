package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile string
	verbose bool
	logger  = zap.NewNop()
)

// interactiveAnnotation marks commands that own the terminal. They log to a
// file, and only with --verbose.
const interactiveAnnotation = "interactive"

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Personal portfolio and blog with a markdown article viewer",
	Long: `folio serves a personal portfolio site: a home page, workshop projects,
photo albums, contacts and a blog whose articles are markdown files rendered
with syntax-highlighted, copyable code blocks. The same articles can be read
in the terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := buildLogger(cmd.Annotations[interactiveAnnotation] != "", verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".folio.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
