package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sxsun/folio/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize folio configuration with an interactive wizard",
	Long: `Runs an interactive wizard to configure the site and writes the config
file (.folio.yml unless --config is given). An existing file is kept unless
--force is passed.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().Bool("force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	if err := checkConfigWritable(cfgFile, force); err != nil {
		return err
	}

	cfg, err := config.RunWizard(cfgFile)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintf(out, "  Put articles under %s/articles/<name>.md\n", cfg.ContentDir)
	fmt.Fprintln(out, "  folio check    verify every listed article loads")
	fmt.Fprintf(out, "  folio serve    open http://localhost:%d\n", cfg.Port)
	return nil
}

// checkConfigWritable refuses to replace an existing config without force.
func checkConfigWritable(path string, force bool) error {
	_, err := os.Stat(path)
	switch {
	case err == nil && !force:
		return fmt.Errorf("%s already exists; rerun with --force to overwrite it", path)
	case err != nil && !os.IsNotExist(err):
		return fmt.Errorf("accessing %s: %w", path, err)
	}
	return nil
}
