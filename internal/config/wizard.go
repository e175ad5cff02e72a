package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/manifoldco/promptui"
)

// detectContentDir looks for a directory that already holds an articles/
// folder, the layout the static asset routes expect.
func detectContentDir() string {
	for _, dir := range []string{"public", "content", "static"} {
		if info, err := os.Stat(filepath.Join(dir, "articles")); err == nil && info.IsDir() {
			return dir
		}
	}
	return "public"
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to folio! Let's configure your site.")
	fmt.Println()

	defaults := DefaultConfig()

	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: defaults.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site title: %w", err)
	}

	ownerPrompt := promptui.Prompt{
		Label:   "Owner name",
		Default: defaults.Owner,
	}
	owner, err := ownerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("owner: %w", err)
	}

	contentPrompt := promptui.Prompt{
		Label:   "Content directory (holds articles/ and imgs/)",
		Default: detectContentDir(),
	}
	contentDir, err := contentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content dir: %w", err)
	}

	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(defaults.Port),
		Validate: func(s string) error {
			p, err := strconv.Atoi(s)
			if err != nil || p <= 0 || p > 65535 {
				return fmt.Errorf("port must be a number between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	stylePrompt := promptui.Select{
		Label: "Code highlighting style",
		Items: []string{"onedark", "dracula", "monokai", "github-dark", "nord"},
	}
	_, codeStyle, err := stylePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("code style: %w", err)
	}

	assetPrompt := promptui.Prompt{
		Label:   "Asset base URL for article retrieval (blank reads the content directory)",
		Default: "",
	}
	assetBase, err := assetPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("asset base url: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Title = title
	cfg.Owner = owner
	cfg.ContentDir = contentDir
	cfg.Port = port
	cfg.CodeStyle = codeStyle
	cfg.AssetBaseURL = assetBase

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(filepath.Join(contentDir, "articles")); os.IsNotExist(err) {
		fmt.Printf("\nNote: %s has no articles/ directory yet; article pages will show the not-found fallback.\n", contentDir)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
