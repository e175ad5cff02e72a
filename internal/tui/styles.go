package tui

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("141"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	tagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("93")).Padding(0, 1)
	modalStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1)
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

// articleStyle mirrors the HTML article styling: light bold headings for
// levels 1-3, bold white strong text, muted list markers and code blocks
// highlighted with the chroma style codeStyle.
func articleStyle(codeStyle string) ansi.StyleConfig {
	cfg := styles.DarkStyleConfig

	cfg.H1 = ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{
		Prefix: "# ", Color: strPtr("255"), Bold: boolPtr(true),
	}}
	cfg.H2 = ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{
		Prefix: "## ", Color: strPtr("254"), Bold: boolPtr(true),
	}}
	cfg.H3 = ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{
		Prefix: "### ", Color: strPtr("252"), Bold: boolPtr(true),
	}}
	cfg.Strong = ansi.StylePrimitive{Color: strPtr("255"), Bold: boolPtr(true)}
	cfg.Item = ansi.StylePrimitive{BlockPrefix: "• ", Color: strPtr("250")}
	cfg.Enumeration = ansi.StylePrimitive{BlockPrefix: ". ", Color: strPtr("250")}
	cfg.Code = ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{
		Prefix: " ", Suffix: " ", Color: strPtr("255"), BackgroundColor: strPtr("237"),
	}}

	cfg.CodeBlock.Chroma = nil
	cfg.CodeBlock.Theme = codeStyle
	return cfg
}

func newMarkdownRenderer(codeStyle string, width int) (*glamour.TermRenderer, error) {
	if width < 20 {
		width = 20
	}
	return glamour.NewTermRenderer(
		glamour.WithStyles(articleStyle(codeStyle)),
		glamour.WithWordWrap(width),
	)
}
