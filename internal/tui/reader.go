package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sxsun/folio/internal/article"
)

const readerHelp = "tab/shift+tab: select code • c/y: copy • ↑/↓: scroll • q: quit"

// ReaderModel shows one article full screen, like the article page.
type ReaderModel struct {
	ctx        context.Context
	identifier string
	view       *viewer
	width      int
	height     int
}

// NewReader creates a reader for identifier. The loader's variant decides
// the fallback text.
func NewReader(ctx context.Context, loader *article.Loader, identifier string, opts Options) ReaderModel {
	return ReaderModel{
		ctx:        ctx,
		identifier: identifier,
		view:       newViewer(loader, opts.withDefaults()),
	}
}

// Init starts the retrieval.
func (m ReaderModel) Init() tea.Cmd {
	return m.view.open(m.ctx, m.identifier)
}

// Update handles messages.
func (m ReaderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.view.setSize(msg.Width, max(msg.Height-4, 1))
		return m, nil

	case loadedMsg:
		m.view.apply(msg)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.view.close()
			return m, tea.Quit
		}
		if m.view.handleKey(msg) {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.view.viewport, cmd = m.view.viewport.Update(msg)
	return m, cmd
}

// View renders the reader.
func (m ReaderModel) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.view.title()),
		m.view.viewport.View(),
		m.view.footer(),
		mutedStyle.Render(readerHelp),
	)
}

// Document returns the displayed document, if loaded.
func (m ReaderModel) Document() (article.Document, bool) {
	return m.view.session.Current()
}
