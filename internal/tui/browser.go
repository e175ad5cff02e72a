package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sxsun/folio/internal/article"
	"github.com/sxsun/folio/internal/catalog"
)

const modalHelp = "tab/shift+tab: select code • c/y: copy • ↑/↓: scroll • esc: close"

// articleItem adapts catalog.Article to list.Item.
type articleItem struct {
	article catalog.Article
}

func (i articleItem) Title() string { return i.article.Title }
func (i articleItem) Description() string {
	parts := []string{}
	if i.article.Date != "" {
		parts = append(parts, i.article.Date)
	}
	if len(i.article.Tags) > 0 {
		parts = append(parts, strings.Join(i.article.Tags, ", "))
	}
	return strings.Join(parts, " • ")
}
func (i articleItem) FilterValue() string {
	return i.article.Title + " " + strings.Join(i.article.Tags, " ")
}

// BrowserModel lists articles and opens the selected one in a modal. Every
// open is a fresh viewer session; closing discards it.
type BrowserModel struct {
	ctx    context.Context
	loader *article.Loader
	opts   Options
	list   list.Model
	modal  *viewer
	item   catalog.Article
	width  int
	height int
}

// NewBrowser creates a browser over the given articles.
func NewBrowser(ctx context.Context, loader *article.Loader, articles []catalog.Article, opts Options) BrowserModel {
	items := make([]list.Item, 0, len(articles))
	for _, a := range articles {
		items = append(items, articleItem{article: a})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Articles"
	l.SetShowHelp(true)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	l.Styles.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("141"))

	return BrowserModel{
		ctx:    ctx,
		loader: loader.WithVariant(article.Modal),
		opts:   opts.withDefaults(),
		list:   l,
	}
}

// Init implements tea.Model.
func (m BrowserModel) Init() tea.Cmd { return nil }

// Update handles messages.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width, msg.Height)
		if m.modal != nil {
			m.modal.setSize(m.modalSize())
		}
		return m, nil

	case loadedMsg:
		// Results for a closed modal are dropped by their session.
		if m.modal != nil {
			m.modal.apply(msg)
		} else {
			msg.session.Apply(msg.result)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.closeModal()
			return m, tea.Quit
		}
		if m.modal != nil {
			return m.updateModal(msg)
		}
		if m.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "enter":
				return m.openSelected()
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m BrowserModel) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeModal()
		return m, nil
	case "q":
		m.closeModal()
		return m, tea.Quit
	}
	if m.modal.handleKey(msg) {
		return m, nil
	}
	var cmd tea.Cmd
	m.modal.viewport, cmd = m.modal.viewport.Update(msg)
	return m, cmd
}

func (m BrowserModel) openSelected() (tea.Model, tea.Cmd) {
	sel, ok := m.list.SelectedItem().(articleItem)
	if !ok {
		return m, nil
	}
	m.closeModal()
	m.item = sel.article
	m.modal = newViewer(m.loader, m.opts)
	m.modal.setSize(m.modalSize())
	return m, m.modal.open(m.ctx, sel.article.Slug)
}

func (m *BrowserModel) closeModal() {
	if m.modal != nil {
		m.modal.close()
		m.modal = nil
	}
}

func (m BrowserModel) modalSize() (int, int) {
	w := m.width*4/5 - 4
	h := m.height*4/5 - 6
	return max(w, 20), max(h, 3)
}

// View renders the list, or the modal over it when one is open.
func (m BrowserModel) View() string {
	if m.modal == nil {
		return m.list.View()
	}

	header := titleStyle.Render(m.modal.title())
	if len(m.item.Tags) > 0 {
		tags := make([]string, len(m.item.Tags))
		for i, t := range m.item.Tags {
			tags[i] = tagStyle.Render(t)
		}
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, " ", strings.Join(tags, " "))
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.modal.viewport.View(),
		m.modal.footer(),
		mutedStyle.Render(modalHelp),
	)
	box := modalStyle.Render(body)
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars(" "))
}

// Open reports the open modal's document, if any.
func (m BrowserModel) Open() (article.Document, bool) {
	if m.modal == nil {
		return article.Document{}, false
	}
	return m.modal.session.Current()
}
