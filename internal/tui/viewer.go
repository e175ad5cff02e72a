// Package tui is the terminal article viewer: a full-screen reader for one
// article and a browser that opens articles in a modal overlay.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	xansi "github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"github.com/sxsun/folio/internal/article"
)

// Options configures the terminal viewers.
type Options struct {
	CodeStyle string
	Clipboard article.Clipboard
	Logger    *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.CodeStyle == "" {
		o.CodeStyle = article.DefaultCodeStyle
	}
	if o.Clipboard == nil {
		o.Clipboard = article.SystemClipboard{}
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// loadedMsg carries a finished retrieval back to the model that asked for it.
type loadedMsg struct {
	session *article.Session
	result  article.Result
}

func loadCmd(s *article.Session, req article.Request) tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{session: s, result: s.Run(req)}
	}
}

// viewer is one article viewport bound to a Session.
type viewer struct {
	opts    Options
	session *article.Session

	viewport viewport.Model
	md       *glamour.TermRenderer
	mdWidth  int

	parsed   article.Parsed
	loaded   bool
	selected int

	status    string
	statusErr bool
}

func newViewer(loader *article.Loader, opts Options) *viewer {
	vp := viewport.New(0, 0)
	vp.SetContent("Loading...")
	return &viewer{
		opts:     opts,
		session:  article.NewSession(loader, opts.Logger),
		viewport: vp,
	}
}

// open starts retrieval of identifier in the viewer's session.
func (v *viewer) open(ctx context.Context, identifier string) tea.Cmd {
	v.loaded = false
	v.viewport.SetContent("Loading...")
	return loadCmd(v.session, v.session.Request(ctx, identifier))
}

// apply installs msg if it answers this viewer's newest request.
func (v *viewer) apply(msg loadedMsg) bool {
	if msg.session != v.session || !v.session.Apply(msg.result) {
		return false
	}
	v.parsed = article.Parse(msg.result.Document)
	v.loaded = true
	v.selected = 0
	v.status = ""
	v.refresh()
	v.viewport.GotoTop()
	return true
}

func (v *viewer) close() {
	v.session.Close()
	v.loaded = false
	v.parsed = article.Parsed{}
}

func (v *viewer) setSize(width, height int) {
	v.viewport.Width = width
	v.viewport.Height = height
	v.refresh()
}

// refresh re-renders the document for the current width.
func (v *viewer) refresh() {
	if !v.loaded {
		return
	}
	width := v.viewport.Width
	if v.md == nil || v.mdWidth != width {
		md, err := newMarkdownRenderer(v.opts.CodeStyle, width)
		if err != nil {
			v.opts.Logger.Warn("creating terminal renderer", zap.Error(err))
			v.viewport.SetContent(v.parsed.Document.Body)
			return
		}
		v.md, v.mdWidth = md, width
	}
	out, err := v.md.Render(v.parsed.Document.Body)
	if err != nil {
		v.opts.Logger.Warn("rendering article", zap.Error(err))
		out = v.parsed.Document.Body
	}
	v.viewport.SetContent(out)
}

func (v *viewer) cycle(delta int) {
	n := len(v.parsed.CodeBlocks)
	if n == 0 {
		return
	}
	v.selected = (v.selected + delta + n) % n
	v.status = ""
}

// copySelected writes the selected block to the clipboard. The document is
// never touched, whatever the outcome.
func (v *viewer) copySelected() article.Ack {
	if len(v.parsed.CodeBlocks) == 0 {
		return article.Ack{Message: "No code blocks to copy."}
	}
	ack := article.Copy(v.opts.Clipboard, v.parsed.CodeBlocks[v.selected])
	if ack.Err != nil {
		v.opts.Logger.Debug("copy failed", zap.Error(ack.Err))
	}
	v.status, v.statusErr = ack.Message, !ack.OK
	return ack
}

// handleKey processes the viewer keys and reports whether msg was consumed.
func (v *viewer) handleKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "tab":
		v.cycle(1)
	case "shift+tab":
		v.cycle(-1)
	case "c", "y":
		v.copySelected()
	default:
		return false
	}
	return true
}

func (v *viewer) title() string {
	if !v.loaded {
		return "Loading..."
	}
	return v.parsed.Title
}

// footer shows the selected block and the last copy outcome.
func (v *viewer) footer() string {
	var parts []string
	if n := len(v.parsed.CodeBlocks); n > 0 {
		b := v.parsed.CodeBlocks[v.selected]
		parts = append(parts, fmt.Sprintf("code %d/%d [%s] %s", v.selected+1, n, b.Language, firstLine(b.Text)))
	}
	if v.status != "" {
		style := successStyle
		if v.statusErr {
			style = errorStyle
		}
		parts = append(parts, style.Render(v.status))
	}
	return strings.Join(parts, "  ")
}

// firstLineWidth caps the code preview in the footer, in terminal cells.
const firstLineWidth = 48

// firstLine previews a code block: its first line, marked when more follow,
// truncated by display width so wide runes are never split.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i] + " …"
	}
	return mutedStyle.Render(xansi.Truncate(s, firstLineWidth, "..."))
}
