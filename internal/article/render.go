package article

import (
	"bytes"
	"fmt"
	"html/template"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// DefaultCodeStyle is the chroma style used for highlighted code blocks.
const DefaultCodeStyle = "onedark"

// Overrides maps a node kind to the function that renders it. Kinds without
// an entry fall through to goldmark's HTML renderer.
type Overrides map[ast.NodeKind]renderer.NodeRendererFunc

// Register implements renderer.NodeRendererFuncRegisterer so a stock node
// renderer can be captured into an Overrides table.
func (o Overrides) Register(kind ast.NodeKind, fn renderer.NodeRendererFunc) {
	o[kind] = fn
}

// RegisterFuncs implements renderer.NodeRenderer.
func (o Overrides) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	for kind, fn := range o {
		reg.Register(kind, fn)
	}
}

// overridePriority places the override table ahead of the stock HTML
// renderer (1000) and the highlighting extension (200).
const overridePriority = 100

// newMarkdown is the parser configuration shared by Parse and Renderer.
func newMarkdown(opts ...goldmark.Option) goldmark.Markdown {
	base := []goldmark.Option{
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	}
	return goldmark.New(append(base, opts...)...)
}

type renderConfig struct {
	codeStyle string
	extra     Overrides
}

// Option configures a Renderer.
type Option func(*renderConfig)

// WithCodeStyle selects the chroma style for highlighted code blocks.
func WithCodeStyle(name string) Option {
	return func(c *renderConfig) {
		if name != "" {
			c.codeStyle = name
		}
	}
}

// WithOverride replaces the renderer for one node kind.
func WithOverride(kind ast.NodeKind, fn renderer.NodeRendererFunc) Option {
	return func(c *renderConfig) {
		c.extra[kind] = fn
	}
}

// Renderer converts documents to HTML using the article override table.
type Renderer struct {
	md        goldmark.Markdown
	overrides Overrides
}

// NewRenderer builds a Renderer. It is safe for concurrent use.
func NewRenderer(opts ...Option) *Renderer {
	cfg := renderConfig{codeStyle: DefaultCodeStyle, extra: Overrides{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	table := DefaultOverrides(cfg.codeStyle)
	for kind, fn := range cfg.extra {
		table[kind] = fn
	}

	md := newMarkdown(goldmark.WithRendererOptions(
		renderer.WithNodeRenderers(util.Prioritized(table, overridePriority)),
	))
	return &Renderer{md: md, overrides: table}
}

// Overrides returns the node kinds the renderer handles itself.
func (r *Renderer) Overrides() []ast.NodeKind {
	kinds := make([]ast.NodeKind, 0, len(r.overrides))
	for kind := range r.overrides {
		kinds = append(kinds, kind)
	}
	return kinds
}

// Render converts doc to HTML.
func (r *Renderer) Render(doc Document) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(doc.Body), &buf); err != nil {
		return "", fmt.Errorf("rendering %s: %w", doc.Ref, err)
	}
	return template.HTML(buf.String()), nil
}

// DefaultOverrides returns the article styling table: large light headings
// for levels 1-3, bold white strong spans, disc/decimal lists with muted
// markers, highlighted tagged fences with a copy button, and plain inline
// code for everything else.
func DefaultOverrides(codeStyle string) Overrides {
	stock := Overrides{}
	html.NewRenderer().RegisterFuncs(stock)

	highlighted := Overrides{}
	highlighting.NewHTMLRenderer(
		highlighting.WithStyle(codeStyle),
		highlighting.WithFormatOptions(
			chromahtml.WithClasses(false),
			chromahtml.TabWidth(4),
		),
	).RegisterFuncs(highlighted)

	o := &articleNodes{
		stock:     stock,
		highlight: highlighted[ast.KindFencedCodeBlock],
	}
	return Overrides{
		ast.KindHeading:         o.heading,
		ast.KindEmphasis:        o.emphasis,
		ast.KindList:            o.list,
		ast.KindFencedCodeBlock: o.fencedCode,
		ast.KindCodeSpan:        o.codeSpan,
	}
}

type articleNodes struct {
	stock     Overrides
	highlight renderer.NodeRendererFunc
}

func (o *articleNodes) heading(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Heading)
	if n.Level > 3 {
		return o.stock[ast.KindHeading](w, source, node, entering)
	}
	if entering {
		fmt.Fprintf(w, `<h%d class="article-h%d"`, n.Level, n.Level)
		if n.Attributes() != nil {
			html.RenderAttributes(w, node, html.HeadingAttributeFilter)
		}
		_ = w.WriteByte('>')
	} else {
		fmt.Fprintf(w, "</h%d>\n", n.Level)
	}
	return ast.WalkContinue, nil
}

func (o *articleNodes) emphasis(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Emphasis)
	if n.Level != 2 {
		return o.stock[ast.KindEmphasis](w, source, node, entering)
	}
	if entering {
		_, _ = w.WriteString(`<strong class="article-strong">`)
	} else {
		_, _ = w.WriteString("</strong>")
	}
	return ast.WalkContinue, nil
}

func (o *articleNodes) list(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.List)
	tag, class := "ul", "article-ul"
	if n.IsOrdered() {
		tag, class = "ol", "article-ol"
	}
	if entering {
		fmt.Fprintf(w, `<%s class="%s"`, tag, class)
		if n.IsOrdered() && n.Start != 1 {
			fmt.Fprintf(w, ` start="%d"`, n.Start)
		}
		if n.Attributes() != nil {
			html.RenderAttributes(w, n, html.ListAttributeFilter)
		}
		_, _ = w.WriteString(">\n")
	} else {
		fmt.Fprintf(w, "</%s>\n", tag)
	}
	return ast.WalkContinue, nil
}

func (o *articleNodes) fencedCode(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.FencedCodeBlock)
	lang, tagged := fenceLanguage(n, source)
	if !tagged {
		return o.plainCode(w, source, n, entering)
	}
	if !entering {
		return ast.WalkContinue, nil
	}

	_, _ = w.WriteString(`<div class="code-block" data-language="`)
	_, _ = w.Write(util.EscapeHTML([]byte(lang)))
	_, _ = w.WriteString(`"><button type="button" class="copy-button" data-copy="`)
	_, _ = w.Write(util.EscapeHTML([]byte(fenceText(n, source))))
	_, _ = w.WriteString(`">Copy</button>`)
	if _, err := o.highlight(w, source, node, true); err != nil {
		return ast.WalkStop, err
	}
	_, _ = w.WriteString("</div>\n")
	return ast.WalkSkipChildren, nil
}

// plainCode renders an untagged fence as unhighlighted inline-styled code.
func (o *articleNodes) plainCode(w util.BufWriter, source []byte, n *ast.FencedCodeBlock, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	_, _ = w.WriteString(`<pre class="plain-code"><code class="inline-code">`)
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		html.DefaultWriter.RawWrite(w, seg.Value(source))
	}
	_, _ = w.WriteString("</code></pre>\n")
	return ast.WalkSkipChildren, nil
}

func (o *articleNodes) codeSpan(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		_, _ = w.WriteString("</code>")
		return ast.WalkContinue, nil
	}
	_, _ = w.WriteString(`<code class="inline-code">`)
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		t, ok := c.(*ast.Text)
		if !ok {
			continue
		}
		value := t.Segment.Value(source)
		if bytes.HasSuffix(value, []byte("\n")) {
			html.DefaultWriter.RawWrite(w, value[:len(value)-1])
			html.DefaultWriter.RawWrite(w, []byte(" "))
		} else {
			html.DefaultWriter.RawWrite(w, value)
		}
	}
	return ast.WalkSkipChildren, nil
}
