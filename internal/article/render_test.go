package article

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/util"
	"go.uber.org/goleak"
)

func render(t *testing.T, body string, opts ...Option) string {
	t.Helper()
	out, err := NewRenderer(opts...).Render(Document{Body: body, Found: true})
	require.NoError(t, err)
	return string(out)
}

func TestRenderOverrides(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		contains []string
		excludes []string
	}{
		{
			name:     "headings 1-3 styled",
			body:     "# One\n\n## Two\n\n### Three\n",
			contains: []string{`<h1 class="article-h1" id="one">One</h1>`, `<h2 class="article-h2" id="two">`, `<h3 class="article-h3" id="three">`},
		},
		{
			name:     "heading 4 passes through",
			body:     "#### Four\n",
			contains: []string{`<h4 id="four">Four</h4>`},
			excludes: []string{"article-h4"},
		},
		{
			name:     "strong styled, emphasis default",
			body:     "**bold** and *soft*\n",
			contains: []string{`<strong class="article-strong">bold</strong>`, `<em>soft</em>`},
		},
		{
			name:     "unordered list",
			body:     "- a\n- b\n",
			contains: []string{`<ul class="article-ul">`, "<li>a</li>"},
		},
		{
			name:     "ordered list keeps start",
			body:     "3. c\n4. d\n",
			contains: []string{`<ol class="article-ol" start="3">`},
		},
		{
			name:     "inline code",
			body:     "run `make test` now\n",
			contains: []string{`<code class="inline-code">make test</code>`},
			excludes: []string{"copy-button"},
		},
		{
			name:     "untagged fence",
			body:     "```\nplain <text>\n```\n",
			contains: []string{`<code class="inline-code">plain &lt;text&gt;`},
			excludes: []string{"copy-button", "code-block"},
		},
		{
			name: "tagged fence",
			body: "```python\nprint(\"hi\")\n```\n",
			contains: []string{
				`<div class="code-block" data-language="python">`,
				`data-copy="print(&quot;hi&quot;)"`,
				">Copy</button>",
				"<pre",
			},
			excludes: []string{"inline-code"},
		},
		{
			name:     "gfm table",
			body:     "| a | b |\n|---|---|\n| 1 | 2 |\n",
			contains: []string{"<table>", "<td>1</td>"},
		},
		{
			name:     "gfm strikethrough and task list",
			body:     "~~old~~\n\n- [x] done\n",
			contains: []string{"<del>old</del>", `type="checkbox"`},
		},
		{
			name:     "raw html escaped",
			body:     "<script>alert(1)</script>\n",
			excludes: []string{"<script>"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(t, tt.body)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, notWant := range tt.excludes {
				assert.NotContains(t, got, notWant)
			}
		})
	}
}

func TestRenderFallback(t *testing.T) {
	for _, v := range []Variant{Page, Modal} {
		out, err := NewRenderer().Render(fallbackDocument(Ref{}, v))
		require.NoError(t, err)
		text := strings.TrimPrefix(v.Fallback(), "# ")
		assert.Contains(t, string(out), `class="article-h1"`)
		assert.Contains(t, string(out), ">"+text+"</h1>")
	}
}

func TestRenderCodeStyle(t *testing.T) {
	body := "```go\nfunc main() {}\n```\n"
	onedark := render(t, body)
	github := render(t, body, WithCodeStyle("github"))
	assert.NotEqual(t, onedark, github)
}

func TestRenderWithOverride(t *testing.T) {
	custom := func(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			fmt.Fprint(w, "<hr class=\"custom\">\n")
		}
		return ast.WalkContinue, nil
	}
	r := NewRenderer(WithOverride(ast.KindThematicBreak, custom))
	assert.Contains(t, r.Overrides(), ast.KindThematicBreak)

	out, err := r.Render(Document{Body: "a\n\n---\n\nb\n"})
	require.NoError(t, err)
	assert.Contains(t, string(out), `<hr class="custom">`)
}

func TestParse(t *testing.T) {
	ref := mustRef(t, "sxhub/2025031102")
	doc := Document{Ref: ref, Found: true, Body: strings.Join([]string{
		"# Resolving Kafka Startup Issues",
		"",
		"```bash",
		"export KAFKA_LISTENERS=PLAINTEXT://:9092",
		"",
		"```",
		"",
		"```",
		"untagged",
		"```",
		"",
		"```yaml",
		"kafka:",
		"  image: bitnami/kafka",
		"```",
		"",
		"# Second",
	}, "\n")}

	p := Parse(doc)
	assert.Equal(t, "Resolving Kafka Startup Issues", p.Title)
	require.Len(t, p.CodeBlocks, 2)
	assert.Equal(t, CodeBlock{Index: 0, Language: "bash", Text: "export KAFKA_LISTENERS=PLAINTEXT://:9092\n"}, p.CodeBlocks[0])
	assert.Equal(t, CodeBlock{Index: 1, Language: "yaml", Text: "kafka:\n  image: bitnami/kafka"}, p.CodeBlocks[1])
}

func TestParseTitleFallsBackToName(t *testing.T) {
	p := Parse(Document{Ref: mustRef(t, "notes/kafka"), Body: "no heading here"})
	assert.Equal(t, "kafka", p.Title)
}

func TestRenderHighlightLeavesNoGoroutines(t *testing.T) {
	render(t, "```go\nfunc main() {}\n```\n")
	render(t, "```python\nprint(1)\n```\n")
	assert.NoError(t, goleak.Find(leakOptions...))
}
