package article

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Variant selects the presentation an article is shown in. The two variants
// share retrieval and rendering and differ only in their fallback text.
type Variant int

const (
	// Page is the full-page route keyed by a path parameter.
	Page Variant = iota
	// Modal is the overlay opened from the article list.
	Modal
)

func (v Variant) String() string {
	switch v {
	case Page:
		return "page"
	case Modal:
		return "modal"
	default:
		return "unknown"
	}
}

// Fallback returns the document body shown when retrieval fails.
func (v Variant) Fallback() string {
	if v == Modal {
		return "# 404 - Article Not Found"
	}
	return "# Article Not Found"
}

// Document is the markdown text held by a viewer: either the retrieved body
// or the variant's fallback.
type Document struct {
	Ref     Ref
	Variant Variant
	Body    string
	Found   bool
}

func fallbackDocument(ref Ref, v Variant) Document {
	return Document{Ref: ref, Variant: v, Body: v.Fallback()}
}

// CodeBlock is a fenced block carrying a language tag. Only these blocks get
// highlighting and a copy affordance.
type CodeBlock struct {
	Index    int
	Language string
	Text     string
}

// Parsed is the transient parse result of a Document.
type Parsed struct {
	Document   Document
	Title      string
	CodeBlocks []CodeBlock
}

// languageTag matches the leading word of a fence info string.
var languageTag = regexp.MustCompile(`^\w+`)

// fenceLanguage returns the fence's language and whether it counts as tagged.
func fenceLanguage(n *ast.FencedCodeBlock, source []byte) (string, bool) {
	lang := n.Language(source)
	if lang == nil || !languageTag.Match(lang) {
		return "", false
	}
	return string(lang), true
}

// fenceText returns the block body with a single trailing newline removed.
func fenceText(n *ast.FencedCodeBlock, source []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Parse walks the document once and extracts its title and tagged code blocks.
func Parse(doc Document) Parsed {
	source := []byte(doc.Body)
	root := newMarkdown().Parser().Parse(text.NewReader(source))

	p := Parsed{Document: doc}
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Heading:
			if p.Title == "" && n.Level == 1 {
				p.Title = strings.TrimSpace(nodeText(n, source))
			}
		case *ast.FencedCodeBlock:
			if lang, ok := fenceLanguage(n, source); ok {
				p.CodeBlocks = append(p.CodeBlocks, CodeBlock{
					Index:    len(p.CodeBlocks),
					Language: lang,
					Text:     fenceText(n, source),
				})
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	if p.Title == "" {
		p.Title = doc.Ref.Name()
	}
	return p
}

// nodeText concatenates the literal text below n.
func nodeText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch c := c.(type) {
		case *ast.Text:
			buf.Write(c.Segment.Value(source))
			if c.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(c.Value)
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}
