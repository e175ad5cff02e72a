package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sxsun/folio/internal/article"
	"github.com/sxsun/folio/internal/catalog"
	"github.com/sxsun/folio/internal/config"
)

type recordingReporter struct {
	mu       sync.Mutex
	total    int
	seen     []string
	finished bool
}

func (r *recordingReporter) Start(total int) { r.total = total }
func (r *recordingReporter) Advance(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, msg)
}
func (r *recordingReporter) Finish() { r.finished = true }

func TestCheckArticles(t *testing.T) {
	fsys := fstest.MapFS{
		"articles/sxhub/2025031102.md": {Data: []byte("# Kafka\n")},
		"articles/go/generics.md":      {Data: []byte("# Generics\n")},
	}
	loader := article.NewLoader(article.FSFetcher{FS: fsys}, article.Page, nil)
	articles := []catalog.Article{
		{Title: "Kafka", Slug: "/sxhub/2025031102"},
		{Title: "Generics", Slug: "go/generics"},
		{Title: "Gone", Slug: "notes/gone"},
		{Title: "Broken", Slug: "../escape"},
	}
	rep := &recordingReporter{}

	missing, err := checkArticles(context.Background(), loader, articles, 2, rep)
	require.NoError(t, err)
	assert.Equal(t, []string{"../escape", "notes/gone"}, missing)
	assert.Equal(t, 4, rep.total)
	assert.Len(t, rep.seen, 4)
	assert.True(t, rep.finished)
}

func TestCheckArticlesCancelled(t *testing.T) {
	loader := article.NewLoader(article.FSFetcher{FS: fstest.MapFS{}}, article.Page, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := checkArticles(ctx, loader, []catalog.Article{{Slug: "a"}}, 0, &recordingReporter{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewFetcher(t *testing.T) {
	cfg := config.DefaultConfig()
	_, ok := newFetcher(cfg).(article.FSFetcher)
	assert.True(t, ok)

	cfg.AssetBaseURL = "https://assets.example.com"
	f, ok := newFetcher(cfg).(*article.HTTPFetcher)
	require.True(t, ok)
	assert.Equal(t, "https://assets.example.com", f.BaseURL)
}

func TestBuildLoggerInteractiveQuiet(t *testing.T) {
	l, err := buildLogger(true, false)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(-1))
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)

	got := out.String()
	assert.True(t, strings.HasPrefix(got, "folio "), got)
	assert.Contains(t, got, runtime.Version())
	assert.Contains(t, got, runtime.GOOS+"/"+runtime.GOARCH)
	assert.True(t, strings.HasSuffix(got, ")\n"), got)
}

func TestVersionStringUsesLinkedVersion(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })

	Version = "v1.2.0"
	assert.True(t, strings.HasPrefix(versionString(), "folio v1.2.0"), versionString())
}

func TestCheckConfigWritable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".folio.yml")

	assert.NoError(t, checkConfigWritable(path, false))

	require.NoError(t, os.WriteFile(path, []byte("title: x\n"), 0o644))
	err := checkConfigWritable(path, false)
	assert.ErrorContains(t, err, "--force")
	assert.NoError(t, checkConfigWritable(path, true))
}
