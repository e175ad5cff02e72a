package article

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// gatedFetcher blocks each fetch until its identifier's gate is released.
type gatedFetcher struct {
	mu    sync.Mutex
	gates map[string]chan struct{}
}

func newGatedFetcher(ids ...string) *gatedFetcher {
	g := &gatedFetcher{gates: map[string]chan struct{}{}}
	for _, id := range ids {
		g.gates[id] = make(chan struct{})
	}
	return g
}

func (g *gatedFetcher) release(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	close(g.gates[id])
}

func (g *gatedFetcher) Fetch(ctx context.Context, ref Ref) (string, error) {
	g.mu.Lock()
	gate := g.gates[ref.String()]
	g.mu.Unlock()
	<-gate
	return "# " + ref.String(), nil
}

func TestSessionShow(t *testing.T) {
	s := NewSession(NewLoader(newFakeFetcher(map[string]string{"a": "# A"}), Page, nil), zaptest.NewLogger(t))

	_, ok := s.Current()
	assert.False(t, ok)

	doc, ok := s.Show(context.Background(), "a")
	require.True(t, ok)
	assert.Equal(t, "# A", doc.Body)

	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, doc, cur)
	assert.NotEmpty(t, s.ID())
}

func TestSessionNewestRequestWins(t *testing.T) {
	fetcher := newGatedFetcher("a", "b")
	s := NewSession(NewLoader(fetcher, Page, nil), zaptest.NewLogger(t))

	reqA := s.Request(context.Background(), "a")
	reqB := s.Request(context.Background(), "b")

	results := make(chan Result, 2)
	var wg sync.WaitGroup
	for _, req := range []Request{reqA, reqB} {
		wg.Add(1)
		go func(req Request) {
			defer wg.Done()
			results <- s.Run(req)
		}(req)
	}

	// b resolves first, then the older a.
	fetcher.release("b")
	resB := <-results
	fetcher.release("a")
	resA := <-results
	wg.Wait()

	assert.True(t, s.Apply(resB))
	assert.False(t, s.Apply(resA))

	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "# b", cur.Body)
}

func TestSessionSupersededRequestIsCancelled(t *testing.T) {
	s := NewSession(NewLoader(newFakeFetcher(nil), Modal, nil), nil)

	first := s.Request(context.Background(), "a")
	s.Request(context.Background(), "b")

	assert.ErrorIs(t, first.ctx.Err(), context.Canceled)
	assert.Equal(t, "a", first.Identifier())
}

func TestSessionClose(t *testing.T) {
	fetcher := newFakeFetcher(map[string]string{"a": "# A"})
	loader := NewLoader(fetcher, Modal, nil)

	s := NewSession(loader, nil)
	_, ok := s.Show(context.Background(), "a")
	require.True(t, ok)

	pending := s.Request(context.Background(), "a")
	s.Close()
	assert.True(t, s.Closed())
	assert.ErrorIs(t, pending.ctx.Err(), context.Canceled)

	_, ok = s.Current()
	assert.False(t, ok)
	assert.False(t, s.Apply(s.Run(pending)))

	// A reopened viewer is a new session and fetches again.
	reopened := NewSession(loader, nil)
	doc, ok := reopened.Show(context.Background(), "a")
	require.True(t, ok)
	assert.Equal(t, "# A", doc.Body)
	assert.Equal(t, 3, fetcher.count("a"))
	assert.NotEqual(t, s.ID(), reopened.ID())
}
