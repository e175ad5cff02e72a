package article

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session is one viewer instance. Its retrievals are scoped to its lifetime:
// a newer request cancels the older one and only the newest result is kept.
// Sessions share nothing, so a new Session always fetches again.
type Session struct {
	id     string
	loader *Loader
	logger *zap.Logger

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	doc    Document
	hasDoc bool
	closed bool
}

// Request is a retrieval handed out by Session.Request.
type Request struct {
	gen        uint64
	identifier string
	ctx        context.Context
}

// Identifier returns the article identifier the request was made for.
func (r Request) Identifier() string { return r.identifier }

// Result is the outcome of Session.Run, to be passed to Session.Apply.
type Result struct {
	gen      uint64
	Document Document
}

// NewSession creates a Session loading through loader.
func NewSession(loader *Loader, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.NewString()
	return &Session{
		id:     id,
		loader: loader,
		logger: logger.With(zap.String("viewer", id), zap.Stringer("variant", loader.Variant())),
	}
}

// ID identifies the session in logs.
func (s *Session) ID() string { return s.id }

// Request starts a retrieval for identifier and supersedes any in-flight one.
func (s *Session) Request(ctx context.Context, identifier string) Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	s.gen++
	reqCtx, cancel := context.WithCancel(ctx)
	if s.closed {
		cancel()
	}
	s.cancel = cancel

	s.logger.Debug("article requested", zap.String("article", identifier), zap.Uint64("generation", s.gen))
	return Request{gen: s.gen, identifier: identifier, ctx: reqCtx}
}

// Run performs the retrieval for req. It blocks and is safe to call from any
// goroutine.
func (s *Session) Run(req Request) Result {
	return Result{gen: req.gen, Document: s.loader.Load(req.ctx, req.identifier)}
}

// Apply installs res if it answers the newest request of an open session.
// It reports whether the result was kept.
func (s *Session) Apply(res Result) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || res.gen != s.gen {
		s.logger.Debug("stale article result discarded",
			zap.String("article", res.Document.Ref.String()),
			zap.Uint64("generation", res.gen))
		return false
	}
	s.doc = res.Document
	s.hasDoc = true
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	return true
}

// Show requests, retrieves and applies in one call.
func (s *Session) Show(ctx context.Context, identifier string) (Document, bool) {
	res := s.Run(s.Request(ctx, identifier))
	if !s.Apply(res) {
		return Document{}, false
	}
	return res.Document, true
}

// Current returns the displayed document, if any.
func (s *Session) Current() (Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc, s.hasDoc
}

// Close ends the session. In-flight retrievals are cancelled and their
// results discarded; the document is dropped.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.closed = true
	s.doc = Document{}
	s.hasDoc = false
}

// Closed reports whether Close has been called.
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
