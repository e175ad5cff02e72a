package site

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os/exec"
	"runtime"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sxsun/folio/internal/article"
	"github.com/sxsun/folio/internal/catalog"
)

// pageData is passed to every full page.
type pageData struct {
	SiteTitle string
	Title     string
	Greeting  string
	Nav       []navLink
	Query     string
	Content   any
}

type homeContent struct {
	Owner   string
	Profile catalog.Profile
}

type categoryContent struct {
	Name    string
	News    []catalog.NewsItem
	Message string
	Failed  bool
}

type searchContent struct {
	Query   string
	Results []catalog.Article
}

type articleContent struct {
	ID    string
	Title string
	Meta  catalog.Article
	Found bool
	Body  template.HTML
}

// Routes mounts the site on r.
func (s *Site) Routes(r chi.Router) {
	r.Get("/", s.handleHome)
	r.Get("/category/articles", s.handleArticles)
	r.Get("/category/workshop", s.handleWorkshop)
	r.Get("/category/photos", s.handlePhotos)
	r.Get("/category/contacts", s.handleContacts)
	r.Get("/category/{name}", s.handleCategory)
	r.Get("/search", s.handleSearch)
	r.Get("/articles/*", s.handleArticle)
	r.Get("/fragments/articles/*", s.handleFragment)
	r.Get("/static/style.css", serveAsset("text/css; charset=utf-8", cssContent))
	r.Get("/static/script.js", serveAsset("text/javascript; charset=utf-8", jsContent))
	r.Handle("/imgs/*", s.imagesHandler())
}

// Handler returns a standalone router serving only the site routes.
func (s *Site) Handler() http.Handler {
	r := chi.NewRouter()
	s.Routes(r)
	return r
}

func (s *Site) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "home", s.opts.Owner, homeContent{
		Owner:   s.opts.Owner,
		Profile: s.opts.Catalog.Profile,
	})
}

func (s *Site) handleArticles(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "articles", "Articles", s.opts.Catalog.Articles)
}

func (s *Site) handleWorkshop(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "workshop", "My Projects", s.opts.Catalog.Projects)
}

func (s *Site) handlePhotos(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "photos", "Photo Gallery", s.opts.Catalog.Albums)
}

func (s *Site) handleContacts(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "contacts", "Contact Me", s.opts.Catalog.Contacts)
}

func (s *Site) handleCategory(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	content := categoryContent{Name: name}

	switch {
	case s.opts.Feed == nil:
		content.Failed = true
		content.Message = catalog.FeedErrorMessage
	default:
		news, err := s.opts.Feed.News(r.Context(), name)
		if err != nil {
			s.log.Warn("category feed failed", zap.String("category", name), zap.Error(err))
			content.Failed = true
			content.Message = catalog.FeedErrorMessage
		} else if len(news) == 0 {
			content.Message = catalog.FeedEmptyMessage
		}
		content.News = news
	}
	s.render(w, r, http.StatusOK, "category", name, content)
}

func (s *Site) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	s.render(w, r, http.StatusOK, "search", "Search", searchContent{
		Query:   q,
		Results: s.opts.Catalog.Search(q),
	})
}

// handleArticle serves articles/<id>.md as a static asset and renders
// anything else as the full-page viewer.
func (s *Site) handleArticle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "*")
	if strings.HasSuffix(id, ".md") {
		s.serveMarkdown(w, r, id)
		return
	}

	content, err := s.loadArticle(r, article.Page, id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	status := http.StatusOK
	if !content.Found {
		status = http.StatusNotFound
	}
	s.render(w, r, status, "article", content.Title, content)
}

// handleFragment renders the modal variant without the page chrome.
func (s *Site) handleFragment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "*")
	content, err := s.loadArticle(r, article.Modal, id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	status := http.StatusOK
	if !content.Found {
		status = http.StatusNotFound
	}
	s.execute(w, r, status, "fragment", content)
}

// loadArticle runs one viewer session for the request: retrieve, parse and
// render. Nothing is kept once the response is written.
func (s *Site) loadArticle(r *http.Request, v article.Variant, id string) (articleContent, error) {
	session := article.NewSession(s.opts.Loader.WithVariant(v), s.log)
	defer session.Close()

	doc, ok := session.Show(r.Context(), id)
	if !ok {
		return articleContent{}, fmt.Errorf("article %s: result discarded", id)
	}
	body, err := s.opts.Renderer.Render(doc)
	if err != nil {
		return articleContent{}, err
	}

	parsed := article.Parse(doc)
	content := articleContent{
		ID:    doc.Ref.String(),
		Title: parsed.Title,
		Found: doc.Found,
		Body:  body,
	}
	if meta, ok := s.opts.Catalog.Find(id); ok {
		content.Meta = meta
		content.Title = meta.Title
	}
	return content, nil
}

// serveMarkdown serves the raw asset from the content root.
func (s *Site) serveMarkdown(w http.ResponseWriter, r *http.Request, name string) {
	ref, err := article.ParseRef(strings.TrimSuffix(name, ".md"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	data, err := fs.ReadFile(s.opts.Content, ref.Path())
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn("reading article asset", zap.String("path", ref.Path()), zap.Error(err))
		}
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	_, _ = w.Write(data)
}

func (s *Site) imagesHandler() http.Handler {
	imgs, err := fs.Sub(s.opts.Content, "imgs")
	if err != nil {
		return http.NotFoundHandler()
	}
	return http.StripPrefix("/imgs/", http.FileServerFS(imgs))
}

func serveAsset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-cache")
		_, _ = w.Write([]byte(body))
	}
}

func (s *Site) render(w http.ResponseWriter, r *http.Request, status int, page, title string, content any) {
	s.execute(w, r, status, page, pageData{
		SiteTitle: s.opts.Title,
		Title:     title,
		Greeting:  greeting(s.opts.Now().Hour()),
		Nav:       navFor(r.URL.Path),
		Query:     r.URL.Query().Get("q"),
		Content:   content,
	})
}

// execute renders into a buffer first so a template error still produces a
// clean 500.
func (s *Site) execute(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	tmpl, ok := s.pages[page]
	if !ok {
		s.fail(w, r, errors.New("unknown page "+page))
		return
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Site) fail(w http.ResponseWriter, r *http.Request, err error) {
	if ctxErr := r.Context().Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		return
	}
	s.log.Error("rendering page", zap.String("path", r.URL.Path), zap.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// OpenBrowser opens the given URL in the default browser.
func OpenBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}
