package site

import (
	"html/template"
	"strings"
)

var templateFuncs = template.FuncMap{
	"inc":  func(i int) int { return i + 1 },
	"join": strings.Join,
}

// layoutTemplate wraps every full page: navbar with greeting, search bar and
// the page's "content" block.
const layoutTemplate = `{{define "layout"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} | {{.SiteTitle}}</title>
  <link rel="stylesheet" href="/static/style.css">
</head>
<body>
  <nav class="navbar">
    <div class="navbar-inner">
      <span class="greeting">{{.Greeting}}</span>
      <button class="menu-toggle" id="menu-toggle" type="button" aria-label="Toggle menu">&#9776;</button>
      <ul class="nav-links" id="nav-links">
        {{range .Nav}}<li><a href="{{.Path}}"{{if .Active}} class="active" aria-current="page"{{end}}>{{.Name}}</a></li>
        {{end}}
      </ul>
    </div>
  </nav>
  <form class="searchbar" action="/search" method="get" role="search">
    <input type="text" name="q" value="{{.Query}}" placeholder="Search keywords..." autocomplete="off">
    <button type="submit">Search</button>
  </form>
  <main>
    {{template "content" .Content}}
  </main>
  <div class="toast" id="toast" role="status" aria-live="polite"></div>
  <script src="/static/script.js"></script>
</body>
</html>{{end}}`

var pageTemplates = map[string]string{
	"home":     homeTemplate,
	"articles": articlesTemplate,
	"workshop": workshopTemplate,
	"photos":   photosTemplate,
	"contacts": contactsTemplate,
	"category": categoryTemplate,
	"search":   searchTemplate,
	"article":  articleTemplate,
}

const homeTemplate = `{{define "content"}}<section class="home">
  <div class="avatar-wrap"><img class="avatar" src="{{.Profile.Avatar}}" alt="{{.Owner}}"></div>
  <div class="intro-card">
    <h1 class="headline">{{.Profile.Headline}}</h1>
    <p class="welcome">{{.Profile.Welcome}}</p>
    <p class="bio">{{.Profile.Bio}}</p>
    <p class="education">{{.Profile.Education}}</p>
    <p class="signature">{{.Profile.Signature}}</p>
    <div class="social">
      {{range .Profile.Social}}<a href="{{.Link}}" target="_blank" rel="noopener noreferrer">{{.Name}}</a>
      {{end}}
    </div>
  </div>
</section>{{end}}`

const articlesTemplate = `{{define "content"}}<section class="articles">
  <h1 class="page-title">Articles</h1>
  <div class="grid">
    {{range .}}<a class="card article-card" href="/articles/{{.ID}}" data-article="{{.ID}}">
      <h2>{{.Title}}</h2>
      {{if .Date}}<p class="date">{{.Date}}</p>{{end}}
      <div class="tags">{{range .Tags}}<span class="tag">{{.}}</span>{{end}}</div>
    </a>
    {{else}}<p class="muted">No articles yet.</p>
    {{end}}
  </div>
</section>{{end}}`

const workshopTemplate = `{{define "content"}}<section class="workshop">
  <h1 class="page-title center">My Projects</h1>
  <div class="grid">
    {{range .}}<div class="card project-card">
      <img src="{{.Image}}" alt="{{.Name}}">
      <h2>{{.Name}}</h2>
      <p>{{.Description}}</p>
      <a class="button" href="{{.Link}}" target="_blank" rel="noopener noreferrer">View Project</a>
    </div>
    {{end}}
  </div>
</section>{{end}}`

const photosTemplate = `{{define "content"}}<section class="photos">
  <h1 class="page-title center gradient">Photo Gallery</h1>
  <div class="grid">
    {{range .}}<div class="card album">
      <div class="carousel" data-carousel>
        {{$title := .Title}}{{range $i, $img := .Images}}<img src="{{$img}}" alt="{{$title}} - {{inc $i}}"{{if $i}} hidden{{end}}>
        {{end}}
      </div>
      <h2>{{.Title}}</h2>
      <p>{{.Description}}</p>
    </div>
    {{end}}
  </div>
</section>{{end}}`

const contactsTemplate = `{{define "content"}}<section class="contacts">
  <h1 class="page-title center gradient">Contact Me</h1>
  <div class="grid">
    {{range .}}<a class="card contact-card accent-{{.Accent}}" href="{{.Link}}" target="_blank" rel="noopener noreferrer">
      <h2>{{.Name}}</h2>
      <p>{{.DisplayText}}</p>
    </a>
    {{end}}
  </div>
</section>{{end}}`

const categoryTemplate = `{{define "content"}}<section class="category">
  <div class="panel">
    <h2 class="category-name">{{.Name}}</h2>
    {{if .Failed}}<p class="error">{{.Message}}</p>
    {{else if .News}}<ul class="news">
      {{range .News}}<li>{{.Title}}</li>
      {{end}}
    </ul>
    {{else}}<p class="muted">{{.Message}}</p>
    {{end}}
  </div>
</section>{{end}}`

const searchTemplate = `{{define "content"}}<section class="search">
  <h1 class="page-title">Search</h1>
  {{if .Query}}{{if .Results}}<ul class="results">
    {{range .Results}}<li><a href="/articles/{{.ID}}">{{.Title}}</a>{{if .Tags}} <span class="muted">{{join .Tags ", "}}</span>{{end}}</li>
    {{end}}
  </ul>
  {{else}}<p class="muted">No articles match "{{.Query}}".</p>{{end}}
  {{else}}<p class="muted">Type a keyword to search articles.</p>{{end}}
</section>{{end}}`

const articleTemplate = `{{define "content"}}<section class="article-page">
  {{if .Meta.Date}}<p class="date">{{.Meta.Date}}</p>{{end}}
  <article class="article-body" data-article="{{.ID}}">
    {{.Body}}
  </article>
</section>{{end}}`

// fragmentTemplate is the modal variant, inserted into the overlay by
// script.js.
const fragmentTemplate = `{{define "layout"}}<div class="modal" role="dialog" aria-modal="true"{{if .ID}} data-article="{{.ID}}"{{end}}>
  <button class="modal-close" type="button" aria-label="Close">&times;</button>
  <article class="article-body">
    {{.Body}}
  </article>
</div>{{end}}`
