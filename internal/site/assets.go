package site

// cssContent is the stylesheet served at /static/style.css.
const cssContent = `:root {
  --bg: #0b0b0f;
  --surface: #1f2937;
  --surface-2: #111827;
  --border: #374151;
  --text: #f3f4f6;
  --muted: #9ca3af;
  --accent: #a78bfa;
  --accent-strong: #7c3aed;
  --danger: #f87171;
  --radius: 12px;
  --font: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
  --mono: "SFMono-Regular", Menlo, Consolas, "Liberation Mono", monospace;
}

* { box-sizing: border-box; }
body { margin: 0; background: var(--bg); color: var(--text); font-family: var(--font); line-height: 1.6; }
a { color: inherit; }
img { max-width: 100%; }
main { padding: 2rem 2.5rem 4rem; }
.muted { color: var(--muted); }
.center { text-align: center; }

/* ============ Navbar ============ */
.navbar { position: sticky; top: 0; z-index: 50; background: #121212; border-bottom: 1px solid var(--border); padding: 1rem 0; }
.navbar-inner { max-width: 1200px; margin: 0 auto; padding: 0 1rem; display: flex; align-items: center; justify-content: space-between; }
.greeting { font-size: 1.5rem; font-weight: 700; }
.nav-links { display: flex; gap: 2rem; list-style: none; margin: 0; padding: 0; }
.nav-links a { text-decoration: none; font-size: 1.125rem; font-weight: 600; color: #e5e7eb; transition: color .3s; }
.nav-links a:hover { color: #fff; }
.nav-links a.active { background: linear-gradient(90deg, #60a5fa, #a855f7, #ec4899); -webkit-background-clip: text; background-clip: text; color: transparent; }
.menu-toggle { display: none; background: none; border: 0; color: #d1d5db; font-size: 1.75rem; cursor: pointer; }
@media (max-width: 768px) {
  .menu-toggle { display: block; }
  .nav-links { display: none; position: absolute; top: 100%; left: 0; right: 0; flex-direction: column; gap: 0; background: #121212; border-top: 1px solid var(--border); padding: 1rem; }
  .nav-links.open { display: flex; }
  .nav-links li { padding: .5rem 0; }
}

/* ============ Search ============ */
.searchbar { display: flex; gap: .5rem; max-width: 1200px; margin: 2rem auto 0; padding: .5rem 1rem; background: #fff; border-radius: 1rem; box-shadow: 0 10px 15px rgba(0,0,0,.3); }
.searchbar input { flex: 1; height: 40px; border: 0; outline: none; font-size: 1rem; color: #1f2937; background: transparent; }
.searchbar button { height: 40px; padding: 0 1.25rem; border: 0; border-radius: 8px; color: #fff; background: linear-gradient(90deg, #8b5cf6, #a855f7); cursor: pointer; }

/* ============ Pages ============ */
.page-title { font-size: 2.5rem; font-weight: 800; margin: 0 0 2rem; }
.gradient { background: linear-gradient(90deg, #c084fc, #ec4899, #ef4444); -webkit-background-clip: text; background-clip: text; color: transparent; }
.grid { display: grid; gap: 1.5rem; grid-template-columns: repeat(auto-fill, minmax(300px, 1fr)); }
.card { display: block; background: var(--surface); border-radius: var(--radius); padding: 1.5rem; box-shadow: 0 10px 15px rgba(0,0,0,.4); text-decoration: none; transition: transform .3s; }
.card:hover { transform: scale(1.03); }
.card h2 { margin: .5rem 0; color: var(--accent); }
.date { color: var(--muted); margin: .5rem 0; }
.tag { display: inline-block; margin: .25rem .5rem 0 0; padding: .25rem .75rem; font-size: .875rem; background: var(--accent-strong); border-radius: 9999px; }
.project-card img { width: 100%; height: 12rem; object-fit: cover; border-radius: 8px; }
.button { display: inline-block; margin-top: 1rem; padding: .5rem 1rem; background: var(--accent-strong); color: #fff; border-radius: 8px; text-decoration: none; }
.carousel { height: 18rem; border-radius: var(--radius); overflow: hidden; }
.carousel img { width: 100%; height: 100%; object-fit: cover; }
.contact-card { text-align: center; }
.accent-red h2 { color: #f87171; }
.accent-blue h2 { color: #3b82f6; }
.accent-purple h2 { color: #c084fc; }

.home { display: flex; flex-direction: column; align-items: center; }
.avatar { width: 12rem; height: 12rem; border-radius: 50%; object-fit: cover; border: 6px solid #d1d5db; margin: 2rem 0; }
.intro-card { max-width: 48rem; text-align: center; background: rgba(255,255,255,.1); border-radius: 1.5rem; padding: 2.5rem; }
.headline { font-size: 3rem; font-weight: 800; background: linear-gradient(90deg, #c084fc, #ec4899); -webkit-background-clip: text; background-clip: text; color: transparent; margin: 0; }
.welcome { font-size: 1.25rem; }
.education { color: var(--muted); font-style: italic; }
.signature { color: #facc15; font-weight: 600; font-size: 1.5rem; }
.social { display: flex; gap: 1rem; justify-content: center; }
.social a { color: var(--muted); }

.category .panel { max-width: 48rem; margin: 0 auto; background: rgba(255,255,255,.1); border: 1px solid rgba(255,255,255,.2); border-radius: 1rem; padding: 2rem; }
.category-name { font-size: 2.25rem; text-transform: capitalize; margin: 0; }
.news { list-style: none; padding: 0; }
.news li { padding: .75rem 1rem; border-bottom: 1px solid #4b5563; }
.news li:last-child { border-bottom: 0; }
.error { color: var(--danger); }
.results li { margin: .5rem 0; }

/* ============ Article viewer ============ */
.article-page { max-width: 56rem; margin: 0 auto; }
.article-body { color: #d1d5db; }
.article-h1 { font-size: 2.25rem; font-weight: 700; color: #f3f4f6; margin: 1.5rem 0 1rem; }
.article-h2 { font-size: 1.875rem; font-weight: 600; color: #e5e7eb; margin: 1.25rem 0 .75rem; }
.article-h3 { font-size: 1.5rem; font-weight: 500; color: #d1d5db; margin: 1rem 0 .5rem; }
.article-strong { font-weight: 700; color: #fff; }
.article-ul { list-style: disc; padding-left: 1.5rem; }
.article-ol { list-style: decimal; padding-left: 1.5rem; }
.article-ul li::marker, .article-ol li::marker { color: #6b7280; }
.inline-code { font-family: var(--mono); background: #374151; color: #f9fafb; padding: .1rem .35rem; border-radius: 4px; }
pre.plain-code { background: #374151; padding: 1rem; border-radius: 8px; overflow-x: auto; }
pre.plain-code .inline-code { padding: 0; }
.code-block { position: relative; margin: 1rem 0; }
.code-block pre { padding: 1rem; border-radius: 8px; overflow-x: auto; font-family: var(--mono); }
.copy-button { position: absolute; top: .5rem; right: .5rem; padding: .25rem .75rem; font-size: .75rem; color: #fff; background: #4b5563; border: 0; border-radius: 6px; cursor: pointer; opacity: .8; }
.copy-button:hover { opacity: 1; background: #6b7280; }
.article-body table { border-collapse: collapse; }
.article-body th, .article-body td { border: 1px solid var(--border); padding: .4rem .8rem; }
.article-body a { color: var(--accent); }

/* ============ Modal ============ */
body.modal-open { overflow: hidden; }
.modal-overlay { position: fixed; inset: 0; z-index: 100; display: flex; align-items: center; justify-content: center; background: rgba(0,0,0,.7); padding: 2rem; }
.modal { position: relative; width: 100%; max-width: 56rem; max-height: 90vh; overflow-y: auto; background: var(--surface-2); border-radius: var(--radius); padding: 2rem; }
.modal-close { position: absolute; top: .75rem; right: 1rem; background: none; border: 0; color: var(--muted); font-size: 1.75rem; cursor: pointer; }
.modal-close:hover { color: #fff; }
.loading { color: #93c5fd; }

/* ============ Toast ============ */
.toast { position: fixed; bottom: 1.5rem; left: 50%; transform: translateX(-50%); padding: .75rem 1.25rem; border-radius: 8px; background: #111827; border: 1px solid var(--border); opacity: 0; pointer-events: none; transition: opacity .3s; z-index: 200; }
.toast.show { opacity: 1; }
.toast.error { border-color: var(--danger); color: var(--danger); }
`

// jsContent is the client script served at /static/script.js. It drives the
// mobile menu, the photo carousels, the article modal and the copy buttons.
const jsContent = `(function () {
  'use strict';

  var COPIED = 'Code copied to clipboard!';
  var COPY_FAILED = 'Failed to copy. Please try manually.';
  var NOT_FOUND = '<div class="modal"><button class="modal-close" type="button" aria-label="Close">&times;</button>' +
    '<article class="article-body"><h1 class="article-h1">404 - Article Not Found</h1></article></div>';

  // Mobile menu.
  var toggle = document.getElementById('menu-toggle');
  var links = document.getElementById('nav-links');
  if (toggle && links) {
    toggle.addEventListener('click', function () { links.classList.toggle('open'); });
  }

  // Photo carousels rotate every 3s.
  document.querySelectorAll('[data-carousel]').forEach(function (el) {
    var imgs = el.querySelectorAll('img');
    if (imgs.length < 2) return;
    var i = 0;
    setInterval(function () {
      imgs[i].hidden = true;
      i = (i + 1) % imgs.length;
      imgs[i].hidden = false;
    }, 3000);
  });

  // Toast.
  var toastTimer = null;
  function toast(message, isError) {
    var el = document.getElementById('toast');
    if (!el) return;
    el.textContent = message;
    el.classList.toggle('error', !!isError);
    el.classList.add('show');
    clearTimeout(toastTimer);
    toastTimer = setTimeout(function () { el.classList.remove('show'); }, 2000);
  }

  // Article modal. Each open bumps seq and aborts the previous request, so
  // only the newest response is ever shown. Closing removes the overlay.
  var seq = 0;
  var controller = null;

  function encodePath(id) {
    return id.split('/').map(encodeURIComponent).join('/');
  }

  function closeModal() {
    seq++;
    if (controller) {
      controller.abort();
      controller = null;
    }
    var overlay = document.querySelector('.modal-overlay');
    if (overlay) overlay.remove();
    document.body.classList.remove('modal-open');
  }

  function openModal(id) {
    closeModal();
    var mine = seq;
    controller = new AbortController();

    var overlay = document.createElement('div');
    overlay.className = 'modal-overlay';
    overlay.innerHTML = '<div class="modal"><p class="loading">Loading...</p></div>';
    document.body.appendChild(overlay);
    document.body.classList.add('modal-open');

    fetch('/fragments/articles/' + encodePath(id), { signal: controller.signal })
      .then(function (resp) { return resp.text(); })
      .then(function (html) {
        if (mine !== seq) return;
        overlay.innerHTML = html;
      })
      .catch(function (err) {
        if (err.name === 'AbortError' || mine !== seq) return;
        overlay.innerHTML = NOT_FOUND;
      });
  }

  function copyCode(button) {
    var text = button.getAttribute('data-copy') || '';
    if (!navigator.clipboard) {
      toast(COPY_FAILED, true);
      return;
    }
    navigator.clipboard.writeText(text).then(function () {
      toast(COPIED, false);
      button.textContent = 'Copied!';
      setTimeout(function () { button.textContent = 'Copy'; }, 2000);
    }, function () {
      toast(COPY_FAILED, true);
    });
  }

  document.addEventListener('click', function (e) {
    var target = e.target;
    var copy = target.closest('.copy-button');
    if (copy) {
      e.preventDefault();
      copyCode(copy);
      return;
    }
    if (target.closest('.modal-close') || target.classList.contains('modal-overlay')) {
      closeModal();
      return;
    }
    var card = target.closest('.article-card');
    if (card && !e.metaKey && !e.ctrlKey) {
      e.preventDefault();
      openModal(card.getAttribute('data-article'));
    }
  });

  document.addEventListener('keydown', function (e) {
    if (e.key === 'Escape') closeModal();
  });
})();
`
