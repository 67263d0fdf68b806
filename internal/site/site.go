// Package site is the demo scaffolding around the parser: a markdown page
// server and a plain static file server, both consuming parsed requests.
package site

import (
	"fmt"
	"path"
	"strings"

	"dqx0.com/go/reqwire/internal/obs"
	"dqx0.com/go/reqwire/reqx"
)

// Handler serves a markdown site. Pages holds one directory per page with
// an index.md inside (plus any assets); Templates holds the HTML shells
// "index.html" ({links}), "page.html" ({content}) and "404.html".
type Handler struct {
	Pages     Store
	Templates Store
	Logger    obs.Logger
}

func (h *Handler) ServeHTTP(w reqx.ResponseWriter, r *reqx.Request) {
	reqPath := strings.TrimPrefix(r.Path(), "/")
	if reqPath == "" {
		h.serveHome(w)
		return
	}
	clean := path.Clean(reqPath)
	if clean == ".." || strings.HasPrefix(clean, "../") {
		h.serveError(w, 403, "403 - Forbidden")
		return
	}

	name, rest, _ := strings.Cut(clean, "/")
	filePath := clean
	if rest == "" {
		filePath = name + "/index.md"
	}
	data, ok := h.Pages.Get(filePath)
	if !ok {
		h.serveNotFound(w)
		return
	}

	if strings.HasSuffix(filePath, ".md") {
		html, err := RenderMarkdown(data)
		if err != nil {
			h.logf(obs.Error, "render %s: %v", filePath, err)
			h.serveError(w, 500, "500 - Internal Server Error")
			return
		}
		// Page-relative asset links become site-absolute under the page name.
		html = strings.ReplaceAll(html, "/assets/", "/"+name+"/assets/")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(200)
		_, _ = w.Write([]byte(h.expandTemplate("page.html", map[string]string{"content": html})))
		return
	}

	w.Header().Set("Content-Type", contentType(filePath))
	w.WriteHeader(200)
	_, _ = w.Write(data)
}

// serveHome lists every page directory that carries an index.md.
func (h *Handler) serveHome(w reqx.ResponseWriter) {
	var links strings.Builder
	for _, p := range h.Pages.List() {
		if !strings.HasSuffix(p, "/index.md") {
			continue
		}
		name := strings.TrimSuffix(p, "/index.md")
		fmt.Fprintf(&links, `<li><a href="/%s">%s</a></li>`, name, name)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(200)
	_, _ = w.Write([]byte(h.expandTemplate("index.html", map[string]string{"links": links.String()})))
}

func (h *Handler) serveNotFound(w reqx.ResponseWriter) {
	body, ok := h.Templates.Get("404.html")
	if !ok {
		h.serveError(w, 404, "404 - Page Not Found")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(404)
	_, _ = w.Write(body)
}

func (h *Handler) serveError(w reqx.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(body))
}

func (h *Handler) expandTemplate(name string, vars map[string]string) string {
	shell, ok := h.Templates.Get(name)
	if !ok {
		h.logf(obs.Error, "template %s missing", name)
		// Degrade to the bare content so the page still renders.
		for _, v := range vars {
			return v
		}
		return ""
	}
	return Expand(string(shell), vars)
}

func (h *Handler) logf(level obs.Level, format string, args ...interface{}) {
	if h.Logger != nil {
		h.Logger.Logf(level, format, args...)
	}
}
