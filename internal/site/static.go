package site

import (
	"path"
	"strings"

	"dqx0.com/go/reqwire/reqx"
)

// Static serves raw files from a Store with an index.html fallback for
// directory-style paths. No rendering, no templates.
type Static struct {
	Files Store
}

func (s *Static) ServeHTTP(w reqx.ResponseWriter, r *reqx.Request) {
	reqPath := strings.TrimPrefix(r.Path(), "/")
	clean := path.Clean(reqPath)
	if clean == ".." || strings.HasPrefix(clean, "../") {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(403)
		_, _ = w.Write([]byte("403 - Forbidden"))
		return
	}
	if clean == "." || clean == "" {
		clean = "index.html"
	}
	data, ok := s.Files.Get(clean)
	if !ok {
		data, ok = s.Files.Get(clean + "/index.html")
		if ok {
			clean += "/index.html"
		}
	}
	if !ok {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(404)
		_, _ = w.Write([]byte("404 - File Not Found"))
		return
	}
	w.Header().Set("Content-Type", contentType(clean))
	w.WriteHeader(200)
	_, _ = w.Write(data)
}
