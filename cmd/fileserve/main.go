// Command fileserve serves a directory of static files and exposes
// /debug/request, which echoes the parsed view of the incoming request.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/infinit-lab/yolanda/config"
	"github.com/infinit-lab/yolanda/logutils"

	"dqx0.com/go/reqwire/internal/obs"
	"dqx0.com/go/reqwire/internal/site"
	"dqx0.com/go/reqwire/reqx"
)

func main() {
	root := flag.String("root", "./public", "directory to serve")
	flag.Parse()

	port := config.GetInt("server.port")
	if port == 0 {
		port = 8080
	}

	logger := obs.YolandaLogger{}
	static := &site.Static{
		Files: site.FSStore{FS: os.DirFS(*root)},
	}
	s := &reqx.Server{
		Addr: fmt.Sprintf("0.0.0.0:%d", port),
		Handler: reqx.HandlerFunc(func(w reqx.ResponseWriter, r *reqx.Request) {
			if r.Path() == "/debug/request" {
				debugRequest(w, r)
				return
			}
			static.ServeHTTP(w, r)
		}),
		ParseOptions: reqx.Options{Logger: logger},
	}
	logutils.Info("Serving ", *root, " on port ", port)
	if err := s.ListenAndServe(); err != nil {
		logutils.Error("Failed to Listen. error: ", err)
	}
}

// debugRequest walks every derived view the parser offers.
func debugRequest(w reqx.ResponseWriter, r *reqx.Request) {
	info := map[string]interface{}{
		"method":  r.Method(),
		"path":    r.Path(),
		"version": r.VersionString(),
		"query":   r.Query(),
		"headers": r.Headers(),
		"cookies": r.Cookies(),
		"chunked": r.IsChunked(),
	}
	if ct, ok := r.ContentType(); ok {
		info["content_type"] = ct
		info["content_type_params"] = r.ContentTypeParams()
	}
	if cs, ok := r.Charset(); ok {
		info["charset"] = cs
	}
	if r.IsFormData() {
		info["form"] = r.FormData()
	}
	if v, ok := r.JSON(); ok {
		info["json"] = v
	}
	b, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(500)
		_, _ = w.Write([]byte("500 - Internal Server Error"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)
	_, _ = w.Write(b)
}
