// Command mdserve serves an embedded markdown site.
package main

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/infinit-lab/yolanda/config"
	"github.com/infinit-lab/yolanda/logutils"

	"dqx0.com/go/reqwire/internal/obs"
	"dqx0.com/go/reqwire/internal/site"
	"dqx0.com/go/reqwire/reqx"
)

//go:embed pages
var pagesFS embed.FS

//go:embed templates
var templatesFS embed.FS

func main() {
	port := config.GetInt("server.port")
	if port == 0 {
		port = 3000
	}

	pages, err := fs.Sub(pagesFS, "pages")
	if err != nil {
		logutils.Error("Failed to open pages. error: ", err)
		return
	}
	templates, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		logutils.Error("Failed to open templates. error: ", err)
		return
	}

	logger := obs.YolandaLogger{}
	s := &reqx.Server{
		Addr: fmt.Sprintf("0.0.0.0:%d", port),
		Handler: &site.Handler{
			Pages:     site.FSStore{FS: pages},
			Templates: site.FSStore{FS: templates},
			Logger:    logger,
		},
		ParseOptions: reqx.Options{Logger: logger},
	}
	logutils.Info("Serving markdown site on port ", port)
	if err := s.ListenAndServe(); err != nil {
		logutils.Error("Failed to Listen. error: ", err)
	}
}
