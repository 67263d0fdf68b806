package site

import (
	"bytes"
	"mime"
	"path"
	"strings"

	"github.com/yuin/goldmark"
)

// Expand substitutes {name} placeholders in a template.
func Expand(template string, vars map[string]string) string {
	for name, value := range vars {
		template = strings.ReplaceAll(template, "{"+name+"}", value)
	}
	return template
}

// RenderMarkdown converts Markdown source to an HTML fragment.
func RenderMarkdown(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert(src, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// contentType maps a file path to a MIME type by extension.
func contentType(p string) string {
	if ct := mime.TypeByExtension(path.Ext(p)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
