// Package markdown renders article content to HTML safe to hand to the
// public site.
package markdown

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	md = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// Render converts markdown to sanitized HTML. Content written through the
// admin UI is trusted-ish, but it is stored verbatim, so scripts and event
// handlers are stripped on the way out.
func Render(content string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	return sanitizer.Sanitize(buf.String()), nil
}
