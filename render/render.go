// Package render is the content-rendering collaborator: it turns stored post
// content into HTML that is safe to serve. The rest of the system only ever
// calls HTML and never inspects markup itself.
package render

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"plume/models"
)

type Renderer struct {
	md       goldmark.Markdown
	sanitize *bluemonday.Policy
}

func New() *Renderer {
	return &Renderer{
		md:       goldmark.New(goldmark.WithExtensions(extension.GFM)),
		sanitize: bluemonday.UGCPolicy(),
	}
}

// HTML renders post content to sanitized HTML. Markdown is converted first;
// HTML content is sanitized as-is.
func (r *Renderer) HTML(contentType models.ContentType, content string) (string, error) {
	if contentType == models.ContentMarkdown {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(content), &buf); err != nil {
			return "", err
		}
		return r.sanitize.Sanitize(buf.String()), nil
	}
	return r.sanitize.Sanitize(content), nil
}
