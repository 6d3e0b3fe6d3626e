package render

import (
	"testing"

	"plume/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLMarkdown(t *testing.T) {
	r := New()

	out, err := r.HTML(models.ContentMarkdown, "# Heading\n\nSome *emphasis*.")
	require.NoError(t, err)
	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "<em>emphasis</em>")
}

func TestHTMLPassthroughSanitized(t *testing.T) {
	r := New()

	out, err := r.HTML(models.ContentHTML, `<p>fine</p><script>alert("x")</script>`)
	require.NoError(t, err)
	assert.Contains(t, out, "<p>fine</p>")
	assert.NotContains(t, out, "<script>")
}

func TestHTMLMarkdownStripsRawScript(t *testing.T) {
	r := New()

	out, err := r.HTML(models.ContentMarkdown, "hello\n\n<script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "hello")
}
