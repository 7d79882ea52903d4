package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdown_EmptyInput(t *testing.T) {
	assert.Equal(t, "", RenderMarkdown(""))
}

func TestRenderMarkdown_PlainText(t *testing.T) {
	result := RenderMarkdown("hello world")
	assert.Contains(t, result, "hello world")
}

func TestRenderMarkdown_Bold(t *testing.T) {
	result := RenderMarkdown("**bold text**")
	assert.Contains(t, result, "<strong>bold text</strong>")
}

func TestRenderMarkdown_InlineCode(t *testing.T) {
	result := RenderMarkdown("built with `Three.js`")
	assert.Contains(t, result, "<code>Three.js</code>")
}

func TestRenderMarkdown_Link(t *testing.T) {
	result := RenderMarkdown("[demo](https://example.com)")
	assert.Contains(t, result, `<a href="https://example.com"`)
	assert.Contains(t, result, "demo</a>")
}

func TestRenderMarkdown_SanitizesScript(t *testing.T) {
	result := RenderMarkdown(`<script>alert("xss")</script>`)
	assert.NotContains(t, result, "<script>")
}

func TestRenderMarkdown_GFMStrikethrough(t *testing.T) {
	result := RenderMarkdown("~~deprecated~~")
	assert.Contains(t, result, "<del>deprecated</del>")
}
