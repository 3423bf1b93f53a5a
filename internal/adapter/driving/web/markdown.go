package web

import (
	"bytes"
	"crypto/sha256"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// DefaultRenderCacheSize bounds the number of rendered scripts kept in memory.
const DefaultRenderCacheSize = 64

var (
	mdRenderer    goldmark.Markdown
	htmlSanitizer *bluemonday.Policy
)

func init() {
	mdRenderer = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	htmlSanitizer = bluemonday.UGCPolicy()
}

// RenderMarkdown converts a markdown string to sanitized HTML.
// Returns empty string for empty input.
func RenderMarkdown(src string) string {
	if src == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(src), &buf); err != nil {
		return htmlSanitizer.Sanitize(src)
	}

	return htmlSanitizer.Sanitize(buf.String())
}

// ScriptRenderer renders generated scripts to HTML and memoizes the result by
// content hash. The workspace page re-renders the same script on every view.
type ScriptRenderer struct {
	cache *lru.Cache[[sha256.Size]byte, string]
}

// NewScriptRenderer creates a renderer holding at most size entries. A
// non-positive size uses DefaultRenderCacheSize.
func NewScriptRenderer(size int) (*ScriptRenderer, error) {
	if size <= 0 {
		size = DefaultRenderCacheSize
	}
	cache, err := lru.New[[sha256.Size]byte, string](size)
	if err != nil {
		return nil, err
	}
	return &ScriptRenderer{cache: cache}, nil
}

// Render returns the sanitized HTML for src.
func (r *ScriptRenderer) Render(src string) string {
	if src == "" {
		return ""
	}

	key := sha256.Sum256([]byte(src))
	if out, ok := r.cache.Get(key); ok {
		return out
	}

	out := RenderMarkdown(src)
	r.cache.Add(key, out)
	return out
}

// Len reports the number of cached renders.
func (r *ScriptRenderer) Len() int {
	return r.cache.Len()
}
