// Package templates holds the templ components that render the web GUI.
package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// htmlWriter writes markup and keeps the first error. Every user-supplied
// string goes through text or attr.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newWriter(ctx context.Context, w io.Writer) *htmlWriter {
	return &htmlWriter{ctx: ctx, w: w}
}

// raw writes trusted markup.
func (h *htmlWriter) raw(parts ...string) {
	for _, p := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, p)
	}
}

// text writes s escaped.
func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) number(n int) {
	h.raw(strconv.Itoa(n))
}

// attr writes ` name="value"` with value escaped.
func (h *htmlWriter) attr(name, value string) {
	h.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// flag writes a boolean attribute when on.
func (h *htmlWriter) flag(name string, on bool) {
	if on {
		h.raw(" ", name)
	}
}

func (h *htmlWriter) component(c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

func (h *htmlWriter) csrf(token string) {
	h.raw(`<input type="hidden" name="csrf_token"`)
	h.attr("value", token)
	h.raw(">")
}

// postButton renders a single-button form posting to action.
func (h *htmlWriter) postButton(action, token, label, class string) {
	h.raw(`<form method="post" class="inline"`)
	h.attr("action", string(templ.URL(action)))
	h.raw(">")
	h.csrf(token)
	h.raw(`<button type="submit"`)
	h.attr("class", class)
	h.raw(">")
	h.text(label)
	h.raw("</button></form>")
}
