package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	vm "github.com/ericfisherdev/nichescript/internal/adapter/driving/web/viewmodel"
)

// Layout wraps a page body with the document shell, navigation and flash.
func Layout(title string, active string, flash *vm.FlashViewModel, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.raw(`<!DOCTYPE html><html lang="vi"><head><meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<title>`)
		h.text(title)
		h.raw(`</title><link rel="stylesheet" href="/static/app.css"></head><body>`)

		h.raw(`<header class="topbar"><span class="brand">NicheScript</span><nav>`)
		navLink(h, "/", "Không gian làm việc", active == "workspace")
		navLink(h, "/app/sessions", "Phiên đã lưu", active == "sessions")
		navLink(h, "/app/credentials", "Khóa API", active == "credentials")
		h.raw(`</nav></header><main>`)

		renderFlash(h, flash)
		h.component(body)

		h.raw(`</main></body></html>`)
		return h.err
	})
}

func navLink(h *htmlWriter, href, label string, active bool) {
	h.raw(`<a`)
	h.attr("href", href)
	if active {
		h.raw(` class="active" aria-current="page"`)
	}
	h.raw(">")
	h.text(label)
	h.raw("</a>")
}

func renderFlash(h *htmlWriter, flash *vm.FlashViewModel) {
	if flash == nil || flash.Message == "" {
		return
	}
	class := "flash notice"
	if flash.IsError {
		class = "flash error"
	}
	h.raw(`<div role="alert"`)
	h.attr("class", class)
	h.raw(">")
	h.text(flash.Message)
	if flash.ManageCredentials {
		h.raw(` <a href="/app/credentials">Quản lý khóa API</a>`)
	}
	h.raw("</div>")
}
