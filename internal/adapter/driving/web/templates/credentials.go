package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	vm "github.com/ericfisherdev/nichescript/internal/adapter/driving/web/viewmodel"
)

// CredentialsPage renders the key manager: one list per provider plus the
// add form.
func CredentialsPage(page vm.CredentialsPageViewModel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)

		h.raw(`<section class="panel"><h1>Thêm khóa API</h1><form method="post" action="/app/credentials" class="stack">`)
		h.csrf(page.CSRFToken)
		h.raw(`<label>Nhà cung cấp <select name="provider">`)
		for _, g := range page.Groups {
			h.raw(`<option`)
			h.attr("value", g.ProviderID)
			h.raw(">")
			h.text(g.Provider)
			h.raw(`</option>`)
		}
		h.raw(`</select></label>`,
			`<label>Tên <input type="text" name="name" placeholder="Tự đặt nếu để trống"></label>`,
			`<label>Khóa <input type="password" name="key" autocomplete="off" required></label>`,
			`<button type="submit" class="primary">Lưu và xác thực</button></form></section>`)

		for _, g := range page.Groups {
			h.raw(`<section class="panel"><h2>`)
			h.text(g.Provider)
			h.raw(`</h2>`)
			if len(g.Credentials) == 0 {
				h.raw(`<p class="empty">Chưa có khóa nào.</p></section>`)
				continue
			}
			h.raw(`<table class="list"><tbody>`)
			for _, c := range g.Credentials {
				h.raw(`<tr><td>`)
				h.text(c.Name)
				h.raw(`</td><td><code>`)
				h.text(c.MaskedKey)
				h.raw(`</code></td><td><span`)
				h.attr("class", "badge status-"+c.Status)
				h.raw(">")
				h.text(c.StatusLabel)
				h.raw(`</span></td><td class="actions">`)
				h.postButton(c.ValidateURL, page.CSRFToken, "Xác thực", "")
				h.postButton(c.DeleteURL, page.CSRFToken, "Xóa", "danger")
				h.raw(`</td></tr>`)
			}
			h.raw(`</tbody></table></section>`)
		}
		return h.err
	})
}
