package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	vm "github.com/ericfisherdev/nichescript/internal/adapter/driving/web/viewmodel"
)

// SessionsPage renders the saved session library, newest first.
func SessionsPage(page vm.SessionsPageViewModel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)

		h.raw(`<section class="panel"><h1>Phiên đã lưu</h1>`)
		if len(page.Sessions) == 0 {
			h.raw(`<p class="empty">Chưa có phiên nào được lưu.</p></section>`)
			return h.err
		}

		h.raw(`<table class="list"><tbody>`)
		for _, s := range page.Sessions {
			h.raw(`<tr><td><strong>`)
			h.text(s.Name)
			h.raw(`</strong><div class="meta">`)
			h.text(s.Topic + " · " + s.Provider + " · " + strconv.Itoa(s.NicheCount) + " ngách")
			if s.HasScript {
				h.raw(" · có kịch bản")
			}
			h.raw(`</div></td><td class="meta">`)
			h.text(s.SavedAt)
			h.raw(`</td><td class="actions">`)
			h.postButton(s.LoadURL, page.CSRFToken, "Mở", "primary")
			h.postButton(s.DeleteURL, page.CSRFToken, "Xóa", "danger")
			h.raw(`</td></tr>`)
		}
		h.raw(`</tbody></table></section>`)
		return h.err
	})
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
