package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	vm "github.com/ericfisherdev/nichescript/internal/adapter/driving/web/viewmodel"
)

const workspaceFormID = "workspace"

// WorkspacePage renders the topic form, niche cards, script and save form.
// Niche card buttons submit the shared workspace form so the selected engine
// and key travel with them.
func WorkspacePage(page vm.WorkspacePageViewModel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)

		h.raw(`<section class="panel"><h1>Tìm ngách nội dung</h1>`)
		h.raw(`<form method="post" action="/app/discover" class="stack"`)
		h.attr("id", workspaceFormID)
		h.raw(">")
		h.csrf(page.CSRFToken)
		h.raw(`<label>Chủ đề <input type="text" name="topic" placeholder="ví dụ: nấu ăn, du lịch"`)
		h.attr("value", page.Topic)
		h.raw(`></label>`)
		engineSelect(h, page.Engines)
		credentialSelect(h, page.Credentials)
		h.raw(`<button type="submit" class="primary">Phân tích ngách</button></form></section>`)

		if len(page.Niches) > 0 {
			h.raw(`<section class="niches">`)
			for _, n := range page.Niches {
				nicheCard(h, n)
			}
			h.raw(`</section>`)
		}

		if page.HasScript {
			h.raw(`<section class="panel script"><h2>Kịch bản: `)
			h.text(page.SelectedTitle)
			h.raw(`</h2><article class="markdown">`)
			h.raw(page.ScriptHTML) // sanitized by the markdown renderer
			h.raw(`</article></section>`)
		}

		if page.CanSave {
			h.raw(`<section class="panel"><form method="post" action="/app/sessions" class="row">`)
			h.csrf(page.CSRFToken)
			h.raw(`<input type="text" name="name"`)
			h.attr("placeholder", page.DefaultName)
			h.raw(`><button type="submit">Lưu phiên</button></form></section>`)
		}
		return h.err
	})
}

func engineSelect(h *htmlWriter, groups []vm.EngineGroupViewModel) {
	h.raw(`<label>Mô hình <select name="engine">`)
	for _, g := range groups {
		h.raw(`<optgroup`)
		h.attr("label", g.Provider)
		h.raw(">")
		for _, o := range g.Options {
			h.raw(`<option`)
			h.attr("value", o.Value)
			h.flag("selected", o.Selected)
			h.raw(">")
			h.text(o.Model)
			h.raw(`</option>`)
		}
		h.raw(`</optgroup>`)
	}
	h.raw(`</select></label>`)
}

func credentialSelect(h *htmlWriter, creds []vm.CredentialViewModel) {
	h.raw(`<label>Khóa API <select name="credential_id"><option value="">Khóa hợp lệ đầu tiên</option>`)
	for _, c := range creds {
		h.raw(`<option`)
		h.attr("value", c.ID)
		h.raw(">")
		h.text(c.Provider + " · " + c.Name + " (" + c.MaskedKey + ")")
		h.raw(`</option>`)
	}
	h.raw(`</select></label>`)
}

func nicheCard(h *htmlWriter, n vm.NicheCardViewModel) {
	class := "card"
	if n.Selected {
		class = "card selected"
	}
	h.raw(`<article`)
	h.attr("class", class)
	h.raw(`><h3>`)
	h.text(n.Title)
	h.raw(`</h3><p>`)
	h.text(n.Description)
	h.raw(`</p>`)

	scoreBar(h, n.Monetization)
	scoreBar(h, n.Audience)
	scoreBar(h, n.Competition)

	if n.ContentDirection != "" {
		h.raw(`<p class="direction"><strong>Hướng nội dung:</strong> `)
		h.text(n.ContentDirection)
		h.raw(`</p>`)
	}
	if len(n.Keywords) > 0 {
		h.raw(`<ul class="keywords">`)
		for _, k := range n.Keywords {
			h.raw(`<li>`)
			h.text(k)
			h.raw(`</li>`)
		}
		h.raw(`</ul>`)
	}

	h.raw(`<button type="submit" name="niche" formaction="/app/script"`)
	h.attr("form", workspaceFormID)
	h.attr("value", itoa(n.Index))
	h.raw(`>Viết kịch bản</button></article>`)
}

func scoreBar(h *htmlWriter, s vm.ScoreBarViewModel) {
	h.raw(`<div`)
	h.attr("class", "score tone-"+string(s.Tone))
	h.raw(`><div class="score-head"><span>`)
	h.text(s.Label)
	h.raw(`</span><span class="score-value">`)
	h.number(s.Score)
	h.raw("/")
	h.number(s.Max)
	h.raw(`</span></div><div class="bar"><div class="fill"`)
	h.attr("style", "width: "+itoa(s.Percent)+"%")
	h.raw(`></div></div>`)
	if s.Caption != "" {
		h.raw(`<p class="caption">`)
		h.text(s.Caption)
		h.raw(`</p>`)
	}
	if s.Explanation != "" {
		h.raw(`<p class="explanation">`)
		h.text(s.Explanation)
		h.raw(`</p>`)
	}
	h.raw(`</div>`)
}
