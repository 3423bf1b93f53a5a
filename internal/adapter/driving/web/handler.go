// Package web implements the HTML GUI driving adapter using templ components.
package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"github.com/ericfisherdev/nichescript/internal/adapter/driving/web/templates"
	vm "github.com/ericfisherdev/nichescript/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/nichescript/internal/application"
	"github.com/ericfisherdev/nichescript/internal/domain/model"
	"github.com/ericfisherdev/nichescript/internal/domain/port/driven"
)

const pageTitle = "NicheScript"

// Flash query parameters carried across the post/redirect/get cycle.
const (
	flashNotice = "notice"
	flashError  = "error"
	flashManage = "manage"
)

// Handler is the web GUI driving adapter that serves HTML via templ components.
type Handler struct {
	credentials *application.CredentialService
	sessions    *application.SessionService
	workspace   *application.Workspace
	registry    *application.ProviderRegistry
	renderer    *ScriptRenderer
	logger      *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(
	credentials *application.CredentialService,
	sessions *application.SessionService,
	workspace *application.Workspace,
	registry *application.ProviderRegistry,
	renderer *ScriptRenderer,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		credentials: credentials,
		sessions:    sessions,
		workspace:   workspace,
		registry:    registry,
		renderer:    renderer,
		logger:      logger,
	}
}

// Workspace renders the main page: topic form, niches, script.
func (h *Handler) Workspace(w http.ResponseWriter, r *http.Request) {
	creds, err := h.credentials.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list credentials", "error", err)
		creds = nil
	}

	state := h.workspace.Snapshot()
	page := toWorkspacePage(state, h.registry.Registered(), creds, h.renderer.Render(state.Script))
	page.CSRFToken = csrfToken(w, r)
	page.Flash = flashFrom(r)

	h.render(w, r, "workspace", page.Flash, templates.WorkspacePage(page))
}

// Sessions renders the saved session library.
func (h *Handler) Sessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.sessions.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list sessions", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	page := vm.SessionsPageViewModel{
		CSRFToken: csrfToken(w, r),
		Flash:     flashFrom(r),
		Sessions:  make([]vm.SessionViewModel, 0, len(sessions)),
	}
	for _, s := range sessions {
		page.Sessions = append(page.Sessions, toSessionViewModel(s))
	}

	h.render(w, r, "sessions", page.Flash, templates.SessionsPage(page))
}

// Credentials renders the key manager.
func (h *Handler) Credentials(w http.ResponseWriter, r *http.Request) {
	creds, err := h.credentials.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list credentials", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	page := vm.CredentialsPageViewModel{
		CSRFToken: csrfToken(w, r),
		Flash:     flashFrom(r),
		Groups:    toCredentialGroups(model.Providers(), creds),
	}

	h.render(w, r, "credentials", page.Flash, templates.CredentialsPage(page))
}

// Discover runs niche discovery for the submitted topic.
func (h *Handler) Discover(w http.ResponseWriter, r *http.Request) {
	niches, err := h.workspace.DiscoverNiches(r.Context(), r.FormValue("topic"), generationFrom(r))
	if err != nil {
		h.redirectError(w, r, "/", "niche discovery failed", err)
		return
	}
	redirectNotice(w, r, "/", fmt.Sprintf("Đã phân tích %d ngách.", len(niches)))
}

// Script writes a script for the niche at the submitted index.
func (h *Handler) Script(w http.ResponseWriter, r *http.Request) {
	niches := h.workspace.Snapshot().Niches
	idx, err := strconv.Atoi(r.FormValue("niche"))
	if err != nil || idx < 0 || idx >= len(niches) {
		h.redirectError(w, r, "/", "script generation failed",
			fmt.Errorf("%w: unknown niche %q", application.ErrMissingInput, r.FormValue("niche")))
		return
	}

	if _, err := h.workspace.WriteScript(r.Context(), niches[idx], generationFrom(r)); err != nil {
		h.redirectError(w, r, "/", "script generation failed", err)
		return
	}
	redirectNotice(w, r, "/", "Đã tạo kịch bản cho \""+niches[idx].Title+"\".")
}

// SaveSession snapshots the workspace under the submitted name.
func (h *Handler) SaveSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.workspace.SaveSession(r.Context(), r.FormValue("name"))
	if err != nil {
		h.redirectError(w, r, "/", "save session failed", err)
		return
	}
	redirectNotice(w, r, "/app/sessions", "Đã lưu phiên \""+sess.Name+"\".")
}

// LoadSession restores a saved session into the workspace.
func (h *Handler) LoadSession(w http.ResponseWriter, r *http.Request) {
	if _, err := h.workspace.LoadSession(r.Context(), r.PathValue("id")); err != nil {
		h.redirectError(w, r, "/app/sessions", "load session failed", err)
		return
	}
	redirectNotice(w, r, "/", "Đã mở phiên đã lưu.")
}

// DeleteSession removes a saved session.
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.workspace.DeleteSession(r.Context(), r.PathValue("id")); err != nil {
		h.redirectError(w, r, "/app/sessions", "delete session failed", err)
		return
	}
	redirectNotice(w, r, "/app/sessions", "Đã xóa phiên.")
}

// AddCredential stores a new key and validates it immediately.
func (h *Handler) AddCredential(w http.ResponseWriter, r *http.Request) {
	provider := model.ProviderID(r.FormValue("provider"))
	cred, err := h.credentials.Add(r.Context(), provider, r.FormValue("name"), r.FormValue("key"))
	if err != nil {
		h.redirectError(w, r, "/app/credentials", "add credential failed", err)
		return
	}

	result, err := h.credentials.Validate(r.Context(), cred.ID)
	if err != nil {
		h.redirectError(w, r, "/app/credentials", "validate credential failed", err)
		return
	}
	h.redirectValidation(w, r, cred.Name, result)
}

// ValidateCredential re-checks a stored key.
func (h *Handler) ValidateCredential(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	result, err := h.credentials.Validate(r.Context(), id)
	if err != nil {
		h.redirectError(w, r, "/app/credentials", "validate credential failed", err)
		return
	}
	h.redirectValidation(w, r, "", result)
}

// DeleteCredential removes a stored key.
func (h *Handler) DeleteCredential(w http.ResponseWriter, r *http.Request) {
	if err := h.credentials.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.redirectError(w, r, "/app/credentials", "delete credential failed", err)
		return
	}
	redirectNotice(w, r, "/app/credentials", "Đã xóa khóa API.")
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, active string, flash *vm.FlashViewModel, body templ.Component) {
	layout := templates.Layout(pageTitle, active, flash, body)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := layout.Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render page", "page", active, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) redirectValidation(w http.ResponseWriter, r *http.Request, name string, result model.ValidationResult) {
	subject := "Khóa API"
	if name != "" {
		subject = "Khóa \"" + name + "\""
	}
	if result.Valid() {
		redirectNotice(w, r, "/app/credentials", subject+" hợp lệ.")
		return
	}
	redirect(w, r, "/app/credentials", url.Values{
		flashError: {subject + " không hợp lệ: " + failureMessage(result.Failure)},
	})
}

// redirectError logs err and redirects to target with a user-facing message.
func (h *Handler) redirectError(w http.ResponseWriter, r *http.Request, target, msg string, err error) {
	message, manage, internal := errorMessage(err)
	if internal {
		h.logger.Error(msg, "error", err)
	} else {
		h.logger.Debug(msg, "error", err)
	}

	q := url.Values{flashError: {message}}
	if manage {
		q.Set(flashManage, "1")
	}
	redirect(w, r, target, q)
}

func redirectNotice(w http.ResponseWriter, r *http.Request, target, message string) {
	redirect(w, r, target, url.Values{flashNotice: {message}})
}

func redirect(w http.ResponseWriter, r *http.Request, target string, q url.Values) {
	http.Redirect(w, r, target+"?"+q.Encode(), http.StatusSeeOther)
}

func flashFrom(r *http.Request) *vm.FlashViewModel {
	q := r.URL.Query()
	if msg := q.Get(flashError); msg != "" {
		return &vm.FlashViewModel{Message: msg, IsError: true, ManageCredentials: q.Get(flashManage) != ""}
	}
	if msg := q.Get(flashNotice); msg != "" {
		return &vm.FlashViewModel{Message: msg}
	}
	return nil
}

func generationFrom(r *http.Request) application.Generation {
	provider, modelName := parseEngine(r.FormValue("engine"))
	return application.Generation{
		Provider:     provider,
		Model:        modelName,
		CredentialID: r.FormValue("credential_id"),
	}
}

// errorMessage maps an application error to the message shown to the user.
// manage is set when the fix is in the key manager; internal marks errors
// that deserve an error-level log line.
func errorMessage(err error) (message string, manage, internal bool) {
	switch {
	case errors.Is(err, application.ErrMissingInput):
		return "Vui lòng kiểm tra lại thông tin đã nhập.", false, false
	case errors.Is(err, application.ErrAuth):
		return "Không có khóa API hợp lệ cho nhà cung cấp đã chọn.", true, false
	case errors.Is(err, application.ErrInvalidFormat):
		return "Phản hồi từ AI không đúng định dạng. Vui lòng thử lại.", false, false
	case errors.Is(err, application.ErrProvider):
		return "Không thể kết nối tới nhà cung cấp AI. Vui lòng thử lại sau.", false, false
	case errors.Is(err, application.ErrSuperseded):
		return "Yêu cầu đã được thay thế bởi một yêu cầu mới hơn.", false, false
	case errors.Is(err, driven.ErrCredentialNotFound), errors.Is(err, driven.ErrSessionNotFound):
		return "Không tìm thấy mục đã chọn.", false, false
	default:
		return "Đã xảy ra lỗi không mong muốn.", false, true
	}
}

func failureMessage(f model.ValidationFailure) string {
	switch f {
	case model.ValidationFailureEmptySecret:
		return "khóa trống"
	case model.ValidationFailureMalformed:
		return "sai định dạng"
	case model.ValidationFailureRejected:
		return "nhà cung cấp từ chối khóa"
	case model.ValidationFailureUnreachable:
		return "không thể kết nối để xác thực"
	default:
		return string(f)
	}
}
