package web

import (
	"io/fs"
	"net/http"
)

// RegisterRoutes registers all web GUI routes on the provided mux.
// Web routes serve HTML at / and /app/* paths.
// Static assets are served from the embedded filesystem at /static/*.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Static assets (embedded via go:embed).
	staticFS, _ := fs.Sub(StaticFS, "static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticFS)))

	// Page routes.
	mux.HandleFunc("GET /{$}", h.Workspace)
	mux.HandleFunc("GET /app/sessions", h.Sessions)
	mux.HandleFunc("GET /app/credentials", h.Credentials)

	// Form posts. Each redirects back to a page.
	mux.HandleFunc("POST /app/discover", requireCSRF(h.Discover))
	mux.HandleFunc("POST /app/script", requireCSRF(h.Script))
	mux.HandleFunc("POST /app/sessions", requireCSRF(h.SaveSession))
	mux.HandleFunc("POST /app/sessions/{id}/load", requireCSRF(h.LoadSession))
	mux.HandleFunc("POST /app/sessions/{id}/delete", requireCSRF(h.DeleteSession))
	mux.HandleFunc("POST /app/credentials", requireCSRF(h.AddCredential))
	mux.HandleFunc("POST /app/credentials/{id}/validate", requireCSRF(h.ValidateCredential))
	mux.HandleFunc("POST /app/credentials/{id}/delete", requireCSRF(h.DeleteCredential))
}
