// internal/app/features/dashboard/routes.go
package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes wires the dashboard feature under whatever mount point
// the top-level router chooses (e.g., "/dashboard").
//
// loadMW wraps only the routes that hit the data service; the page shell
// stays unthrottled.
func Routes(h *Handler, loadMW ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeDashboard)
	r.Group(func(gr chi.Router) {
		gr.Use(loadMW...)
		gr.Get("/content", h.ServeContent)
		gr.Get("/stats.json", h.ServeStats)
	})
	return r
}
