// internal/app/features/dashboard/handler.go
package dashboard

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/mnogodumalon/kurs70/internal/app/system/dataservice"
	"github.com/mnogodumalon/kurs70/internal/app/system/overview"
	"github.com/mnogodumalon/kurs70/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type Handler struct {
	Src dataservice.Source
	Loc *time.Location
	Log *zap.Logger
}

func NewHandler(src dataservice.Source, loc *time.Location, logger *zap.Logger) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		Src: src,
		Loc: loc,
		Log: logger,
	}
}

// ServeDashboard renders the page shell in the loading state. The shell
// pulls /dashboard/content via HTMX once it is on screen.
// GET /dashboard
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	data := BuildView(overview.State{Loading: true}, h.Loc)
	templates.Render(w, r, "dashboard_page", data)
}

// ServeContent runs one load and renders the populated dashboard. A failed
// load still renders, with empty panels and zero tiles.
// GET /dashboard/content
func (h *Handler) ServeContent(w http.ResponseWriter, r *http.Request) {
	st, _ := h.load(r)
	data := BuildView(st, h.Loc)

	if r.Header.Get("HX-Request") != "" {
		templates.RenderSnippet(w, "dashboard_content", data)
		return
	}
	templates.Render(w, r, "dashboard_page", data)
}

// ServeStats runs one load and writes the aggregate as JSON. Load failures
// answer 200 with "loaded": false.
// GET /dashboard/stats.json
func (h *Handler) ServeStats(w http.ResponseWriter, r *http.Request) {
	st, loadID := h.load(r)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	_ = json.NewEncoder(w).Encode(BuildStatsDocument(st, loadID, h.Loc))
}

// load runs a single session bounded by the fetch timeout and returns its
// final state.
func (h *Handler) load(r *http.Request) (overview.State, string) {
	sess := overview.NewSession(h.Src, h.Log, overview.WithLocation(h.Loc))
	defer sess.Close()

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Fetch(), h.Log, "dashboard load")
	defer cancel()

	_ = sess.Load(ctx)
	return sess.State(), sess.ID
}
