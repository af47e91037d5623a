package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/couchcryptid/heatguard-service/internal/catalog"
	"github.com/couchcryptid/heatguard-service/internal/domain"
	"github.com/couchcryptid/heatguard-service/internal/observability"
	"github.com/couchcryptid/heatguard-service/internal/report"
	"github.com/couchcryptid/heatguard-service/internal/screen"
)

// API serves the catalog and report session endpoints consumed by the
// presentation layer.
type API struct {
	catalog *catalog.Catalog
	store   *report.Store
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewAPI creates the presentation API over a catalog and a session store.
func NewAPI(c *catalog.Catalog, store *report.Store, metrics *observability.Metrics, logger *slog.Logger) *API {
	return &API{catalog: c, store: store, metrics: metrics, logger: logger}
}

func (a *API) register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/zones", a.handleZones)
	mux.HandleFunc("GET /api/centers", a.handleCenters)
	mux.HandleFunc("GET /api/centers/filters", a.handleCenterFilters)
	mux.HandleFunc("GET /api/tips", a.handleTips)
	mux.HandleFunc("GET /api/tips/categories", a.handleTipCategories)
	mux.HandleFunc("GET /api/symptoms", a.handleSymptoms)
	mux.HandleFunc("GET /api/severities", a.handleSeverities)
	mux.HandleFunc("GET /api/weather", a.handleWeather)
	mux.HandleFunc("GET /api/profile", a.handleProfile)

	mux.HandleFunc("POST /api/reports", a.handleCreateReport)
	mux.HandleFunc("GET /api/reports/{id}", a.withSession(a.handleGetReport))
	mux.HandleFunc("POST /api/reports/{id}/symptoms/{symptom}", a.withSession(a.handleToggleSymptom))
	mux.HandleFunc("PUT /api/reports/{id}/severity", a.withSession(a.handleSetSeverity))
	mux.HandleFunc("PUT /api/reports/{id}/description", a.withSession(a.handleSetDescription))
	mux.HandleFunc("POST /api/reports/{id}/submit", a.withSession(a.handleSubmit))
	mux.HandleFunc("POST /api/reports/{id}/reset", a.withSession(a.handleReset))
	mux.HandleFunc("DELETE /api/reports/{id}", a.handleDeleteReport)
}

// --- catalog ---

func (a *API) handleZones(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("risk")
	zones := screen.NewHeatMap().SetRiskFilter(key).Visible(a.catalog)
	a.metrics.CatalogRequests.WithLabelValues("zones", zoneFilterLabel(key)).Inc()

	out := make([]zoneView, len(zones))
	for i, z := range zones {
		out[i] = newZoneView(z)
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *API) handleCenters(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("filter")
	centers := screen.NewCooling().SetFilter(key).Visible(a.catalog)
	a.metrics.CatalogRequests.WithLabelValues("centers", centerFilterLabel(key)).Inc()

	out := make([]centerView, len(centers))
	for i := range centers {
		out[i] = newCenterView(centers[i])
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *API) handleCenterFilters(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, domain.CenterFilters(a.catalog.Centers))
}

func (a *API) handleTips(w http.ResponseWriter, r *http.Request) {
	tips := screen.NewTips(a.catalog)
	if id := r.URL.Query().Get("category"); id != "" {
		tips = tips.SelectCategory(a.catalog, id)
	}
	cat, ok := tips.Current(a.catalog)
	if !ok {
		writeError(w, http.StatusNotFound, "no tip categories")
		return
	}
	a.metrics.CatalogRequests.WithLabelValues("tips", cat.ID).Inc()
	writeJSON(w, http.StatusOK, newTipCategoryView(cat))
}

func (a *API) handleTipCategories(w http.ResponseWriter, _ *http.Request) {
	type categoryChip struct {
		ID       string `json:"id"`
		Title    string `json:"title"`
		ColorTag string `json:"color_tag"`
		Count    int    `json:"count"`
	}
	out := make([]categoryChip, len(a.catalog.TipCategories))
	for i, c := range a.catalog.TipCategories {
		out[i] = categoryChip{ID: c.ID, Title: c.Title, ColorTag: c.ColorTag, Count: len(c.Tips)}
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *API) handleSymptoms(w http.ResponseWriter, _ *http.Request) {
	out := make([]symptomView, len(domain.Symptoms))
	for i, s := range domain.Symptoms {
		out[i] = symptomView{ID: s, Label: s.Label()}
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *API) handleSeverities(w http.ResponseWriter, _ *http.Request) {
	out := make([]severityView, len(domain.Severities))
	for i, s := range domain.Severities {
		out[i] = severityView{
			ID:          s,
			Label:       s.Label(),
			Color:       s.Color(),
			Description: s.Description(),
			Default:     s == domain.DefaultSeverity,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *API) handleWeather(w http.ResponseWriter, _ *http.Request) {
	weather := a.catalog.Weather
	risk := domain.RiskForTemperature(weather.TemperatureCelsius)
	writeJSON(w, http.StatusOK, map[string]any{
		"weather":          weather,
		"risk":             risk,
		"risk_label":       risk.Label(),
		"risk_color":       risk.Color(),
		"emergency_number": a.catalog.EmergencyNumber,
	})
}

func (a *API) handleProfile(w http.ResponseWriter, r *http.Request) {
	prefs := screen.NewProfile()
	if r.URL.Query().Get("admin") == "true" {
		prefs = prefs.ToggleAdminMode()
	}

	body := map[string]any{
		"profile":     a.catalog.Profile,
		"preferences": prefs,
		"languages":   a.catalog.Languages,
	}
	if stats, ok := prefs.Stats(a.catalog); ok {
		body["admin_stats"] = stats
	}
	writeJSON(w, http.StatusOK, body)
}

// --- reports ---

type sessionHandler func(w http.ResponseWriter, r *http.Request, id string, s *report.Session)

func (a *API) withSession(next sessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		s, ok := a.store.Get(id)
		if !ok {
			writeError(w, http.StatusNotFound, "report not found")
			return
		}
		next(w, r, id, s)
	}
}

func (a *API) handleCreateReport(w http.ResponseWriter, r *http.Request) {
	id, s := a.store.Create(r.Context())
	a.logger.Debug("report session created", "session_id", id)
	writeJSON(w, http.StatusCreated, newReportView(id, s.Snapshot()))
}

func (a *API) handleGetReport(w http.ResponseWriter, _ *http.Request, id string, s *report.Session) {
	writeJSON(w, http.StatusOK, newReportView(id, s.Snapshot()))
}

func (a *API) handleToggleSymptom(w http.ResponseWriter, r *http.Request, id string, s *report.Session) {
	if err := s.ToggleSymptom(domain.SymptomID(r.PathValue("symptom"))); err != nil {
		writeIntentError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newReportView(id, s.Snapshot()))
}

func (a *API) handleSetSeverity(w http.ResponseWriter, r *http.Request, id string, s *report.Session) {
	var req struct {
		Severity string `json:"severity"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	level, err := domain.ParseSeverity(req.Severity)
	if err != nil {
		writeIntentError(w, err)
		return
	}
	if err := s.SetSeverity(level); err != nil {
		writeIntentError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newReportView(id, s.Snapshot()))
}

func (a *API) handleSetDescription(w http.ResponseWriter, r *http.Request, id string, s *report.Session) {
	var req struct {
		Description string `json:"description"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if err := s.SetDescription(req.Description); err != nil {
		writeIntentError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newReportView(id, s.Snapshot()))
}

func (a *API) handleSubmit(w http.ResponseWriter, r *http.Request, id string, s *report.Session) {
	if err := s.Submit(r.Context()); err != nil {
		writeIntentError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, newReportView(id, s.Snapshot()))
}

func (a *API) handleReset(w http.ResponseWriter, _ *http.Request, id string, s *report.Session) {
	if err := s.Reset(); err != nil {
		writeIntentError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newReportView(id, s.Snapshot()))
}

func (a *API) handleDeleteReport(w http.ResponseWriter, r *http.Request) {
	if !a.store.Delete(r.PathValue("id")) {
		writeError(w, http.StatusNotFound, "report not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	case errors.Is(err, domain.ErrDispatch):
		return "dispatch"
	default:
		return "internal"
	}
}

func zoneFilterLabel(key string) string {
	switch domain.RiskLevel(key) {
	case domain.RiskHigh, domain.RiskMedium, domain.RiskLow:
		return key
	default:
		return domain.FilterAll
	}
}

func centerFilterLabel(key string) string {
	switch key {
	case domain.FilterShelter, domain.FilterPublic, domain.FilterMedical:
		return key
	default:
		return domain.FilterAll
	}
}
