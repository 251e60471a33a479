package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ecowatt/solardevis/internal/gemini"
	"github.com/ecowatt/solardevis/internal/httpx"
	"github.com/ecowatt/solardevis/internal/services"
)

// NarrativeHandler requests the AI analysis for a quote. It always answers
// 200 with displayable text: a missing credential or a service failure is a
// fallback message, never an error status, so the quote view keeps working.
type NarrativeHandler struct {
	Analyzer *gemini.Analyzer
	Pricing  *services.PricingService
}

func NewNarrativeHandler(analyzer *gemini.Analyzer, pricing *services.PricingService) *NarrativeHandler {
	return &NarrativeHandler{Analyzer: analyzer, Pricing: pricing}
}

func (h *NarrativeHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/narrative", postOnly(h.Narrative))
}

// Narrative: POST /narrative – body is {profile, config}. Figures are
// recomputed server-side so the prompt always matches what the pricing
// engine would produce for the same inputs.
func (h *NarrativeHandler) Narrative(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	p := req.Profile
	p.TotalDailyKWh, p.TotalMaxW = services.ComputeTotals(p.Items)
	sizing := services.SizeSystem(p.TotalDailyKWh, req.Config.PanelPowerW, req.Config.EfficiencyPercent)
	summary := h.Pricing.ComputeSummary(p.Items, req.Config)

	text := h.Analyzer.Analyze(r.Context(), p, sizing, summary, req.Config)
	httpx.JSON(w, http.StatusOK, map[string]any{
		"analysis": text,
		"enabled":  h.Analyzer.Enabled(),
	})
}
