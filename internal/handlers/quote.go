package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ecowatt/solardevis/internal/httpx"
	"github.com/ecowatt/solardevis/internal/models"
	"github.com/ecowatt/solardevis/internal/pdfgen"
	"github.com/ecowatt/solardevis/internal/services"
)

// QuoteHandler serves the deterministic side of the engine: preparing an
// editable quote, recomputing live totals, and rendering the document.
type QuoteHandler struct {
	Pricing  *services.PricingService
	Defaults models.QuoteConfig
}

func NewQuoteHandler(pricing *services.PricingService, defaults models.QuoteConfig) *QuoteHandler {
	return &QuoteHandler{Pricing: pricing, Defaults: defaults}
}

func (h *QuoteHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/quote/prepare", postOnly(h.Prepare))
	mux.HandleFunc("/quote/compute", postOnly(h.Compute))
	mux.HandleFunc("/quote/pdf", postOnly(h.PDF))
}

func postOnly(fn http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", "POST")
			httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
			return
		}
		fn(w, r)
	}
}

type prepareRequest struct {
	Profile models.ClientProfile `json:"profile"`
}

// Prepare: POST /quote/prepare – seeds the mandatory zero-cost lines and
// returns the configuration a fresh quote starts from.
func (h *QuoteHandler) Prepare(w http.ResponseWriter, r *http.Request) {
	var req prepareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"items":  services.EnsureMandatoryItems(req.Profile),
		"config": h.Defaults,
	})
}

type computeRequest struct {
	Items  []models.LineItem  `json:"items"`
	Config models.QuoteConfig `json:"config"`
}

type computeResponse struct {
	TotalDailyKWh float64                 `json:"totalDailyKWh"`
	TotalMaxW     float64                 `json:"totalMaxW"`
	Sizing        models.SizingResult     `json:"sizing"`
	Summary       models.FinancialSummary `json:"summary"`
}

// Compute: POST /quote/compute – pure recomputation of totals, sizing and
// pricing for the posted editor state. Safe to call on every keystroke.
func (h *QuoteHandler) Compute(w http.ResponseWriter, r *http.Request) {
	var req computeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, h.compute(req.Items, req.Config))
}

func (h *QuoteHandler) compute(items []models.LineItem, cfg models.QuoteConfig) computeResponse {
	daily, maxW := services.ComputeTotals(items)
	return computeResponse{
		TotalDailyKWh: daily,
		TotalMaxW:     maxW,
		Sizing:        services.SizeSystem(daily, cfg.PanelPowerW, cfg.EfficiencyPercent),
		Summary:       h.Pricing.ComputeSummary(items, cfg),
	}
}

type quoteRequest struct {
	Profile models.ClientProfile `json:"profile"`
	Config  models.QuoteConfig   `json:"config"`
}

// PDF: POST /quote/pdf – renders the printable document for the posted
// profile and config. Totals are recomputed server-side so the document can
// never show stale figures.
func (h *QuoteHandler) PDF(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	p := req.Profile
	p.TotalDailyKWh, p.TotalMaxW = services.ComputeTotals(p.Items)
	sizing := services.SizeSystem(p.TotalDailyKWh, req.Config.PanelPowerW, req.Config.EfficiencyPercent)
	summary := h.Pricing.ComputeSummary(p.Items, req.Config)

	doc, err := pdfgen.BuildQuotePDF(p, sizing, summary, req.Config)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "pdf_render_failed", err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=devis-%s.pdf", time.Now().Format("20060102")))
	_, _ = w.Write(doc)
}
