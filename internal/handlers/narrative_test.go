package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/ecowatt/solardevis/internal/gemini"
	"github.com/ecowatt/solardevis/internal/models"
	"github.com/ecowatt/solardevis/internal/services"
)

type fakeGenerator struct {
	text   string
	err    error
	prompt string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.text, f.err
}

func TestNarrative(t *testing.T) {
	gen := &fakeGenerator{text: "## Analyse experte"}
	h := NewNarrativeHandler(gemini.NewAnalyzer(gen), services.NewPricingService())

	w := postJSON(t, h.Narrative, "/narrative", map[string]any{
		"profile": quotedProfile(),
		"config": models.QuoteConfig{
			MarginPercent: 20, DiscountPercent: 10,
			MaterialTaxPercent: 20, InstallTaxPercent: 10,
			InstallCost: 1500, PanelPowerW: 425, EfficiencyPercent: 80,
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Analysis string `json:"analysis"`
		Enabled  bool   `json:"enabled"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Analysis != "## Analyse experte" || !resp.Enabled {
		t.Fatalf("unexpected response: %+v", resp)
	}
	// The prompt must carry the recomputed grand total of the scenario.
	if !strings.Contains(gen.prompt, "2946.00") {
		t.Fatalf("prompt missing server-side recomputed figures:\n%s", gen.prompt)
	}
}

func TestNarrativeServiceFailureStaysUsable(t *testing.T) {
	gen := &fakeGenerator{err: &gemini.ServiceError{StatusCode: 500, Message: "boom"}}
	h := NewNarrativeHandler(gemini.NewAnalyzer(gen), services.NewPricingService())

	w := postJSON(t, h.Narrative, "/narrative", map[string]any{
		"profile": quotedProfile(),
		"config":  models.DefaultQuoteConfig(),
	})
	if w.Code != http.StatusOK {
		t.Fatalf("service failure must not break the quote view, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "boom") {
		t.Fatalf("fallback should surface the failure for diagnostics: %s", w.Body.String())
	}
}

func TestNarrativeWithoutCredential(t *testing.T) {
	h := NewNarrativeHandler(gemini.NewAnalyzer(nil), services.NewPricingService())
	w := postJSON(t, h.Narrative, "/narrative", map[string]any{
		"profile": quotedProfile(),
		"config":  models.DefaultQuoteConfig(),
	})
	if w.Code != http.StatusOK {
		t.Fatalf("missing credential must not be an error status, got %d", w.Code)
	}
	var resp struct {
		Analysis string `json:"analysis"`
		Enabled  bool   `json:"enabled"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Enabled {
		t.Fatalf("enabled should be false without a credential")
	}
	if !strings.Contains(resp.Analysis, "GEMINI_API_KEY") {
		t.Fatalf("fallback must explain how to enable the feature: %q", resp.Analysis)
	}
}
