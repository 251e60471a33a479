package main

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/ecowatt/solardevis/internal/gemini"
	"github.com/ecowatt/solardevis/internal/handlers"
	"github.com/ecowatt/solardevis/internal/httpx"
	"github.com/ecowatt/solardevis/internal/models"
	"github.com/ecowatt/solardevis/internal/services"
	"github.com/ecowatt/solardevis/internal/store"
)

// NewApp wires the full route table. Kept separate from main so end-to-end
// tests can mount the whole application on an httptest server.
func NewApp(db *gorm.DB, analyzer *gemini.Analyzer, defaults models.QuoteConfig) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Exec("SELECT 1").Error; err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	pricing := services.NewPricingService()
	repo := store.NewQuoteRepository(db)

	handlers.NewImportHandler().Register(mux)
	handlers.NewQuoteHandler(pricing, defaults).Register(mux)
	handlers.NewSavedQuoteHandler(repo).Register(mux)
	handlers.NewNarrativeHandler(analyzer, pricing).Register(mux)

	return mux
}
