package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ecowatt/solardevis/internal/httpx"
	"github.com/ecowatt/solardevis/internal/services"
	"github.com/ecowatt/solardevis/internal/store"
)

// SavedQuoteHandler exposes the persisted snapshots: list at startup,
// save on explicit user action, delete by client key.
type SavedQuoteHandler struct {
	Repo store.QuoteRepository
}

func NewSavedQuoteHandler(repo store.QuoteRepository) *SavedQuoteHandler {
	return &SavedQuoteHandler{Repo: repo}
}

func (h *SavedQuoteHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/quotes", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.List(w, r)
		case http.MethodPost:
			h.Save(w, r)
		default:
			w.Header().Set("Allow", "GET,POST")
			httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		}
	})
	mux.HandleFunc("/quotes/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			w.Header().Set("Allow", "DELETE")
			httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
			return
		}
		h.Delete(w, r)
	})
}

// List: GET /quotes – every saved snapshot, in save order.
func (h *SavedQuoteHandler) List(w http.ResponseWriter, r *http.Request) {
	snaps, err := h.Repo.All()
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_quotes", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": snaps, "total": len(snaps)})
}

// Save: POST /quotes – freezes the posted profile and config under the
// client key, replacing any earlier save for the same client.
func (h *SavedQuoteHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if req.Profile.Name == "" {
		httpx.JSONError(w, http.StatusBadRequest, "missing_client_name", nil)
		return
	}
	snap := services.Snapshot(req.Profile, req.Config, time.Now())
	if err := h.Repo.Upsert(snap); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_save_quote", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, snap)
}

// Delete: DELETE /quotes/{key} – key is the URL-escaped client key.
func (h *SavedQuoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimPrefix(r.URL.Path, "/quotes/")
	key, err := url.PathUnescape(raw)
	if err != nil || key == "" {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_client_key", nil)
		return
	}
	if err := h.Repo.Delete(key); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_delete_quote", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"deleted": key})
}
