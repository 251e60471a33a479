package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/ecowatt/solardevis/internal/httpx"
	"github.com/ecowatt/solardevis/internal/ingest"
	"github.com/ecowatt/solardevis/internal/models"
	"github.com/ecowatt/solardevis/internal/services"
)

// Imports are whole audit files posted as the request body; 16 MiB covers
// years of audits with margin.
const maxImportBytes = 16 << 20

// ImportHandler turns an uploaded audit export into grouped client
// profiles. It holds no state: the client keeps the profiles and posts them
// back for computation, so a failed import can never clear what the user
// already loaded.
type ImportHandler struct{}

func NewImportHandler() *ImportHandler { return &ImportHandler{} }

func (h *ImportHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/import", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", "POST")
			httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
			return
		}
		h.Import(w, r)
	})
}

// Import: POST /import – body is the raw CSV text, or an XLSX workbook when
// the content type says so.
func (h *ImportHandler) Import(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	body := io.LimitReader(r.Body, maxImportBytes)

	items, err := func() ([]models.LineItem, error) {
		if isExcelUpload(r) {
			return ingest.ParseXLSX(body)
		}
		raw, err := io.ReadAll(body)
		if err != nil {
			return nil, err
		}
		return ingest.ParseCSV(string(raw)), nil
	}()
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "unreadable_file", err.Error())
		return
	}
	if len(items) == 0 {
		// Explicit user-facing condition, not a crash: the caller keeps
		// whatever it had loaded before.
		httpx.JSONError(w, http.StatusBadRequest, "empty_import", "le fichier ne contient aucune ligne de données")
		return
	}

	profiles := services.GroupByClient(items)
	httpx.JSON(w, http.StatusOK, map[string]any{
		"profiles": profiles,
		"rowCount": len(items),
	})
}

func isExcelUpload(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	if strings.Contains(ct, "spreadsheetml") || strings.Contains(ct, "ms-excel") {
		return true
	}
	return strings.HasSuffix(strings.ToLower(r.URL.Query().Get("filename")), ".xlsx")
}
