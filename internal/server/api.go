package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/colorvane/colorvane/internal/catalog"
)

// NameResponse is the nearest-name lookup result.
type NameResponse struct {
	Query string         `json:"query"`
	Name  string         `json:"name"`
	Match *catalog.Entry `json:"match,omitempty"`
}

// ColorsResponse lists the full catalog.
type ColorsResponse struct {
	Total  int             `json:"total"`
	Colors []catalog.Entry `json:"colors"`
}

// ErrorResponse is the error body for non-2xx responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HealthResponse is the /healthz body.
type HealthResponse struct {
	Status      string `json:"status"`
	CatalogSize int    `json:"catalog_size"`
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, err string, msg string) {
	writeJSON(w, status, ErrorResponse{Error: err, Message: msg})
}

// handleGetName returns the nearest catalog name for ?hex=rrggbb.
func (s *Server) handleGetName(w http.ResponseWriter, r *http.Request) {
	hex := r.URL.Query().Get("hex")
	if hex == "" {
		lookupsTotal.WithLabelValues("bad_request").Inc()
		writeError(w, http.StatusBadRequest, "missing_hex", "Query parameter 'hex' is required")
		return
	}

	red, green, blue, err := catalog.ParseHex(hex)
	if err != nil {
		lookupsTotal.WithLabelValues("bad_request").Inc()
		writeError(w, http.StatusBadRequest, "invalid_hex", err.Error())
		return
	}

	cat := s.Catalog()
	resp := NameResponse{Query: hex}
	if entry, ok := cat.Nearest(red, green, blue); ok {
		resp.Name = entry.Name
		resp.Match = &entry
		lookupsTotal.WithLabelValues("matched").Inc()
	} else {
		resp.Name = "Unknown"
		lookupsTotal.WithLabelValues("empty_catalog").Inc()
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleGetColors returns the full catalog in order.
func (s *Server) handleGetColors(w http.ResponseWriter, r *http.Request) {
	cat := s.Catalog()
	writeJSON(w, http.StatusOK, ColorsResponse{Total: len(cat), Colors: cat})
}

// handleGetColor returns the exact catalog entry for a hex key, or 404.
func (s *Server) handleGetColor(w http.ResponseWriter, r *http.Request) {
	hex := chi.URLParam(r, "hex")

	if _, _, _, err := catalog.ParseHex(hex); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_hex", err.Error())
		return
	}

	entry, ok := s.Catalog().Lookup(hex)
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "No catalog entry with hex "+hex)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// handleHealthz reports liveness and catalog size.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:      "ok",
		CatalogSize: len(s.Catalog()),
	})
}
