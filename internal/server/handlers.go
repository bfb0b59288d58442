package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"swatchbook/internal/catalog"
	"swatchbook/internal/colour"
	"swatchbook/internal/image"
	"swatchbook/internal/store"
)

// maxImportBytes caps the compressed snapshot upload size.
const maxImportBytes = 16 * 1024 * 1024

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, format string, args ...any) {
	s.writeJSON(w, status, errorResponse{Error: fmt.Sprintf(format, args...)})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"colors": s.catalog.Len(),
	})
}

func (s *Server) handleListColors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var colors []catalog.Color
	switch {
	case q.Get("keyword") != "":
		colors = s.catalog.FilterKeyword(q.Get("keyword"))
	case q.Get("temperature") != "":
		temp := colour.Temperature(q.Get("temperature"))
		switch temp {
		case colour.TemperatureWarm, colour.TemperatureCool, colour.TemperatureNeutral:
		default:
			s.writeError(w, http.StatusBadRequest, "unknown temperature %q", q.Get("temperature"))
			return
		}
		colors = s.catalog.FilterTemperature(temp)
	case q.Get("family") != "":
		colors = s.catalog.FilterFamily(colour.Family(q.Get("family")))
	default:
		colors = s.catalog.All()
	}

	if sortKey := q.Get("sort"); sortKey != "" {
		catalog.SortColors(colors, sortKey)
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"colors": colors,
		"count":  len(colors),
	})
}

func (s *Server) handleGetColor(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	col, ok := s.catalog.Get(id)
	if !ok {
		s.writeError(w, http.StatusNotFound, "colour %q not found", id)
		return
	}
	s.writeJSON(w, http.StatusOK, col)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		s.writeError(w, http.StatusBadRequest, "missing query parameter q")
		return
	}

	results := s.catalog.Search(query)
	s.writeJSON(w, http.StatusOK, map[string]any{
		"query":   query,
		"results": results,
		"count":   len(results),
	})
}

func (s *Server) handleSimilar(w http.ResponseWriter, r *http.Request) {
	hex := r.URL.Query().Get("hex")
	if hex == "" {
		s.writeError(w, http.StatusBadRequest, "missing query parameter hex")
		return
	}
	if !colour.IsValidHex(hex) {
		s.writeError(w, http.StatusBadRequest, "invalid hex colour %q", hex)
		return
	}

	threshold := colour.DefaultSimilarityThreshold
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 || parsed > 100 {
			s.writeError(w, http.StatusBadRequest, "threshold must be a number between 0 and 100")
			return
		}
		threshold = parsed
	}

	results := s.catalog.SimilarTo(hex, threshold)
	s.writeJSON(w, http.StatusOK, map[string]any{
		"target":    colour.NormalizeHex(hex),
		"threshold": threshold,
		"results":   results,
		"count":     len(results),
	})
}

func (s *Server) handleExport(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/x-xz")
	w.Header().Set("Content-Disposition", `attachment; filename="swatchbook.json.xz"`)
	if err := store.WriteSnapshot(w, s.catalog.All()); err != nil {
		s.logger.Error("export failed", "error", err)
	}
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	colors, err := store.ReadSnapshot(http.MaxBytesReader(w, r.Body, maxImportBytes))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid snapshot: %v", err)
		return
	}

	s.catalog.Replace(colors)

	if s.store != nil {
		if err := s.store.Save(r.Context(), colors); err != nil {
			s.logger.Error("failed to persist imported catalog", "error", err)
			s.writeError(w, http.StatusInternalServerError, "import persisted in memory only: %v", err)
			return
		}
	}

	s.logger.Info("catalog imported", "colors", len(colors))
	s.writeJSON(w, http.StatusOK, map[string]any{
		"imported": len(colors),
	})
}

func (s *Server) handleImportImage(w http.ResponseWriter, r *http.Request) {
	count := 8
	if raw := r.URL.Query().Get("colors"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 64 {
			s.writeError(w, http.StatusBadRequest, "colors must be between 1 and 64")
			return
		}
		count = parsed
	}

	img, err := image.Decode(http.MaxBytesReader(w, r.Body, maxImportBytes))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid image: %v", err)
		return
	}

	extracted, err := colour.NewKMeansExtractor().Extract(img, count)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "failed to extract colours: %v", err)
		return
	}

	used := s.catalog.UsedNames()
	colors := make([]catalog.Color, 0, len(extracted))
	for _, rgb := range extracted {
		colors = append(colors, catalog.NewColor(rgb.Hex(), used))
	}
	added := s.catalog.Append(colors)

	if s.store != nil {
		if err := s.store.Save(r.Context(), s.catalog.All()); err != nil {
			s.logger.Error("failed to persist extracted colours", "error", err)
			s.writeError(w, http.StatusInternalServerError, "import persisted in memory only: %v", err)
			return
		}
	}

	s.logger.Info("image imported", "extracted", len(extracted), "added", added)
	s.writeJSON(w, http.StatusOK, map[string]any{
		"extracted": len(extracted),
		"added":     added,
		"colors":    colors,
	})
}
