//go:build e2e

package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
)

const catalogAPIKey = "e2e-catalog-key"

var (
	dressLina = uuid.MustParse("0b7c4e0e-2f2f-4a57-9a64-5d1a3f7c9a01")
	dressJade = uuid.MustParse("6c1e5a4d-8d3b-4d7e-b1b8-4c0f3a2e9b02")
	// known to nobody
	dressGhost = uuid.MustParse("9f2d6b7a-1c4e-4b8a-a3d5-2e7f8c9d0a03")
)

// catalogDresses is what the stub catalog publishes. Prices are per day, tax included.
var catalogDresses = []map[string]any{
	{
		"id": dressLina.String(), "name": "Robe Lina", "reference": "LIN-01",
		"price_per_day_ttc": "49.90", "images": []string{"https://cdn.example.com/lina.jpg"},
		"published_post": true,
		"type_id": "t1", "type_name": "Soirée",
		"size_id": "s38", "size_name": "38",
		"color_id": "c1", "color_name": "Rouge", "hex_code": "#ff0000",
	},
	{
		"id": dressJade.String(), "name": "Robe Jade", "reference": "JAD-01",
		"price_per_day_ttc": 60, "images": []string{},
		"published_post": true,
		"type_id": "t1", "type_name": "Soirée",
		"size_id": "s36", "size_name": "36",
		"color_id": "c2", "color_name": "Bleu", "hex_code": "#0000ff",
	},
}

// startCatalogStub serves the two read endpoints the service calls.
func startCatalogStub(t *testing.T) string {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-API-Key") != catalogAPIKey {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")

		if r.URL.Path == "/dresses/details-view" {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"total":   len(catalogDresses),
				"page":    1,
				"limit":   len(catalogDresses),
				"data":    catalogDresses,
			})
			return
		}

		id, ok := strings.CutPrefix(r.URL.Path, "/dresses/")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		for _, d := range catalogDresses {
			if d["id"] == id {
				_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": d})
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	return srv.URL
}
