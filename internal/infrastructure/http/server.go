package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/achaudhary7/SilverInfo-sub002/internal/application"
	"github.com/achaudhary7/SilverInfo-sub002/internal/domain"
)

const (
	defaultRangeDays = 30
	maxRangeDays     = 365
)

type Server struct {
	svc  *application.PriceService
	ping func(ctx context.Context) error
}

func NewServer(svc *application.PriceService, ping func(ctx context.Context) error) *Server {
	return &Server{svc: svc, ping: ping}
}

type priceResponse struct {
	Metal          string  `json:"metal"`
	Currency       string  `json:"currency"`
	Purity         float64 `json:"purity"`
	Gram           float64 `json:"gram"`
	TenGram        float64 `json:"ten_gram"`
	Kilogram       float64 `json:"kilogram"`
	Tola           float64 `json:"tola"`
	BuyGram        float64 `json:"buy_gram"`
	Change         float64 `json:"change"`
	ChangePercent  float64 `json:"change_percent"`
	ChangeBasis    string  `json:"change_basis"`
	High           float64 `json:"high"`
	Low            float64 `json:"low"`
	FormulaVersion string  `json:"formula_version"`
	Source         string  `json:"source"`
	ResolvedAt     string  `json:"resolved_at"`
}

type historyItem struct {
	Date   string  `json:"date"`
	Gram   float64 `json:"gram"`
	Source string  `json:"source"`
}

type historyResponse struct {
	Days    int           `json:"days"`
	Entries []historyItem `json:"entries"`
}

type variantsResponse struct {
	Source   string                `json:"source"`
	Variants []domain.VariantPrice `json:"variants"`
}

// GetPrice resolves the current record. Resolution never fails; a degraded
// record still serves with its provenance visible.
func (s *Server) GetPrice(w http.ResponseWriter, r *http.Request) {
	rec := s.svc.CurrentPrice(r.Context())
	writeJSON(w, http.StatusOK, toPriceResponse(rec))
}

func (s *Server) GetPriceHistory(w http.ResponseWriter, r *http.Request) {
	days := defaultRangeDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxRangeDays {
			badRequest(w, "days must be an integer in [1,365]")
			return
		}
		days = n
	}
	entries := s.svc.HistoricalRange(r.Context(), days)
	items := make([]historyItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, historyItem{
			Date:   e.Date.Format(domain.DateLayout),
			Gram:   e.Gram,
			Source: string(e.Source),
		})
	}
	writeJSON(w, http.StatusOK, historyResponse{Days: days, Entries: items})
}

func (s *Server) GetPriceVariants(w http.ResponseWriter, r *http.Request) {
	rec := s.svc.CurrentPrice(r.Context())
	writeJSON(w, http.StatusOK, variantsResponse{
		Source:   string(rec.Source),
		Variants: application.ExpandVariants(rec, s.svc.Variants()),
	})
}

func toPriceResponse(rec domain.PriceRecord) priceResponse {
	return priceResponse{
		Metal:          rec.Metal,
		Currency:       rec.Currency,
		Purity:         rec.Purity,
		Gram:           rec.Gram,
		TenGram:        rec.TenGram,
		Kilogram:       rec.Kilogram,
		Tola:           rec.Tola,
		BuyGram:        rec.BuyGram,
		Change:         rec.Change,
		ChangePercent:  rec.ChangePercent,
		ChangeBasis:    string(rec.ChangeBasis),
		High:           rec.High,
		Low:            rec.Low,
		FormulaVersion: rec.FormulaVersion,
		Source:         string(rec.Source),
		ResolvedAt:     rec.ResolvedAt.Format(time.RFC3339),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeError(w, http.StatusBadRequest, msg)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
