package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"stockboard/internal/chart"
	"stockboard/internal/collector"
	"stockboard/internal/metrics"
	"stockboard/internal/pipeline"
)

//go:embed static
var staticFS embed.FS

const dateLayout = "2006-01-02"

// Server exposes the dashboard page and its JSON API.
type Server struct {
	pipe     *pipeline.Pipeline
	symbols  []string
	lookback int // default date range, in years back from today
	met      *metrics.Metrics
	srv      *http.Server
}

// New creates the dashboard HTTP server. met may be nil.
func New(addr string, pipe *pipeline.Pipeline, symbols []string, lookbackYears int, met *metrics.Metrics) *Server {
	s := &Server{
		pipe:     pipe,
		symbols:  symbols,
		lookback: lookbackYears,
		met:      met,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/symbols", s.handleSymbols)
	mux.HandleFunc("/api/chart", s.handleChart)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())

	s.srv = &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	return s
}

// Handler returns the root handler, for tests.
func (s *Server) Handler() http.Handler { return s.srv.Handler }

// Start launches the HTTP server in a goroutine.
func (s *Server) Start() {
	go func() {
		log.Printf("[INFO] dashboard listening on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("[ERROR] dashboard server: %v", err)
		}
	}()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	data, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}

func (s *Server) handleSymbols(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	resp := struct {
		Symbols      []string `json:"symbols"`
		DefaultStart string   `json:"default_start"`
		DefaultEnd   string   `json:"default_end"`
	}{
		Symbols:      s.symbols,
		DefaultStart: now.AddDate(-s.lookback, 0, 0).Format(dateLayout),
		DefaultEnd:   now.Format(dateLayout),
	}
	s.writeJSON(w, "/api/symbols", http.StatusOK, resp)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	symbol := q.Get("symbol")
	if !s.knownSymbol(symbol) {
		s.writeError(w, "/api/chart", http.StatusBadRequest, fmt.Sprintf("unknown symbol %q", symbol))
		return
	}
	start, err := time.ParseInLocation(dateLayout, q.Get("start"), time.UTC)
	if err != nil {
		s.writeError(w, "/api/chart", http.StatusBadRequest, "start must be a YYYY-MM-DD date")
		return
	}
	end, err := time.ParseInLocation(dateLayout, q.Get("end"), time.UTC)
	if err != nil {
		s.writeError(w, "/api/chart", http.StatusBadRequest, "end must be a YYYY-MM-DD date")
		return
	}

	spec, err := s.pipe.Run(r.Context(), symbol, start, end)
	switch {
	case err == nil:
		s.writeJSON(w, "/api/chart", http.StatusOK, spec)
	case errors.Is(err, pipeline.ErrInvalidDateRange):
		s.writeError(w, "/api/chart", http.StatusBadRequest, err.Error())
	case errors.Is(err, collector.ErrNoData):
		log.Printf("[WARN] no data for %s in [%s, %s]", symbol, q.Get("start"), q.Get("end"))
		s.writeJSON(w, "/api/chart", http.StatusNotFound, map[string]string{
			"warning": fmt.Sprintf("No data found for %s.", symbol),
		})
	case errors.Is(err, chart.ErrEmptySeries):
		s.writeError(w, "/api/chart", http.StatusInternalServerError, err.Error())
	default:
		log.Printf("[ERROR] chart %s: %v", symbol, err)
		s.writeError(w, "/api/chart", http.StatusBadGateway, fmt.Sprintf("Error fetching data: %v", err))
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, "/healthz", http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) knownSymbol(symbol string) bool {
	for _, sym := range s.symbols {
		if sym == symbol {
			return true
		}
	}
	return false
}

func (s *Server) writeJSON(w http.ResponseWriter, endpoint string, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("[ERROR] encode response: %v", err)
	}
	if s.met != nil {
		s.met.RequestsTotal.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	}
}

func (s *Server) writeError(w http.ResponseWriter, endpoint string, status int, msg string) {
	s.writeJSON(w, endpoint, status, map[string]string{"error": msg})
}
