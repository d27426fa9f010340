package api

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kennethtran77/ClimateEducationVisualizer/internal/dataset"
	"github.com/kennethtran77/ClimateEducationVisualizer/internal/models"
)

// Server serves the processed datasets over HTTP: JSON selection endpoints,
// rendered chart PNGs, and an index page. It holds the session's aligned data
// read-only for its lifetime, standing in for the original desktop front end.
type Server struct {
	education map[string][]models.EducationRecord
	climate   map[string][]models.ClimateRecord
	port      string
}

// NewServer wraps datasets already aligned by dataset.Process.
func NewServer(education map[string][]models.EducationRecord, climate map[string][]models.ClimateRecord, port string) *Server {
	return &Server{
		education: education,
		climate:   climate,
		port:      port,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/chart.png", s.handleSeriesImage)
	mux.HandleFunc("/regression.png", s.handleRegressionImage)
	mux.HandleFunc("/api/countries", s.handleAPICountries)
	mux.HandleFunc("/api/metrics", s.handleAPIMetrics)
	mux.HandleFunc("/api/series", s.handleAPISeries)
	mux.HandleFunc("/api/regression", s.handleAPIRegression)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    ":" + s.port,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// countries returns the aligned country names sorted for display, the way the
// original populated its country picker.
func (s *Server) countries() []string {
	names := make([]string, 0, len(s.education))
	for country := range s.education {
		names = append(names, country)
	}
	sort.Strings(names)
	return names
}

// selection is one country/age-range/metric query against the datasets.
type selection struct {
	Country  string
	StartAge int
	EndAge   int
	Metric   models.Metric
}

// parseSelection validates query parameters the way the original GUI
// constrained its pickers: an aligned country, band-aligned ages, and one of
// the eleven metrics. Ages and metric fall back to the first picker values.
func (s *Server) parseSelection(r *http.Request) (selection, error) {
	q := r.URL.Query()

	sel := selection{
		Country:  q.Get("country"),
		StartAge: dataset.MinAgeFrom,
		EndAge:   dataset.MinAgeFrom + 4,
		Metric:   models.MetricNoSchooling,
	}

	if sel.Country == "" {
		return sel, fmt.Errorf("country is required")
	}
	if _, ok := s.climate[sel.Country]; !ok {
		return sel, fmt.Errorf("unknown country %q", sel.Country)
	}

	if v := q.Get("start_age"); v != "" {
		age, err := strconv.Atoi(v)
		if err != nil {
			return sel, fmt.Errorf("invalid start_age %q", v)
		}
		sel.StartAge = age
	}
	if v := q.Get("end_age"); v != "" {
		age, err := strconv.Atoi(v)
		if err != nil {
			return sel, fmt.Errorf("invalid end_age %q", v)
		}
		sel.EndAge = age
	}
	if err := dataset.ValidateAgeRange(sel.StartAge, sel.EndAge); err != nil {
		return sel, err
	}

	if v := q.Get("metric"); v != "" {
		m, err := models.ParseMetric(v)
		if err != nil {
			return sel, err
		}
		sel.Metric = m
	}

	return sel, nil
}

// seriesData assembles the aligned per-year view for a selection: the years in
// climate row order with the matching temperatures and metric values.
func (s *Server) seriesData(sel selection) (years []int, temps, values []float64, err error) {
	temps, values, err = dataset.BuildSeries(sel.Country, sel.StartAge, sel.EndAge, sel.Metric, s.climate, s.education)
	if err != nil {
		return nil, nil, nil, err
	}
	for _, row := range s.climate[sel.Country] {
		years = append(years, row.Year)
	}
	return years, temps, values, nil
}
