package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/kennethtran77/ClimateEducationVisualizer/internal/dataset"
	"github.com/kennethtran77/ClimateEducationVisualizer/internal/metrics"
	"github.com/kennethtran77/ClimateEducationVisualizer/internal/models"
	"github.com/kennethtran77/ClimateEducationVisualizer/internal/plot"
	"github.com/kennethtran77/ClimateEducationVisualizer/internal/regression"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":    "ok",
		"countries": len(s.education),
	})
}

func (s *Server) handleAPICountries(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.countries())
}

type metricInfo struct {
	ID    models.Metric `json:"id"`
	Label string        `json:"label"`
}

func (s *Server) handleAPIMetrics(w http.ResponseWriter, r *http.Request) {
	all := models.Metrics()
	out := make([]metricInfo, 0, len(all))
	for _, m := range all {
		out = append(out, metricInfo{ID: m, Label: m.Label()})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

type seriesResponse struct {
	Country  string    `json:"country"`
	StartAge int       `json:"start_age"`
	EndAge   int       `json:"end_age"`
	Metric   string    `json:"metric"`
	Label    string    `json:"label"`
	Years    []int     `json:"years"`
	AvgTemps []float64 `json:"avg_temps"`
	Values   []float64 `json:"values"`
}

func (s *Server) handleAPISeries(w http.ResponseWriter, r *http.Request) {
	sel, err := s.parseSelection(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	years, temps, values, err := s.seriesData(sel)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(seriesResponse{
		Country:  sel.Country,
		StartAge: sel.StartAge,
		EndAge:   sel.EndAge,
		Metric:   string(sel.Metric),
		Label:    sel.Metric.Label(),
		Years:    years,
		AvgTemps: temps,
		Values:   values,
	})
}

type regressionResponse struct {
	Country   string  `json:"country"`
	StartAge  int     `json:"start_age"`
	EndAge    int     `json:"end_age"`
	Metric    string  `json:"metric"`
	Label     string  `json:"label"`
	Intercept float64 `json:"intercept"`
	Slope     float64 `json:"slope"`
	N         int     `json:"n"`
}

func (s *Server) handleAPIRegression(w http.ResponseWriter, r *http.Request) {
	sel, err := s.parseSelection(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	x, y, err := dataset.BuildSeries(sel.Country, sel.StartAge, sel.EndAge, sel.Metric, s.climate, s.education)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if regression.Degenerate(x, y) {
		http.Error(w, "selection has too few points or constant temperature for a regression", http.StatusBadRequest)
		return
	}

	a, b := regression.Linear(x, y)
	metrics.RegressionsComputed.Inc()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(regressionResponse{
		Country:   sel.Country,
		StartAge:  sel.StartAge,
		EndAge:    sel.EndAge,
		Metric:    string(sel.Metric),
		Label:     sel.Metric.Label(),
		Intercept: a,
		Slope:     b,
		N:         len(x),
	})
}

func (s *Server) handleSeriesImage(w http.ResponseWriter, r *http.Request) {
	sel, err := s.parseSelection(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	years, temps, values, err := s.seriesData(sel)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	title := fmt.Sprintf("%s Climate-Education Attainment Relation (Ages %d - %d)", sel.Country, sel.StartAge, sel.EndAge)
	img, err := plot.SeriesPNG(years, temps, values, title, "Avg Temp (Celsius)", sel.Metric.Label())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(img)
}

func (s *Server) handleRegressionImage(w http.ResponseWriter, r *http.Request) {
	sel, err := s.parseSelection(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	x, y, err := dataset.BuildSeries(sel.Country, sel.StartAge, sel.EndAge, sel.Metric, s.climate, s.education)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if regression.Degenerate(x, y) {
		http.Error(w, "selection has too few points or constant temperature for a regression", http.StatusBadRequest)
		return
	}

	a, b := regression.Linear(x, y)
	metrics.RegressionsComputed.Inc()

	title := fmt.Sprintf("%s: Average Temperature (Celsius) compared to %s", sel.Country, sel.Metric.Label())
	img, err := plot.RegressionPNG(x, y, a, b, title, "Average Temperature (Celsius)", sel.Metric.Label())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(img)
}
