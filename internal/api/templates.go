package api

import (
	"embed"
	"html/template"
	"log"
	"net/http"

	"github.com/kennethtran77/ClimateEducationVisualizer/internal/dataset"
	"github.com/kennethtran77/ClimateEducationVisualizer/internal/models"
)

//go:embed templates/*
var templateFS embed.FS

var tmpl = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type indexData struct {
	Countries []string
	Metrics   []metricInfo
	StartAges []int
	EndAges   []int

	// Current selection, when the form has been submitted.
	Selected *selection
	Query    string
	Error    string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := indexData{Countries: s.countries()}
	for _, m := range models.Metrics() {
		data.Metrics = append(data.Metrics, metricInfo{ID: m, Label: m.Label()})
	}
	for age := dataset.MinAgeFrom; age <= dataset.MaxAgeTo-4; age += 5 {
		data.StartAges = append(data.StartAges, age)
		data.EndAges = append(data.EndAges, age+4)
	}

	if r.URL.Query().Get("country") != "" {
		sel, err := s.parseSelection(r)
		if err != nil {
			data.Error = err.Error()
		} else {
			data.Selected = &sel
			data.Query = r.URL.RawQuery
		}
	}

	if err := tmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		log.Printf("render index: %v", err)
	}
}
