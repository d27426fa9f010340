package models

import "fmt"

// Metric identifies one of the eleven attainment fields on EducationRecord.
// Values are the Barro-Lee column codes, so a metric named on the command line
// or in a URL matches the source CSV header.
type Metric string

const (
	MetricNoSchooling       Metric = "lu"
	MetricPrimary           Metric = "lp"
	MetricPrimaryComplete   Metric = "lpc"
	MetricSecondary         Metric = "ls"
	MetricSecondaryComplete Metric = "lsc"
	MetricTertiary          Metric = "lh"
	MetricTertiaryComplete  Metric = "lhc"
	MetricYearsSchooling    Metric = "yr_sch"
	MetricYearsPrimary      Metric = "yr_sch_pri"
	MetricYearsSecondary    Metric = "yr_sch_sec"
	MetricYearsTertiary     Metric = "yr_sch_ter"
)

type metricInfo struct {
	label   string
	extract func(EducationRecord) float64
}

// metricTable keeps extraction declarative: adding a metric means adding one
// entry here and one constant above.
var metricTable = map[Metric]metricInfo{
	MetricNoSchooling:       {"Percentage of No Schooling", func(r EducationRecord) float64 { return r.PctNoSchooling }},
	MetricPrimary:           {"Percentage of Primary Schooling", func(r EducationRecord) float64 { return r.PctPrimary }},
	MetricPrimaryComplete:   {"Percentage of Complete Primary Schooling", func(r EducationRecord) float64 { return r.PctPrimaryComplete }},
	MetricSecondary:         {"Percentage of Secondary Schooling", func(r EducationRecord) float64 { return r.PctSecondary }},
	MetricSecondaryComplete: {"Percentage of Complete Secondary Schooling", func(r EducationRecord) float64 { return r.PctSecondaryComplete }},
	MetricTertiary:          {"Percentage of Tertiary Schooling", func(r EducationRecord) float64 { return r.PctTertiary }},
	MetricTertiaryComplete:  {"Percentage of Complete Tertiary Schooling", func(r EducationRecord) float64 { return r.PctTertiaryComplete }},
	MetricYearsSchooling:    {"Average Years of Schooling", func(r EducationRecord) float64 { return r.AvgYearsSchooling }},
	MetricYearsPrimary:      {"Average Years of Primary Schooling", func(r EducationRecord) float64 { return r.AvgYearsPrimary }},
	MetricYearsSecondary:    {"Average Years of Secondary Schooling", func(r EducationRecord) float64 { return r.AvgYearsSecondary }},
	MetricYearsTertiary:     {"Average Years of Tertiary Schooling", func(r EducationRecord) float64 { return r.AvgYearsTertiary }},
}

// metricOrder is the display order, matching the column order of the dataset.
var metricOrder = []Metric{
	MetricNoSchooling,
	MetricPrimary,
	MetricPrimaryComplete,
	MetricSecondary,
	MetricSecondaryComplete,
	MetricTertiary,
	MetricTertiaryComplete,
	MetricYearsSchooling,
	MetricYearsPrimary,
	MetricYearsSecondary,
	MetricYearsTertiary,
}

// Metrics returns all attainment metrics in a stable display order.
func Metrics() []Metric {
	out := make([]Metric, len(metricOrder))
	copy(out, metricOrder)
	return out
}

// ParseMetric validates a metric identifier supplied by a caller.
func ParseMetric(s string) (Metric, error) {
	m := Metric(s)
	if _, ok := metricTable[m]; !ok {
		return "", fmt.Errorf("unknown metric %q", s)
	}
	return m, nil
}

// Label returns the human-readable name of the metric.
func (m Metric) Label() string {
	return metricTable[m].label
}

// Extract returns the value of this metric from a record. The metric must be
// one of the declared constants; use ParseMetric to validate external input.
func (m Metric) Extract(r EducationRecord) float64 {
	return metricTable[m].extract(r)
}
