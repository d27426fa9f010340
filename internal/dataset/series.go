package dataset

import (
	"fmt"

	"github.com/kennethtran77/ClimateEducationVisualizer/internal/models"
)

// ClimateByYear converts a country's processed climate rows to a year-keyed
// map. Assumes Process has run, so each year appears at most once.
func ClimateByYear(country string, climate map[string][]models.ClimateRecord) map[int]models.ClimateRecord {
	byYear := make(map[int]models.ClimateRecord, len(climate[country]))
	for _, row := range climate[country] {
		byYear[row.Year] = row
	}
	return byYear
}

// BuildSeries produces the two equal-length sequences the regression runs on:
// x is the country's average temperature per year, y is the chosen attainment
// metric averaged over [startAge, endAge], both ordered by the country's
// climate rows. Both datasets must have been aligned together by Process; a
// country or year missing on either side is a broken caller contract and
// surfaces as an error, never a silent zero.
func BuildSeries(country string, startAge, endAge int, metric models.Metric, climate map[string][]models.ClimateRecord, education map[string][]models.EducationRecord) (x, y []float64, err error) {
	rows, ok := climate[country]
	if !ok {
		return nil, nil, fmt.Errorf("no climate data for %q", country)
	}

	byYear := AgeRangeAverages(education, country, startAge, endAge)

	x = make([]float64, 0, len(rows))
	y = make([]float64, 0, len(rows))
	for _, row := range rows {
		rec, ok := byYear[row.Year]
		if !ok {
			return nil, nil, fmt.Errorf("no education rows for %s in %d within ages %d-%d", country, row.Year, startAge, endAge)
		}
		x = append(x, row.AvgTemp)
		y = append(y, metric.Extract(rec))
	}
	return x, y, nil
}
