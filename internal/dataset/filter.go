// Package dataset aligns the education and climate datasets by country and
// year and aggregates them into the per-year form the regression consumes.
// Every function returns freshly built maps; inputs are never mutated, so raw
// parsed data can be re-filtered with different parameters.
package dataset

import "github.com/kennethtran77/ClimateEducationVisualizer/internal/models"

// FilterEducation keeps only records whose country and year appear in the
// given sets. Countries absent from data, or left with no matching rows, are
// omitted from the result. Row order within a country follows the source.
func FilterEducation(data map[string][]models.EducationRecord, countries map[string]bool, years map[int]bool) map[string][]models.EducationRecord {
	filtered := make(map[string][]models.EducationRecord)
	for country := range countries {
		for _, row := range data[country] {
			if years[row.Year] {
				filtered[country] = append(filtered[country], row)
			}
		}
	}
	return filtered
}

// FilterClimate is the climate counterpart of FilterEducation.
func FilterClimate(data map[string][]models.ClimateRecord, countries map[string]bool, years map[int]bool) map[string][]models.ClimateRecord {
	filtered := make(map[string][]models.ClimateRecord)
	for country := range countries {
		for _, row := range data[country] {
			if years[row.Year] {
				filtered[country] = append(filtered[country], row)
			}
		}
	}
	return filtered
}
