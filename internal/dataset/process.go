package dataset

import "github.com/kennethtran77/ClimateEducationVisualizer/internal/models"

// Process aligns the two raw datasets: it intersects their country sets and
// their year sets (years pooled across all countries on each side), filters
// both down to the intersection, and collapses the climate side to yearly
// averages. After Process, both datasets cover exactly the same countries and
// years, with one climate record per (country, year). Every downstream
// computation assumes this has run exactly once; running it again is a no-op.
func Process(education map[string][]models.EducationRecord, climate map[string][]models.ClimateRecord) (map[string][]models.EducationRecord, map[string][]models.ClimateRecord) {
	countries := make(map[string]bool)
	for country := range education {
		if _, ok := climate[country]; ok {
			countries[country] = true
		}
	}

	educationYears := make(map[int]bool)
	for _, rows := range education {
		for _, row := range rows {
			educationYears[row.Year] = true
		}
	}

	years := make(map[int]bool)
	for _, rows := range climate {
		for _, row := range rows {
			if educationYears[row.Year] {
				years[row.Year] = true
			}
		}
	}

	filteredEducation := FilterEducation(education, countries, years)
	filteredClimate := FilterClimate(climate, countries, years)

	return filteredEducation, YearlyAverages(filteredClimate)
}
