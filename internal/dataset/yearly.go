package dataset

import "github.com/kennethtran77/ClimateEducationVisualizer/internal/models"

// YearlyAverages collapses climate rows to one record per (country, year),
// with AvgTemp the arithmetic mean of the group. The source data has monthly
// rows, so this is where a country's year gets a single temperature. Years
// keep their first-seen order within each country.
func YearlyAverages(data map[string][]models.ClimateRecord) map[string][]models.ClimateRecord {
	averaged := make(map[string][]models.ClimateRecord, len(data))
	for country, rows := range data {
		var order []int
		sums := make(map[int]float64)
		counts := make(map[int]int)

		for _, row := range rows {
			if counts[row.Year] == 0 {
				order = append(order, row.Year)
			}
			sums[row.Year] += row.AvgTemp
			counts[row.Year]++
		}

		out := make([]models.ClimateRecord, 0, len(order))
		for _, year := range order {
			out = append(out, models.ClimateRecord{
				Country: country,
				Year:    year,
				AvgTemp: sums[year] / float64(counts[year]),
			})
		}
		averaged[country] = out
	}
	return averaged
}
