package dataset

import (
	"fmt"

	"github.com/kennethtran77/ClimateEducationVisualizer/internal/models"
)

// Barro-Lee groups populations into five-year age bands starting at 15, with
// an open-ended 75+ band that selections never need to cover.
const (
	MinAgeFrom = 15
	MaxAgeTo   = 74
)

// ValidateAgeRange checks that [startAge, endAge] lines up with the dataset's
// five-year age bands: start on a band boundary, end on a band's last year,
// start before end. Presentation callers run this before any aggregation.
func ValidateAgeRange(startAge, endAge int) error {
	if startAge >= endAge {
		return fmt.Errorf("start age %d must be less than end age %d", startAge, endAge)
	}
	if startAge < MinAgeFrom || startAge%5 != 0 {
		return fmt.Errorf("start age %d must be one of %d, %d, ... %d", startAge, MinAgeFrom, MinAgeFrom+5, MaxAgeTo-4)
	}
	if endAge > MaxAgeTo || endAge%5 != 4 {
		return fmt.Errorf("end age %d must be one of %d, %d, ... %d", endAge, MinAgeFrom+4, MinAgeFrom+9, MaxAgeTo)
	}
	return nil
}

// AgeRangeAverages selects the country's records whose age band lies fully
// inside [startAge, endAge], groups them by year, and averages each of the
// eleven attainment fields across the group. The result maps each populated
// year to one synthesized record carrying the requested age range; years with
// no matching band are absent. Note the source rows are sex-disaggregated, so
// each band usually contributes two rows to its year's average.
func AgeRangeAverages(education map[string][]models.EducationRecord, country string, startAge, endAge int) map[int]models.EducationRecord {
	groups := make(map[int][]models.EducationRecord)
	for _, row := range education[country] {
		if startAge <= row.AgeFrom && row.AgeTo <= endAge {
			groups[row.Year] = append(groups[row.Year], row)
		}
	}

	averaged := make(map[int]models.EducationRecord, len(groups))
	for year, rows := range groups {
		avg := models.EducationRecord{
			Country: country,
			Year:    year,
			AgeFrom: startAge,
			AgeTo:   endAge,
		}
		for _, row := range rows {
			addAttainment(&avg, row)
		}
		scaleAttainment(&avg, float64(len(rows)))
		averaged[year] = avg
	}
	return averaged
}

func addAttainment(dst *models.EducationRecord, src models.EducationRecord) {
	dst.PctNoSchooling += src.PctNoSchooling
	dst.PctPrimary += src.PctPrimary
	dst.PctPrimaryComplete += src.PctPrimaryComplete
	dst.PctSecondary += src.PctSecondary
	dst.PctSecondaryComplete += src.PctSecondaryComplete
	dst.PctTertiary += src.PctTertiary
	dst.PctTertiaryComplete += src.PctTertiaryComplete
	dst.AvgYearsSchooling += src.AvgYearsSchooling
	dst.AvgYearsPrimary += src.AvgYearsPrimary
	dst.AvgYearsSecondary += src.AvgYearsSecondary
	dst.AvgYearsTertiary += src.AvgYearsTertiary
}

func scaleAttainment(dst *models.EducationRecord, n float64) {
	dst.PctNoSchooling /= n
	dst.PctPrimary /= n
	dst.PctPrimaryComplete /= n
	dst.PctSecondary /= n
	dst.PctSecondaryComplete /= n
	dst.PctTertiary /= n
	dst.PctTertiaryComplete /= n
	dst.AvgYearsSchooling /= n
	dst.AvgYearsPrimary /= n
	dst.AvgYearsSecondary /= n
	dst.AvgYearsTertiary /= n
}
