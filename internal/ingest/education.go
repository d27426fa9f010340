package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/kennethtran77/ClimateEducationVisualizer/internal/metrics"
	"github.com/kennethtran77/ClimateEducationVisualizer/internal/models"
)

// educationHeader is the exact header of the Barro-Lee attainment CSV. Any
// deviation in order, case or spelling means the wrong file was supplied.
var educationHeader = []string{
	"BLcode", "country", "year", "sex", "agefrom", "ageto",
	"lu", "lp", "lpc", "ls", "lsc", "lh", "lhc",
	"yr_sch", "yr_sch_pri", "yr_sch_sec", "yr_sch_ter",
	"pop", "WBcode", "region_code",
}

// Column positions within educationHeader.
const (
	eduColCountry     = 1
	eduColYear        = 2
	eduColAgeFrom     = 4
	eduColAgeTo       = 5
	eduColFirstMetric = 6 // lu, the first of eleven numeric attainment columns
)

// ReadEducation parses the Barro-Lee attainment CSV at path into records
// grouped by country, preserving input row order within each country.
// A header mismatch returns a *FormatError; a malformed numeric field is
// fatal and aborts the load.
func ReadEducation(path string) (map[string][]models.EducationRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open education data: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read education header: %w", err)
	}
	if !slices.Equal(header, educationHeader) {
		return nil, &FormatError{Path: path}
	}

	byCountry := make(map[string][]models.EducationRecord)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read education row: %w", err)
		}

		rec, err := parseEducationRow(row)
		if err != nil {
			return nil, fmt.Errorf("education data %s: %w", path, err)
		}

		byCountry[rec.Country] = append(byCountry[rec.Country], rec)
		metrics.RowsParsed.WithLabelValues("education").Inc()
	}

	return byCountry, nil
}

func parseEducationRow(row []string) (models.EducationRecord, error) {
	rec := models.EducationRecord{Country: row[eduColCountry]}

	var err error
	if rec.Year, err = strconv.Atoi(row[eduColYear]); err != nil {
		return rec, fmt.Errorf("parse year %q: %w", row[eduColYear], err)
	}
	if rec.AgeFrom, err = strconv.Atoi(row[eduColAgeFrom]); err != nil {
		return rec, fmt.Errorf("parse agefrom %q: %w", row[eduColAgeFrom], err)
	}
	if rec.AgeTo, err = strconv.Atoi(row[eduColAgeTo]); err != nil {
		return rec, fmt.Errorf("parse ageto %q: %w", row[eduColAgeTo], err)
	}

	// The eleven attainment columns appear in metricTable order, which is
	// the column order of the dataset.
	fields := []*float64{
		&rec.PctNoSchooling,
		&rec.PctPrimary,
		&rec.PctPrimaryComplete,
		&rec.PctSecondary,
		&rec.PctSecondaryComplete,
		&rec.PctTertiary,
		&rec.PctTertiaryComplete,
		&rec.AvgYearsSchooling,
		&rec.AvgYearsPrimary,
		&rec.AvgYearsSecondary,
		&rec.AvgYearsTertiary,
	}
	for i, field := range fields {
		col := eduColFirstMetric + i
		v, err := strconv.ParseFloat(row[col], 64)
		if err != nil {
			return rec, fmt.Errorf("parse %s %q for %s/%d: %w",
				educationHeader[col], row[col], rec.Country, rec.Year, err)
		}
		*field = v
	}

	return rec, nil
}
