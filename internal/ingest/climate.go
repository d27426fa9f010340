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

// climateHeader is the exact header of the Berkeley Earth by-country CSV.
var climateHeader = []string{"dt", "AverageTemperature", "AverageTemperatureUncertainty", "Country"}

const (
	climColDate    = 0
	climColTemp    = 1
	climColCountry = 3
)

// ReadClimate parses the Berkeley Earth land temperature CSV at path into
// records grouped by country, preserving input row order within each country.
// Rows with an empty temperature field are skipped; the year is taken from
// the first four characters of the date column, so monthly YYYY-MM-DD rows
// bucket by calendar year without full date parsing.
func ReadClimate(path string) (map[string][]models.ClimateRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open climate data: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read climate header: %w", err)
	}
	if !slices.Equal(header, climateHeader) {
		return nil, &FormatError{Path: path}
	}

	byCountry := make(map[string][]models.ClimateRecord)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read climate row: %w", err)
		}

		if row[climColTemp] == "" {
			metrics.RowsSkipped.WithLabelValues("climate", "missing_temperature").Inc()
			continue
		}

		date := row[climColDate]
		if len(date) > 4 {
			date = date[:4]
		}
		year, err := strconv.Atoi(date)
		if err != nil {
			return nil, fmt.Errorf("climate data %s: parse year %q: %w", path, row[climColDate], err)
		}

		temp, err := strconv.ParseFloat(row[climColTemp], 64)
		if err != nil {
			return nil, fmt.Errorf("climate data %s: parse temperature %q: %w", path, row[climColTemp], err)
		}

		country := row[climColCountry]
		byCountry[country] = append(byCountry[country], models.ClimateRecord{
			Country: country,
			Year:    year,
			AvgTemp: temp,
		})
		metrics.RowsParsed.WithLabelValues("climate").Inc()
	}

	return byCountry, nil
}
