package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/alecthomas/kong"
	kongdotenv "github.com/titusjaka/kong-dotenv-go"

	"github.com/kennethtran77/ClimateEducationVisualizer/internal/api"
	"github.com/kennethtran77/ClimateEducationVisualizer/internal/dataset"
	"github.com/kennethtran77/ClimateEducationVisualizer/internal/ingest"
	"github.com/kennethtran77/ClimateEducationVisualizer/internal/models"
	"github.com/kennethtran77/ClimateEducationVisualizer/internal/plot"
	"github.com/kennethtran77/ClimateEducationVisualizer/internal/regression"
)

type Globals struct {
	EducationFile string `help:"Path to the Barro-Lee education attainment CSV." env:"EDUCATION_CSV" default:"data/education.csv"`
	ClimateFile   string `help:"Path to the Berkeley Earth by-country temperature CSV." env:"CLIMATE_CSV" default:"data/climate.csv"`
}

type CLI struct {
	Globals

	Countries CountriesCmd `cmd:"" help:"List countries available after aligning the two datasets."`
	Series    SeriesCmd    `cmd:"" help:"Print the aligned per-year temperature and attainment series for a country."`
	Regress   RegressCmd   `cmd:"" help:"Fit a linear regression of an attainment metric against average temperature."`
	Fetch     FetchCmd     `cmd:"" help:"Download the source dataset CSVs."`
	Serve     ServeCmd     `cmd:"" help:"Serve the processed datasets over HTTP."`
}

// loadProcessed reads both CSVs and aligns them by country and year. Every
// command except fetch starts here.
func loadProcessed(g *Globals) (map[string][]models.EducationRecord, map[string][]models.ClimateRecord, error) {
	rawEducation, err := ingest.ReadEducation(g.EducationFile)
	if err != nil {
		return nil, nil, err
	}
	rawClimate, err := ingest.ReadClimate(g.ClimateFile)
	if err != nil {
		return nil, nil, err
	}
	education, climate := dataset.Process(rawEducation, rawClimate)
	return education, climate, nil
}

// SelectionFlags mirror the original picker: a country, a band-aligned age
// range, and one of the eleven attainment metrics.
type SelectionFlags struct {
	Country  string `arg:"" help:"Country name as it appears in both datasets."`
	StartAge int    `help:"Start of the age range (15, 20, ... 70)." default:"15"`
	EndAge   int    `help:"End of the age range (19, 24, ... 74)." default:"19"`
	Metric   string `help:"Attainment metric, as a Barro-Lee column code." default:"lu" enum:"lu,lp,lpc,ls,lsc,lh,lhc,yr_sch,yr_sch_pri,yr_sch_sec,yr_sch_ter"`
}

func (f *SelectionFlags) selection() (models.Metric, error) {
	if err := dataset.ValidateAgeRange(f.StartAge, f.EndAge); err != nil {
		return "", err
	}
	return models.ParseMetric(f.Metric)
}

type CountriesCmd struct{}

func (c *CountriesCmd) Run(g *Globals) error {
	education, _, err := loadProcessed(g)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(education))
	for country := range education {
		names = append(names, country)
	}
	sort.Strings(names)
	for _, country := range names {
		fmt.Println(country)
	}
	return nil
}

type SeriesCmd struct {
	SelectionFlags
	PNG string `help:"Also write the raw series chart to this file."`
}

func (c *SeriesCmd) Run(g *Globals) error {
	metric, err := c.selection()
	if err != nil {
		return err
	}

	education, climate, err := loadProcessed(g)
	if err != nil {
		return err
	}

	temps, values, err := dataset.BuildSeries(c.Country, c.StartAge, c.EndAge, metric, climate, education)
	if err != nil {
		return err
	}

	fmt.Printf("%-6s  %-18s  %s\n", "year", "avg temp (C)", metric.Label())
	for i, row := range climate[c.Country] {
		fmt.Printf("%-6d  %-18.4f  %.4f\n", row.Year, temps[i], values[i])
	}

	if c.PNG != "" {
		years := make([]int, 0, len(climate[c.Country]))
		for _, row := range climate[c.Country] {
			years = append(years, row.Year)
		}
		title := fmt.Sprintf("%s Climate-Education Attainment Relation (Ages %d - %d)", c.Country, c.StartAge, c.EndAge)
		img, err := plot.SeriesPNG(years, temps, values, title, "Avg Temp (Celsius)", metric.Label())
		if err != nil {
			return err
		}
		if err := os.WriteFile(c.PNG, img, 0o644); err != nil {
			return fmt.Errorf("write chart: %w", err)
		}
		log.Printf("wrote %s", c.PNG)
	}
	return nil
}

type RegressCmd struct {
	SelectionFlags
	PNG string `help:"Also write a chart of the fit to this file."`
}

func (c *RegressCmd) Run(g *Globals) error {
	metric, err := c.selection()
	if err != nil {
		return err
	}

	education, climate, err := loadProcessed(g)
	if err != nil {
		return err
	}

	x, y, err := dataset.BuildSeries(c.Country, c.StartAge, c.EndAge, metric, climate, education)
	if err != nil {
		return err
	}
	if regression.Degenerate(x, y) {
		return fmt.Errorf("selection yields %d points with constant or missing temperature variation; pick a wider range", len(x))
	}

	a, b := regression.Linear(x, y)

	fmt.Printf("country:   %s\n", c.Country)
	fmt.Printf("metric:    %s (%s)\n", metric.Label(), metric)
	fmt.Printf("ages:      %d-%d\n", c.StartAge, c.EndAge)
	fmt.Printf("points:    %d\n", len(x))
	fmt.Printf("intercept: %.6f\n", a)
	fmt.Printf("slope:     %.6f\n", b)
	fmt.Printf("fit:       y = %.4f + %.4f*x\n", a, b)

	if c.PNG != "" {
		title := fmt.Sprintf("%s: Average Temperature (Celsius) compared to %s", c.Country, metric.Label())
		img, err := plot.RegressionPNG(x, y, a, b, title, "Average Temperature (Celsius)", metric.Label())
		if err != nil {
			return err
		}
		if err := os.WriteFile(c.PNG, img, 0o644); err != nil {
			return fmt.Errorf("write chart: %w", err)
		}
		log.Printf("wrote %s", c.PNG)
	}
	return nil
}

type FetchCmd struct {
	EducationURL string `help:"URL of the Barro-Lee attainment CSV." default:"http://www.barrolee.com/data/BL_v2.2/BL2013_MF1599_v2.2.csv"`
	ClimateURL   string `help:"URL of the Berkeley Earth by-country CSV (http, https or ftp mirror)."`
	Dir          string `help:"Directory to write the datasets into." default:"data"`
}

func (c *FetchCmd) Run(g *Globals) error {
	fetcher := ingest.NewFetcher()

	log.Printf("fetching education data from %s", c.EducationURL)
	if err := fetcher.Download(c.EducationURL, c.Dir+"/education.csv"); err != nil {
		return fmt.Errorf("fetch education data: %w", err)
	}

	if c.ClimateURL != "" {
		log.Printf("fetching climate data from %s", c.ClimateURL)
		if err := fetcher.Download(c.ClimateURL, c.Dir+"/climate.csv"); err != nil {
			return fmt.Errorf("fetch climate data: %w", err)
		}
	} else {
		log.Printf("no --climate-url given; place the Berkeley Earth CSV at %s/climate.csv yourself", c.Dir)
	}

	log.Println("done")
	return nil
}

type ServeCmd struct {
	Port string `help:"HTTP server port." env:"PORT" default:"8080"`
}

func (c *ServeCmd) Run(g *Globals) error {
	education, climate, err := loadProcessed(g)
	if err != nil {
		return err
	}
	log.Printf("aligned %d countries", len(education))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	server := api.NewServer(education, climate, c.Port)
	log.Printf("starting server on :%s", c.Port)
	return server.Run(ctx)
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("climateedu"),
		kong.Description("Analyse country-level climate temperature against education attainment."),
		kong.UsageOnError(),
		kong.Configuration(kongdotenv.ENVFileReader, ".env"),
	)
	ctx.FatalIfErrorf(ctx.Run(&cli.Globals))
}
