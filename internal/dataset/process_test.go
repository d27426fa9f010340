package dataset

import (
	"reflect"
	"testing"

	"github.com/kennethtran77/ClimateEducationVisualizer/internal/models"
)

func TestProcess_Intersection(t *testing.T) {
	education := map[string][]models.EducationRecord{
		"Canada": {
			eduRow("Canada", 1950, 15, 19, 10),
			eduRow("Canada", 1955, 15, 19, 9),
		},
		"France": {
			eduRow("France", 1950, 15, 19, 8),
		},
	}
	climate := map[string][]models.ClimateRecord{
		"Canada": {
			climRow("Canada", 1950, 10.0),
			climRow("Canada", 1950, 12.0),
			climRow("Canada", 1960, 11.0),
		},
		"Germany": {
			climRow("Germany", 1950, 9.0),
		},
	}

	gotEducation, gotClimate := Process(education, climate)

	// Countries: only Canada appears in both datasets.
	if len(gotEducation) != 1 || len(gotClimate) != 1 {
		t.Fatalf("got %d/%d countries, want 1/1", len(gotEducation), len(gotClimate))
	}
	if _, ok := gotEducation["France"]; ok {
		t.Error("France has no climate data but survived processing")
	}
	if _, ok := gotClimate["Germany"]; ok {
		t.Error("Germany has no education data but survived processing")
	}

	// Years: education {1950, 1955} intersected with climate {1950, 1960}.
	if len(gotEducation["Canada"]) != 1 || gotEducation["Canada"][0].Year != 1950 {
		t.Errorf("education rows = %+v, want single 1950 row", gotEducation["Canada"])
	}
	if len(gotClimate["Canada"]) != 1 {
		t.Fatalf("climate rows = %+v, want single 1950 row", gotClimate["Canada"])
	}

	// The two 1950 monthly rows collapse to their mean.
	if got := gotClimate["Canada"][0]; got.Year != 1950 || got.AvgTemp != 11.0 {
		t.Errorf("climate row = %+v, want 1950 at 11.0", got)
	}
}

func TestProcess_YearsPooledAcrossCountries(t *testing.T) {
	// France only has 1955 education rows and Canada only 1950 rows, but the
	// year intersection pools years over all countries, so both years stay
	// for both datasets.
	education := map[string][]models.EducationRecord{
		"Canada": {eduRow("Canada", 1950, 15, 19, 10)},
		"France": {eduRow("France", 1955, 15, 19, 8)},
	}
	climate := map[string][]models.ClimateRecord{
		"Canada": {climRow("Canada", 1950, 10.0), climRow("Canada", 1955, 11.0)},
		"France": {climRow("France", 1950, 12.0), climRow("France", 1955, 13.0)},
	}

	_, gotClimate := Process(education, climate)

	if len(gotClimate["Canada"]) != 2 {
		t.Errorf("Canada climate rows = %+v, want both 1950 and 1955", gotClimate["Canada"])
	}
	if len(gotClimate["France"]) != 2 {
		t.Errorf("France climate rows = %+v, want both 1950 and 1955", gotClimate["France"])
	}
}

func TestProcess_Idempotent(t *testing.T) {
	education := map[string][]models.EducationRecord{
		"Canada": {
			eduRow("Canada", 1950, 15, 19, 10),
			eduRow("Canada", 1955, 15, 19, 9),
		},
	}
	climate := map[string][]models.ClimateRecord{
		"Canada": {
			climRow("Canada", 1950, 10.0),
			climRow("Canada", 1950, 14.0),
			climRow("Canada", 1955, 11.0),
		},
	}

	onceEducation, onceClimate := Process(education, climate)
	twiceEducation, twiceClimate := Process(onceEducation, onceClimate)

	if !reflect.DeepEqual(onceEducation, twiceEducation) {
		t.Errorf("education changed on second processing:\nonce:  %+v\ntwice: %+v", onceEducation, twiceEducation)
	}
	if !reflect.DeepEqual(onceClimate, twiceClimate) {
		t.Errorf("climate changed on second processing:\nonce:  %+v\ntwice: %+v", onceClimate, twiceClimate)
	}
}

func TestProcess_EmptyIntersection(t *testing.T) {
	education := map[string][]models.EducationRecord{
		"Canada": {eduRow("Canada", 1950, 15, 19, 10)},
	}
	climate := map[string][]models.ClimateRecord{
		"Ghana": {climRow("Ghana", 1950, 26.0)},
	}

	gotEducation, gotClimate := Process(education, climate)
	if len(gotEducation) != 0 || len(gotClimate) != 0 {
		t.Errorf("disjoint datasets produced %d/%d countries, want 0/0", len(gotEducation), len(gotClimate))
	}
}
