package models

// EducationRecord is one row of the Barro-Lee educational attainment dataset:
// attainment statistics for a (country, year, age band) population group.
// The source data is sex-disaggregated; the sex column is dropped on ingestion,
// so male and female rows for the same group survive as separate records and
// are merged indiscriminately by age-range averaging.
type EducationRecord struct {
	Country string
	Year    int
	AgeFrom int
	AgeTo   int

	// Percentage of the group with the given level of schooling.
	PctNoSchooling       float64
	PctPrimary           float64
	PctPrimaryComplete   float64
	PctSecondary         float64
	PctSecondaryComplete float64
	PctTertiary          float64
	PctTertiaryComplete  float64

	// Average years of schooling attained by the group.
	AvgYearsSchooling float64
	AvgYearsPrimary   float64
	AvgYearsSecondary float64
	AvgYearsTertiary  float64
}

// ClimateRecord is one row of the Berkeley Earth land temperature dataset:
// an average temperature in Celsius for a country and year bucket.
type ClimateRecord struct {
	Country string
	Year    int
	AvgTemp float64
}
