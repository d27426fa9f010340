package ingest

import "fmt"

// FormatError reports a CSV file whose header does not match the expected
// dataset schema. Loading stops before any rows are parsed.
type FormatError struct {
	Path string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("file %s does not match the expected format", e.Path)
}
