package ingest

import "github.com/cpmech/gosl/chk"

// ErrOpenFile reports a failure opening any ingested file.
func ErrOpenFile(path string, cause error) error {
	return chk.Err("ingest: cannot open %q: %v", path, cause)
}

// ErrMissingColumn reports a required header column absent from a file.
func ErrMissingColumn(path, column string) error {
	return chk.Err("ingest: %q is missing required column %q", path, column)
}

// ErrMalformedRow reports a data row with the wrong number of fields.
func ErrMalformedRow(path string, line int, row string) error {
	return chk.Err("ingest: %q line %d: malformed row %q", path, line, row)
}

// ErrMalformedNumber reports a field that failed to parse as a float.
func ErrMalformedNumber(path string, line int, field string) error {
	return chk.Err("ingest: %q line %d: malformed number %q", path, line, field)
}
