package loader

import "errors"

var (
	// ErrUnsupportedFormat is returned for file extensions other than .xlsx and .csv.
	ErrUnsupportedFormat = errors.New("loader: unsupported file format")

	// ErrMissingColumn indicates that the header row lacks an "x" or "y" column.
	ErrMissingColumn = errors.New("loader: missing coordinate column")

	// ErrBadValue signals a coordinate cell that is not a finite number.
	ErrBadValue = errors.New("loader: bad coordinate value")
)
