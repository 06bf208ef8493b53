package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/beehive/ga"
	"github.com/xuri/excelize/v2"
)

// Load reads the points stored at path. The format follows the extension.
func Load(path string) ([]ga.Point, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return LoadXLSX(path)
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		defer f.Close()

		pts, err := ReadCSV(f)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		return pts, nil
	default:
		return nil, fmt.Errorf("load %s: %w", path, ErrUnsupportedFormat)
	}
}

// LoadXLSX reads the first sheet of the workbook at path.
func LoadXLSX(path string) ([]ga.Point, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("load %s: no sheets: %w", path, ErrMissingColumn)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("load %s: sheet %q: %w", path, sheets[0], err)
	}
	pts, err := parseRows(rows)
	if err != nil {
		return nil, fmt.Errorf("load %s: sheet %q: %w", path, sheets[0], err)
	}

	return pts, nil
}

// ReadCSV parses comma-separated rows from r. Rows may have differing
// lengths; cells beyond a short row count as empty.
func ReadCSV(r io.Reader) ([]ga.Point, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	return parseRows(rows)
}

// parseRows applies the header contract shared by every format.
func parseRows(rows [][]string) ([]ga.Point, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no header row: %w", ErrMissingColumn)
	}
	xCol, yCol := -1, -1
	for i, name := range rows[0] {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "x":
			if xCol < 0 {
				xCol = i
			}
		case "y":
			if yCol < 0 {
				yCol = i
			}
		}
	}
	if xCol < 0 {
		return nil, fmt.Errorf("header %q: column x: %w", rows[0], ErrMissingColumn)
	}
	if yCol < 0 {
		return nil, fmt.Errorf("header %q: column y: %w", rows[0], ErrMissingColumn)
	}

	var (
		pts    = make([]ga.Point, 0, len(rows)-1)
		xs, ys string
		x, y   float64
		err    error
	)
	for i, row := range rows[1:] {
		xs, ys = cell(row, xCol), cell(row, yCol)
		if xs == "" && ys == "" {
			continue
		}
		// Spreadsheet rows are 1-based and the header is row 1.
		line := i + 2
		if x, err = parseCoord(xs); err != nil {
			return nil, fmt.Errorf("row %d column x: %w", line, err)
		}
		if y, err = parseCoord(ys); err != nil {
			return nil, fmt.Errorf("row %d column y: %w", line, err)
		}
		pts = append(pts, ga.Point{X: x, Y: y})
	}

	return pts, nil
}

func cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func parseCoord(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q: %w", s, ErrBadValue)
	}

	return v, nil
}
