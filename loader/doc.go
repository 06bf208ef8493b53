// Package loader reads flower coordinates from tabular files.
//
// Supported formats, chosen by file extension:
//
//   - .xlsx: the first sheet of the workbook (github.com/xuri/excelize/v2).
//   - .csv:  comma-separated text (encoding/csv).
//
// Both formats share one contract: the first row is a header that names an
// "x" and a "y" column (case-insensitive, surrounding spaces ignored, any
// position, extra columns ignored); every following non-blank row is one
// point. Rows whose x and y cells are both empty are skipped.
//
// The loader does not deduplicate or count points. Those checks belong to
// ga.NewEvaluator, which reports ErrDuplicatePoint and ErrEmptyInput.
package loader
