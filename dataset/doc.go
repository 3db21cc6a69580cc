// Package dataset loads tabular part data from CSV or XLSX files into a
// uniform in-memory Table, and extracts per-row Records keyed by the
// resolved schema fields. All cell values are coerced to trimmed strings;
// missing cells collapse to the empty string.
package dataset
