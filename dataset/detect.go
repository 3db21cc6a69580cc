package dataset

import (
	"archive/zip"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a supported dataset file format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// CSV indicates a comma-separated values file.
	CSV
	// XLSX indicates an Office Open XML spreadsheet.
	XLSX
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case CSV:
		return "CSV"
	case XLSX:
		return "XLSX"
	default:
		return "Unknown"
	}
}

// Detect determines the file format from the filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".txt":
		return CSV
	case ".xlsx", ".xls":
		return XLSX
	default:
		return Unknown
	}
}

// DetectFromReader inspects content to determine the format. This is more
// reliable than extension-based detection: an XLSX file is a ZIP archive
// with an xl/ directory, and anything that parses as text with separators
// is treated as CSV.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, 4)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	magic = magic[:n]

	// ZIP magic: PK\x03\x04
	if len(magic) >= 4 && magic[0] == 0x50 && magic[1] == 0x4B && magic[2] == 0x03 && magic[3] == 0x04 {
		zr, err := zip.NewReader(r, size)
		if err != nil {
			return Unknown, err
		}
		for _, f := range zr.File {
			if strings.HasPrefix(f.Name, "xl/") {
				return XLSX, nil
			}
		}
		return Unknown, nil
	}

	// Binary content that isn't a ZIP archive is not a dataset we read.
	for _, b := range magic {
		if b == 0 {
			return Unknown, nil
		}
	}
	return CSV, nil
}
