package dataset

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Open loads a dataset file, sniffing the format from content with the
// filename extension as a tiebreaker.
func Open(filename string) (*Table, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	return read(f, info.Size(), Detect(filename))
}

// FromBytes loads a dataset from an in-memory file image. The filename is
// used only for extension-based detection and may be empty.
func FromBytes(data []byte, filename string) (*Table, error) {
	return read(bytes.NewReader(data), int64(len(data)), Detect(filename))
}

func read(r io.ReaderAt, size int64, hint Format) (*Table, error) {
	format, err := DetectFromReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("detecting format: %w", err)
	}
	if format == Unknown {
		format = hint
	}

	switch format {
	case CSV:
		return ReadCSV(io.NewSectionReader(r, 0, size))
	case XLSX:
		return ReadXLSX(r, size)
	default:
		return nil, fmt.Errorf("unsupported dataset format")
	}
}
