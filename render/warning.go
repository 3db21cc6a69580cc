package render

import "fmt"

// Warning reports a non-fatal, per-record problem encountered while
// rendering. The affected record still produces a label.
type Warning struct {
	// Record is the 0-indexed position of the affected record, or -1 for
	// batch-level warnings (e.g. an unusable logo).
	Record int
	// Asset names what degraded ("qr", "logo").
	Asset string
	// Message is the human-readable reason.
	Message string
}

func (w Warning) String() string {
	if w.Record < 0 {
		return fmt.Sprintf("%s: %s", w.Asset, w.Message)
	}
	return fmt.Sprintf("record %d: %s: %s", w.Record+1, w.Asset, w.Message)
}

// FatalError wraps an unrecoverable document-assembly or artifact-write
// failure. When one occurs the batch is discarded.
type FatalError struct {
	Op  string
	Err error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}
