package schema

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normalizer folds compatibility forms and strips combining marks so that
// accented or stylized header text compares equal to its plain ASCII form.
var normalizer = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize reduces a column name to its comparison key: Unicode
// compatibility folding, then lower-cased alphanumerics only. "Part No." and
// "PARTNO" both normalize to "partno".
func Normalize(name string) string {
	folded, _, err := transform.String(normalizer, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ColumnMap is the resolved binding from fields to actual column names for
// one dataset. It is built once by Resolve and read-only afterwards.
type ColumnMap struct {
	cols map[Field]string
}

// Column returns the actual column name bound to the field, if any.
func (m ColumnMap) Column(f Field) (string, bool) {
	name, ok := m.cols[f]
	return name, ok
}

// Binding describes the resolution outcome for a single field.
type Binding struct {
	Field  Field
	Column string // actual column name, empty if unresolved
	Found  bool
}

// Report returns the per-field resolution outcome in field order. Useful
// for showing the user which columns were detected before generating.
func (m ColumnMap) Report() []Binding {
	report := make([]Binding, 0, numFields)
	for _, f := range Fields() {
		col, ok := m.cols[f]
		report = append(report, Binding{Field: f, Column: col, Found: ok})
	}
	return report
}

// SchemaError reports required fields that could not be resolved against the
// dataset's headers. It is returned before any label work begins.
type SchemaError struct {
	Missing []Field
}

func (e *SchemaError) Error() string {
	names := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		names[i] = f.String()
	}
	return fmt.Sprintf("required columns not resolved: %s", strings.Join(names, ", "))
}

// Resolve maps the dataset's actual headers onto the fixed field set.
//
// Each field is resolved independently through an ordered cascade:
//
//  1. exact match on normalized names, in variant priority order
//  2. substring match (either direction) on normalized names
//  3. for LineLocation only, a keyword scan for headers containing both
//     "line" and "location", or the contraction "lineloc"
//
// If two headers normalize identically the first occurrence wins; this is
// deterministic, not arbitrary. Resolve is a pure function of its input.
//
// A non-nil *SchemaError is returned when any required field stays
// unresolved; optional fields are simply absent from the ColumnMap.
func Resolve(headers []string) (ColumnMap, error) {
	// Normalized header -> first actual header with that key.
	index := make(map[string]string, len(headers))
	ordered := make([]string, 0, len(headers)) // normalized keys, input order
	for _, h := range headers {
		key := Normalize(h)
		if key == "" {
			continue
		}
		if _, seen := index[key]; !seen {
			index[key] = h
			ordered = append(ordered, key)
		}
	}

	cols := make(map[Field]string, numFields)
	for _, f := range Fields() {
		if col, ok := resolveField(f, index, ordered); ok {
			cols[f] = col
		}
	}

	var missing []Field
	for _, f := range Fields() {
		if _, ok := cols[f]; !ok && f.Required() {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return ColumnMap{}, &SchemaError{Missing: missing}
	}

	return ColumnMap{cols: cols}, nil
}

// resolveField runs the match cascade for one field.
func resolveField(f Field, index map[string]string, ordered []string) (string, bool) {
	// Exact match wins regardless of what a later strategy might find.
	for _, v := range Variants(f) {
		key := Normalize(v)
		if key == "" {
			continue
		}
		if col, ok := index[key]; ok {
			return col, true
		}
	}

	// Substring match, both directions, preserving variant priority.
	for _, v := range Variants(f) {
		key := Normalize(v)
		if key == "" {
			continue
		}
		for _, hk := range ordered {
			if strings.Contains(hk, key) || strings.Contains(key, hk) {
				return index[hk], true
			}
		}
	}

	// Line-location columns show up under too many spellings for a variant
	// list; fall back to a keyword scan.
	if f == LineLocation {
		for _, hk := range ordered {
			if strings.Contains(hk, "lineloc") ||
				(strings.Contains(hk, "line") && strings.Contains(hk, "location")) {
				return index[hk], true
			}
		}
	}

	return "", false
}
