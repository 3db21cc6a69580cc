// Package schema maps arbitrarily-named spreadsheet columns onto the fixed
// set of fields a sticker label is built from.
//
// Real-world part lists name their columns inconsistently ("PARTNO.",
// "Part No", "part number", ...). Resolution normalizes every header and
// every known variant (strip non-alphanumerics, lower-case) and then runs a
// priority cascade per field: exact normalized match first, substring match
// second, and for the line-location field a last-resort keyword scan.
package schema
