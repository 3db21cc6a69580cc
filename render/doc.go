// Package render turns a laid-out label document into the final PDF
// artifact. It owns the page geometry (10x15cm stock with a uniform
// outlined content frame), the QR encoding of each label's payload, and
// logo preparation.
//
// Per-record asset failures degrade, never abort: a logo that cannot be
// decoded renders as an empty region and a payload that cannot be encoded
// renders as a text placeholder in the same spanned region, with a Warning
// attached to the record. Only document-assembly and write failures are
// fatal, and a fatal failure discards the whole artifact — a partial PDF
// is never returned.
package render
