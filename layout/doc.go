// Package layout models a sticker label as a declarative grid of regions
// and assembles per-record labels into a paginated document.
//
// A label is a fixed sequence of rows; each row is a sequence of regions
// whose widths are fractions of the usable content width and sum to 1.0.
// A region may span several physical rows — the QR graphic spans the
// quantity, type and date rows — in which case the spanned rows carry
// structurally-empty continuation regions so the grid's borders stay
// consistent. Spanning is configuration on the region, not a separate
// code path.
//
// The engine is a pure function of one record plus the shared read-only
// configuration, so records can in principle be laid out in parallel;
// document assembly itself is sequential and order-preserving.
package layout
