// Package label holds the per-record pieces of a sticker label that are
// independent of layout: splitting the delimited line-location string into
// its four printed boxes, and building the text payload that is encoded
// into the label's QR graphic.
package label
