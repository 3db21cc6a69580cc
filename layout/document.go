package layout

import (
	"time"

	"github.com/tsawler/sticker/dataset"
)

// Element is one entry in a document's flow: a *Label or a PageBreak.
type Element interface {
	isElement()
}

func (*Label) isElement() {}

// PageBreak separates consecutive labels. Every label except the last is
// followed by exactly one.
type PageBreak struct{}

func (PageBreak) isElement() {}

// Document is the ordered flow of laid-out labels with page breaks between
// all but the last.
type Document struct {
	Elements []Element
}

// Append adds a label to the flow, inserting a page break first if the
// document already holds one or more labels.
func (d *Document) Append(l *Label) {
	if len(d.Elements) > 0 {
		d.Elements = append(d.Elements, PageBreak{})
	}
	d.Elements = append(d.Elements, l)
}

// Labels returns the document's labels in flow order.
func (d *Document) Labels() []*Label {
	var labels []*Label
	for _, el := range d.Elements {
		if l, ok := el.(*Label); ok {
			labels = append(labels, l)
		}
	}
	return labels
}

// Breaks returns the number of page breaks in the flow.
func (d *Document) Breaks() int {
	n := 0
	for _, el := range d.Elements {
		if _, ok := el.(PageBreak); ok {
			n++
		}
	}
	return n
}

// ProgressFunc observes batch progress. It is called once per record with
// the number of records laid out so far and the total; done is strictly
// increasing and reaches total exactly once.
type ProgressFunc func(done, total int)

// Assemble lays out every record in input order and sequences the results
// into a document. Laying out a record never fails, so neither does
// assembly; per-record asset problems surface later, during rendering.
func Assemble(engine *Engine, records []dataset.Record, now time.Time, progress ProgressFunc) *Document {
	doc := &Document{}
	total := len(records)
	for i, rec := range records {
		doc.Append(engine.Build(rec, now))
		if progress != nil {
			progress(i+1, total)
		}
	}
	return doc
}
