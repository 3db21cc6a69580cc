package label

import (
	"strings"
	"time"

	"github.com/tsawler/sticker/dataset"
	"github.com/tsawler/sticker/schema"
)

// optionalPayloadFields lists the fields appended to the payload only when
// their resolved value is non-empty, in payload order.
var optionalPayloadFields = []schema.Field{
	schema.Quantity,
	schema.BinType,
	schema.PartType,
	schema.PartStatus,
	schema.LineLocation,
}

// BuildPayload assembles the text block encoded into the record's QR
// graphic. Assembly name, part number and description always appear, with
// "N/A" standing in for missing values. Optional fields are skipped
// entirely when empty rather than rendered as blank lines: QR capacity
// should never be spent on labels with nothing after the colon. The block
// ends with a generation-date line.
func BuildPayload(rec dataset.Record, now time.Time) string {
	var b strings.Builder

	writeLine := func(f schema.Field, value string) {
		b.WriteString(f.Label())
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteByte('\n')
	}

	for _, f := range []schema.Field{schema.AssemblyName, schema.PartNumber, schema.Description} {
		value := rec.Get(f)
		if value == "" {
			value = "N/A"
		}
		writeLine(f, value)
	}

	for _, f := range optionalPayloadFields {
		if value := rec.Get(f); value != "" {
			writeLine(f, value)
		}
	}

	b.WriteString("Generated: ")
	b.WriteString(now.Format("2006-01-02"))
	return b.String()
}
