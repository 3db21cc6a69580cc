package label

import (
	"strings"
	"testing"
	"time"

	"github.com/tsawler/sticker/dataset"
	"github.com/tsawler/sticker/schema"
)

var testTime = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func TestBuildPayload_FullRecord(t *testing.T) {
	rec := dataset.Record{
		schema.AssemblyName: "Engine Block",
		schema.PartNumber:   "EB-001",
		schema.Description:  "Main part",
		schema.Quantity:     "5",
		schema.BinType:      "Small Bin",
		schema.PartType:     "Casting",
		schema.PartStatus:   "Active",
		schema.LineLocation: "A1_B2_C3_D4",
	}

	payload := BuildPayload(rec, testTime)

	wantLines := []string{
		"ASSLY: Engine Block",
		"Part No: EB-001",
		"Description: Main part",
		"QTY/VEH: 5",
		"BIN TYPE: Small Bin",
		"TYPE: Casting",
		"PART STATUS: Active",
		"LINE LOC: A1_B2_C3_D4",
		"Generated: 2024-03-15",
	}
	gotLines := strings.Split(strings.TrimRight(payload, "\n"), "\n")
	if len(gotLines) != len(wantLines) {
		t.Fatalf("payload has %d lines, want %d:\n%s", len(gotLines), len(wantLines), payload)
	}
	for i, want := range wantLines {
		if gotLines[i] != want {
			t.Errorf("line %d = %q, want %q", i, gotLines[i], want)
		}
	}
}

// Empty optional fields must be omitted entirely, not rendered as empty
// labeled lines.
func TestBuildPayload_OmitsEmptyOptionals(t *testing.T) {
	rec := dataset.Record{
		schema.AssemblyName: "Engine Block",
		schema.PartNumber:   "EB-001",
		schema.Description:  "Main part",
	}

	payload := BuildPayload(rec, testTime)

	for _, label := range []string{"QTY/VEH:", "TYPE:", "PART STATUS:", "BIN TYPE:", "LINE LOC:"} {
		if strings.Contains(payload, label) {
			t.Errorf("payload contains %q for an empty field:\n%s", label, payload)
		}
	}
	if !strings.Contains(payload, "ASSLY: Engine Block") {
		t.Error("payload missing assembly line")
	}
	if !strings.Contains(payload, "Generated: 2024-03-15") {
		t.Error("payload missing generation date line")
	}
}

// Required fields always appear, with N/A standing in for missing values.
func TestBuildPayload_RequiredFieldsNA(t *testing.T) {
	rec := dataset.Record{
		schema.PartNumber: "EB-001",
	}

	payload := BuildPayload(rec, testTime)

	if !strings.Contains(payload, "ASSLY: N/A") {
		t.Errorf("payload missing ASSLY: N/A:\n%s", payload)
	}
	if !strings.Contains(payload, "Description: N/A") {
		t.Errorf("payload missing Description: N/A:\n%s", payload)
	}
	if !strings.Contains(payload, "Part No: EB-001") {
		t.Errorf("payload missing part number:\n%s", payload)
	}
}

func TestBuildPayload_PartialOptionals(t *testing.T) {
	rec := dataset.Record{
		schema.AssemblyName: "Engine Block",
		schema.PartNumber:   "EB-001",
		schema.Description:  "Main part",
		schema.Quantity:     "5",
	}

	payload := BuildPayload(rec, testTime)

	if !strings.Contains(payload, "QTY/VEH: 5") {
		t.Errorf("payload missing quantity:\n%s", payload)
	}
	if strings.Contains(payload, "TYPE:") {
		t.Errorf("payload contains TYPE for empty field:\n%s", payload)
	}
}
