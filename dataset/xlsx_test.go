package dataset

import (
	"archive/zip"
	"bytes"
	"testing"
)

// buildTestXLSX assembles a minimal valid XLSX in memory.
func buildTestXLSX(t *testing.T, sheetXML string, sharedStrings []string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	write := func(name, content string) {
		t.Helper()
		f, err := zw.Create(name)
		if err != nil {
			t.Fatalf("creating %s: %v", name, err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}

	write("[Content_Types].xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/xl/workbook.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"/>
</Types>`)

	write("xl/workbook.xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<workbook xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
<sheets><sheet name="Parts" sheetId="1" r:id="rId2"/></sheets>
</workbook>`)

	write("xl/_rels/workbook.xml.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/sharedStrings" Target="sharedStrings.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet1.xml"/>
</Relationships>`)

	if sharedStrings != nil {
		var sst bytes.Buffer
		sst.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<sst xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">`)
		for _, s := range sharedStrings {
			sst.WriteString("<si><t>")
			sst.WriteString(s)
			sst.WriteString("</t></si>")
		}
		sst.WriteString("</sst>")
		write("xl/sharedStrings.xml", sst.String())
	}

	write("xl/worksheets/sheet1.xml", sheetXML)

	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
	return buf.Bytes()
}

func TestReadXLSX(t *testing.T) {
	sheet := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">
<sheetData>
  <row r="1">
    <c r="A1" t="s"><v>0</v></c>
    <c r="B1" t="s"><v>1</v></c>
    <c r="C1" t="s"><v>2</v></c>
  </row>
  <row r="2">
    <c r="A2" t="s"><v>3</v></c>
    <c r="B2" t="inlineStr"><is><t>EB-001</t></is></c>
    <c r="C2"><v>5</v></c>
  </row>
  <row r="3">
    <c r="A3" t="s"><v>4</v></c>
    <c r="B3" t="str"><v>GB-002</v></c>
    <c r="C3"><v>2.5</v></c>
  </row>
</sheetData>
</worksheet>`
	shared := []string{"Assy Name", "Part No", "Qty/Veh", "Engine Block", "Gearbox"}

	data := buildTestXLSX(t, sheet, shared)
	table, err := ReadXLSX(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("ReadXLSX failed: %v", err)
	}

	wantHeaders := []string{"Assy Name", "Part No", "Qty/Veh"}
	for i, want := range wantHeaders {
		if table.Headers[i] != want {
			t.Errorf("header %d = %q, want %q", i, table.Headers[i], want)
		}
	}
	if table.RowCount() != 2 {
		t.Fatalf("got %d rows, want 2", table.RowCount())
	}
	if table.Rows[0][1] != "EB-001" {
		t.Errorf("inline string cell = %q, want EB-001", table.Rows[0][1])
	}
	if table.Rows[0][2] != "5" {
		t.Errorf("numeric cell = %q, want 5", table.Rows[0][2])
	}
	if table.Rows[1][2] != "2.5" {
		t.Errorf("fractional cell = %q, want 2.5", table.Rows[1][2])
	}
}

// Sparse sheets: rows and cells may be missing entirely.
func TestReadXLSX_SparseCells(t *testing.T) {
	sheet := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">
<sheetData>
  <row r="1"><c r="A1" t="inlineStr"><is><t>partno</t></is></c><c r="C1" t="inlineStr"><is><t>desc</t></is></c></row>
  <row r="3"><c r="C3" t="inlineStr"><is><t>orphan</t></is></c></row>
</sheetData>
</worksheet>`

	data := buildTestXLSX(t, sheet, nil)
	table, err := ReadXLSX(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("ReadXLSX failed: %v", err)
	}

	if len(table.Headers) != 3 {
		t.Fatalf("got %d header cells, want 3", len(table.Headers))
	}
	if table.Headers[1] != "" {
		t.Errorf("missing header cell = %q, want empty", table.Headers[1])
	}
	if table.RowCount() != 2 {
		t.Fatalf("got %d rows, want 2 (including empty row 2)", table.RowCount())
	}
	if table.Rows[1][2] != "orphan" {
		t.Errorf("sparse cell = %q, want orphan", table.Rows[1][2])
	}
}

func TestReadXLSX_NotAWorkbook(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, _ := zw.Create("random.txt")
	f.Write([]byte("not a workbook"))
	zw.Close()

	if _, err := ReadXLSX(bytes.NewReader(buf.Bytes()), int64(buf.Len())); err == nil {
		t.Error("ReadXLSX should fail on a ZIP that is not a workbook")
	}
}

func TestTrimTrailingZeros(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"5", "5"},
		{"5.0", "5"},
		{"5.50", "5.5"},
		{"2.5", "2.5"},
		{"0.0", "0"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := trimTrailingZeros(tt.in); got != tt.want {
			t.Errorf("trimTrailingZeros(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFromBytes(t *testing.T) {
	table, err := FromBytes([]byte("partno,desc\nEB-001,Main\n"), "parts.csv")
	if err != nil {
		t.Fatalf("FromBytes failed: %v", err)
	}
	if table.RowCount() != 1 {
		t.Errorf("got %d rows, want 1", table.RowCount())
	}
}
