package dataset

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadXLSX parses an XLSX stream into a Table. The first sheet containing
// data is used; its first populated row becomes the header row. Shared
// strings, inline strings, booleans and plain numbers are coerced to text;
// styles, formats and merged regions are ignored — a part list is flat data.
func ReadXLSX(r io.ReaderAt, size int64) (*Table, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	x := &xlsxFile{zr: zr, sheetRels: make(map[string]string)}
	if err := x.validate(); err != nil {
		return nil, err
	}
	x.parseRelationships()
	if err := x.parseWorkbook(); err != nil {
		return nil, fmt.Errorf("parsing workbook: %w", err)
	}
	x.parseSharedStrings()

	return x.firstTable()
}

// xlsxFile holds parse state for one workbook.
type xlsxFile struct {
	zr            *zip.Reader
	workbook      *workbookXML
	sharedStrings []string
	sheetRels     map[string]string // RID -> target path
}

// validate checks that required XLSX files exist.
func (x *xlsxFile) validate() error {
	required := []string{"[Content_Types].xml", "xl/workbook.xml"}

	fileMap := make(map[string]bool, len(x.zr.File))
	for _, f := range x.zr.File {
		fileMap[f.Name] = true
	}
	for _, name := range required {
		if !fileMap[name] {
			return fmt.Errorf("missing required file: %s", name)
		}
	}
	return nil
}

// fileContent reads one file from the archive.
func (x *xlsxFile) fileContent(name string) ([]byte, error) {
	for _, f := range x.zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("file not found: %s", name)
}

// parseRelationships maps relationship IDs to worksheet paths. The
// relationships file is optional; sheets fall back to default naming.
func (x *xlsxFile) parseRelationships() {
	data, err := x.fileContent("xl/_rels/workbook.xml.rels")
	if err != nil {
		return
	}
	var rels relationshipsXML
	if err := xml.Unmarshal(data, &rels); err != nil {
		return
	}
	for _, rel := range rels.Relationship {
		x.sheetRels[rel.ID] = rel.Target
	}
}

func (x *xlsxFile) parseWorkbook() error {
	data, err := x.fileContent("xl/workbook.xml")
	if err != nil {
		return err
	}
	x.workbook = &workbookXML{}
	return xml.Unmarshal(data, x.workbook)
}

// parseSharedStrings loads the shared string table. It is optional.
func (x *xlsxFile) parseSharedStrings() {
	data, err := x.fileContent("xl/sharedStrings.xml")
	if err != nil {
		return
	}
	var sst sharedStringsXML
	if err := xml.Unmarshal(data, &sst); err != nil {
		return
	}

	x.sharedStrings = make([]string, len(sst.SI))
	for i, si := range sst.SI {
		if si.T != "" {
			x.sharedStrings[i] = si.T
			continue
		}
		// Rich text: concatenate the runs.
		var text strings.Builder
		for _, run := range si.R {
			text.WriteString(run.T)
		}
		x.sharedStrings[i] = text.String()
	}
}

// firstTable parses sheets in workbook order and returns the first one
// that yields a header row and at least zero data rows.
func (x *xlsxFile) firstTable() (*Table, error) {
	for i, ref := range x.workbook.Sheets.Sheet {
		target := x.sheetRels[ref.RID]
		if target == "" {
			target = fmt.Sprintf("worksheets/sheet%d.xml", i+1)
		}
		if !strings.HasPrefix(target, "xl/") {
			target = "xl/" + strings.TrimPrefix(target, "/")
		}

		data, err := x.fileContent(target)
		if err != nil {
			continue // skip sheets we can't read
		}
		table, err := x.parseSheet(data)
		if err != nil || table == nil {
			continue
		}
		return table, nil
	}
	return nil, fmt.Errorf("no readable worksheet found")
}

// parseSheet converts one worksheet into a Table, or nil if it is empty.
func (x *xlsxFile) parseSheet(data []byte) (*Table, error) {
	var ws worksheetXML
	if err := xml.Unmarshal(data, &ws); err != nil {
		return nil, err
	}

	maxCol := -1
	maxRow := -1
	for _, row := range ws.SheetData.Rows {
		for _, cell := range row.Cells {
			col, rowIdx, err := parseCellRef(cell.R)
			if err != nil {
				continue
			}
			if col > maxCol {
				maxCol = col
			}
			if rowIdx > maxRow {
				maxRow = rowIdx
			}
		}
	}
	if maxRow < 0 {
		return nil, nil
	}

	grid := make([][]string, maxRow+1)
	for i := range grid {
		grid[i] = make([]string, maxCol+1)
	}
	for _, row := range ws.SheetData.Rows {
		for _, cell := range row.Cells {
			col, rowIdx, err := parseCellRef(cell.R)
			if err != nil {
				continue
			}
			grid[rowIdx][col] = x.cellValue(cell)
		}
	}

	// The first populated row is the header row.
	headerIdx := -1
	for i, row := range grid {
		for _, v := range row {
			if v != "" {
				headerIdx = i
				break
			}
		}
		if headerIdx >= 0 {
			break
		}
	}
	if headerIdx < 0 {
		return nil, nil
	}

	return &Table{
		Headers: grid[headerIdx],
		Rows:    grid[headerIdx+1:],
	}, nil
}

// cellValue coerces one cell to its display text.
func (x *xlsxFile) cellValue(cell cellXML) string {
	switch cell.T {
	case "s": // shared string
		idx, err := strconv.Atoi(cell.V)
		if err == nil && idx >= 0 && idx < len(x.sharedStrings) {
			return x.sharedStrings[idx]
		}
		return ""
	case "b": // boolean
		if cell.V == "1" {
			return "TRUE"
		}
		return "FALSE"
	case "str", "e": // formula result, error value
		return cell.V
	case "inlineStr":
		if cell.Is != nil {
			return cell.Is.T
		}
		return ""
	default: // number or empty
		return trimTrailingZeros(cell.V)
	}
}

// trimTrailingZeros renders "5.0" as "5" so quantities read naturally on
// the label, leaving fractional values like "2.5" untouched.
func trimTrailingZeros(v string) string {
	if !strings.Contains(v, ".") {
		return v
	}
	v = strings.TrimRight(v, "0")
	return strings.TrimSuffix(v, ".")
}
