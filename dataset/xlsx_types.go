package dataset

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// XML document structures for the subset of SpreadsheetML we consume.

type workbookXML struct {
	XMLName xml.Name  `xml:"workbook"`
	Sheets  sheetsXML `xml:"sheets"`
}

type sheetsXML struct {
	Sheet []sheetRefXML `xml:"sheet"`
}

type sheetRefXML struct {
	Name    string `xml:"name,attr"`
	SheetID string `xml:"sheetId,attr"`
	RID     string `xml:"id,attr"` // r:id relationship attribute
}

type worksheetXML struct {
	XMLName   xml.Name     `xml:"worksheet"`
	SheetData sheetDataXML `xml:"sheetData"`
}

type sheetDataXML struct {
	Rows []rowXML `xml:"row"`
}

type rowXML struct {
	R     int       `xml:"r,attr"` // 1-indexed row number
	Cells []cellXML `xml:"c"`
}

type cellXML struct {
	R  string        `xml:"r,attr"` // cell reference, e.g. "B3"
	T  string        `xml:"t,attr"` // cell type
	V  string        `xml:"v"`      // value
	Is *inlineStrXML `xml:"is"`     // inline string
}

type inlineStrXML struct {
	T string `xml:"t"`
}

type sharedStringsXML struct {
	XMLName xml.Name `xml:"sst"`
	SI      []siXML  `xml:"si"`
}

type siXML struct {
	T string      `xml:"t"`
	R []runXML    `xml:"r"`
}

type runXML struct {
	T string `xml:"t"`
}

type relationshipsXML struct {
	XMLName      xml.Name          `xml:"Relationships"`
	Relationship []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// parseCellRef parses a reference like "A1" or "AA100" into 0-indexed
// column and row numbers.
func parseCellRef(ref string) (col, row int, err error) {
	i := 0
	for i < len(ref) && isRefLetter(ref[i]) {
		i++
	}
	if i == 0 || i == len(ref) {
		return 0, 0, fmt.Errorf("invalid cell reference %q", ref)
	}

	col = 0
	for _, c := range strings.ToUpper(ref[:i]) {
		if c < 'A' || c > 'Z' {
			return 0, 0, fmt.Errorf("invalid column in %q", ref)
		}
		col = col*26 + int(c-'A') + 1
	}
	col--

	rowNum, err := strconv.Atoi(ref[i:])
	if err != nil || rowNum < 1 {
		return 0, 0, fmt.Errorf("invalid row in %q", ref)
	}
	return col, rowNum - 1, nil
}

func isRefLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
