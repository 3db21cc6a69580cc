package layout

// Kind classifies what a region renders.
type Kind int

const (
	// KindText renders the region's Text value.
	KindText Kind = iota
	// KindHeader renders a fixed label cell ("ASSLY", "QTY/VEH", ...).
	KindHeader
	// KindGraphic hosts the encoded QR image; Text carries the payload to
	// encode, and doubles as the fallback placeholder source if encoding
	// fails.
	KindGraphic
	// KindLogo hosts the optional logo image; renders empty when no logo
	// is configured, never collapsing the row's width allocation.
	KindLogo
	// KindSpanFill marks a structurally-empty continuation cell beneath a
	// spanning region. It reserves width in its row and draws nothing.
	KindSpanFill
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindHeader:
		return "header"
	case KindGraphic:
		return "graphic"
	case KindLogo:
		return "logo"
	case KindSpanFill:
		return "span-fill"
	default:
		return "unknown"
	}
}

// Font describes a region's type treatment.
type Font struct {
	Bold bool
	Size float64 // point size
}

// Region is one rectangular cell in the label grid.
type Region struct {
	// Width is the region's fraction of the usable content width (0..1).
	Width float64
	// Kind selects the content treatment.
	Kind Kind
	// Text is the literal or formatted content. For KindGraphic it is the
	// payload to encode; for KindLogo and KindSpanFill it is empty.
	Text string
	// Font applies to KindText and KindHeader regions.
	Font Font
	// Wrap allows the text to flow onto multiple lines within the cell.
	Wrap bool
	// Span is the number of physical rows the region covers. Zero and one
	// both mean a single row.
	Span int
}

// RowSpan returns the effective span, treating zero as one.
func (r Region) RowSpan() int {
	if r.Span < 1 {
		return 1
	}
	return r.Span
}

// Row is one physical row of a label: a height plus its ordered regions.
type Row struct {
	Height  float64 // centimeters
	Regions []Region
}

// WidthSum returns the sum of the row's region width fractions. For a
// well-formed row this is 1.0; the tolerance applied to caller-supplied
// fractions lives with Config validation, not here.
func (r Row) WidthSum() float64 {
	sum := 0.0
	for _, reg := range r.Regions {
		sum += reg.Width
	}
	return sum
}

// Label is the laid-out region grid for a single record.
type Label struct {
	Rows []Row
	// Payload is the text block encoded into the label's graphic.
	Payload string
}

// Height returns the label's total physical height in centimeters.
func (l *Label) Height() float64 {
	h := 0.0
	for _, row := range l.Rows {
		h += row.Height
	}
	return h
}
