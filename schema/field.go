package schema

// Field identifies one of the fixed data roles a label is built from.
// The set is closed; source columns are mapped onto these roles by Resolve.
type Field int

const (
	// AssemblyName is the assembly the part belongs to. Required.
	AssemblyName Field = iota
	// PartNumber is the part's identifying number. Required.
	PartNumber
	// Description is the free-text part description. Required.
	Description
	// Quantity is the quantity per vehicle. Optional.
	Quantity
	// PartType is the part's type classification. Optional.
	PartType
	// LineLocation is the delimited line-location string. Optional.
	LineLocation
	// PartStatus is the part's lifecycle status. Optional.
	PartStatus
	// BinType is the container/bin type. Optional.
	BinType

	numFields
)

// String returns the canonical key for the field.
func (f Field) String() string {
	switch f {
	case AssemblyName:
		return "assembly-name"
	case PartNumber:
		return "part-number"
	case Description:
		return "description"
	case Quantity:
		return "quantity-per-vehicle"
	case PartType:
		return "type"
	case LineLocation:
		return "line-location"
	case PartStatus:
		return "part-status"
	case BinType:
		return "bin-type"
	default:
		return "unknown"
	}
}

// Label returns the text used for this field on the printed label and in
// the encoded payload.
func (f Field) Label() string {
	switch f {
	case AssemblyName:
		return "ASSLY"
	case PartNumber:
		return "Part No"
	case Description:
		return "Description"
	case Quantity:
		return "QTY/VEH"
	case PartType:
		return "TYPE"
	case LineLocation:
		return "LINE LOC"
	case PartStatus:
		return "PART STATUS"
	case BinType:
		return "BIN TYPE"
	default:
		return ""
	}
}

// Required reports whether a dataset missing this field must be rejected.
func (f Field) Required() bool {
	switch f {
	case AssemblyName, PartNumber, Description:
		return true
	default:
		return false
	}
}

// Fields returns all fields in resolution order.
func Fields() []Field {
	fields := make([]Field, numFields)
	for i := range fields {
		fields[i] = Field(i)
	}
	return fields
}

// variants lists the accepted column-name spellings per field, in priority
// order. Entries are compared after normalization, so only spellings that
// normalize differently need to appear.
var variants = map[Field][]string{
	AssemblyName: {"assly", "assy name", "assembly name", "assembly"},
	PartNumber:   {"partno", "part number", "pn"},
	Description:  {"description", "desc", "part description"},
	Quantity:     {"qty/veh", "qty per vehicle", "qty bin", "qyt", "qty", "quantity"},
	PartType:     {"type", "type name"},
	LineLocation: {"line location", "lineloc"},
	PartStatus:   {"part status", "status"},
	BinType:      {"bin type", "container type", "container"},
}

// Variants returns the accepted name variants for a field, in priority order.
func Variants(f Field) []string {
	return variants[f]
}
