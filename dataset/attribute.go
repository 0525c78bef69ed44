package dataset

import "fmt"

// AttributeKind is the value type of a feature column.
type AttributeKind int

const (
	// Numeric columns hold continuous values and are the only kind the
	// perceptron models accept.
	Numeric AttributeKind = iota
	// Nominal columns hold category indices encoded as numbers.
	Nominal
	// String columns hold free text indices.
	String
	// Date columns hold timestamps.
	Date
)

// String returns the lower-case kind name.
func (k AttributeKind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Nominal:
		return "nominal"
	case String:
		return "string"
	case Date:
		return "date"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Attribute describes one feature column. The label column is not an attribute.
type Attribute struct {
	Name string
	Kind AttributeKind
}

// NumericAttribute is shorthand for a numeric column named name.
func NumericAttribute(name string) Attribute {
	return Attribute{Name: name, Kind: Numeric}
}

// IsNumeric reports whether the column holds continuous values.
func (a Attribute) IsNumeric() bool {
	return a.Kind == Numeric
}

func defaultAttributes(n int) []Attribute {
	attrs := make([]Attribute, n)
	for i := range attrs {
		attrs[i] = NumericAttribute(fmt.Sprintf("x%d", i))
	}
	return attrs
}
