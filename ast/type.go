package ast

// ValueType represents the variant of a Value
type ValueType uint8

// Value types
const (
	ValueTypeInt ValueType = iota
	ValueTypeFloat
	ValueTypeString
	ValueTypeSymbol
	ValueTypeProcedure
	ValueTypePair
	ValueTypeClosure
)

func (vt ValueType) String() string {
	s, ok := valueTypeName[vt]
	if ok {
		return s
	}
	return ""
}

var valueTypeName = map[ValueType]string{
	ValueTypeInt:       "int",
	ValueTypeFloat:     "float",
	ValueTypeString:    "string",
	ValueTypeSymbol:    "symbol",
	ValueTypeProcedure: "procedure",
	ValueTypePair:      "pair",
	ValueTypeClosure:   "closure",
}
