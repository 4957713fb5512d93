package schema

import "fmt"

// AbstractType is the generator's own column type classification,
// independent of any database's native type names.
type AbstractType int

const (
	Unknown AbstractType = iota
	Byte
	SByte
	Int16
	Int32
	Single
	Double
	Boolean
	Decimal
	String
	DateTime
)

var abstractTypeNames = map[AbstractType]string{
	Unknown:  "Unknown",
	Byte:     "Byte",
	SByte:    "SByte",
	Int16:    "Int16",
	Int32:    "Int32",
	Single:   "Single",
	Double:   "Double",
	Boolean:  "Boolean",
	Decimal:  "Decimal",
	String:   "String",
	DateTime: "DateTime",
}

func (t AbstractType) String() string {
	if name, ok := abstractTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("AbstractType(%d)", int(t))
}

// Column describes one table column as seen by the generator.
// NativeType keeps the introspected type name; for Unknown columns it is
// the name carried into the UNKNOWNTYPE sentinel.
type Column struct {
	Name       string
	Type       AbstractType
	NativeType string
}

// Table is a table name plus its columns in natural (introspected) order.
type Table struct {
	Name    string
	Columns []Column
}

// NativeColumn is the raw introspection result for one column.
type NativeColumn struct {
	Name     string
	TypeName string
}

// NewTable classifies raw introspected columns into a Table.
func NewTable(name string, cols []NativeColumn) Table {
	t := Table{Name: name, Columns: make([]Column, 0, len(cols))}
	for _, c := range cols {
		t.Columns = append(t.Columns, Column{
			Name:       c.Name,
			Type:       Classify(c.TypeName),
			NativeType: c.TypeName,
		})
	}
	return t
}
