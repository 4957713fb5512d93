// Package pojo generates a Java class mirroring a table's columns.
package pojo

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/onebengaltiger/obtutils/internal/notify"
	"github.com/onebengaltiger/obtutils/internal/schema"
)

// Manager selects the persistence annotations added to the class.
type Manager int

const (
	None Manager = iota
	ORMLite
)

func (m Manager) String() string {
	if m == ORMLite {
		return "ormlite"
	}
	return "none"
}

// ParseManager accepts "none" or "ormlite", case-insensitively.
func ParseManager(s string) (Manager, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return None, nil
	case "ormlite":
		return ORMLite, nil
	}
	return None, fmt.Errorf("unrecognised entity manager: %s", s)
}

type Options struct {
	Manager Manager
	// Package is written as the package declaration when not empty.
	Package  string
	Notifier notify.Notifier
}

type field struct {
	column   string
	name     string
	javaType string
}

// Generate returns the Java source of a POJO for table.
func Generate(table schema.Table, opts Options) string {
	n := notify.Safe(opts.Notifier)

	fields := make([]field, 0, len(table.Columns))
	imports := map[string]bool{}
	for _, col := range table.Columns {
		jt, imp := javaType(col)
		if col.Type == schema.Unknown {
			n.Notify(fmt.Sprintf("pojo: unknown data type %q for column %s.%s, using Object",
				col.NativeType, table.Name, col.Name))
		}
		if imp != "" {
			imports[imp] = true
		}
		fields = append(fields, field{column: col.Name, name: fieldName(col.Name), javaType: jt})
	}
	if opts.Manager == ORMLite {
		imports["com.j256.ormlite.field.DatabaseField"] = true
		imports["com.j256.ormlite.table.DatabaseTable"] = true
	}

	var b bytes.Buffer
	if opts.Package != "" {
		fmt.Fprintf(&b, "package %s;\n\n", opts.Package)
	}
	if len(imports) > 0 {
		for _, imp := range sortedKeys(imports) {
			fmt.Fprintf(&b, "import %s;\n", imp)
		}
		b.WriteByte('\n')
	}

	class := className(table.Name)
	if opts.Manager == ORMLite {
		fmt.Fprintf(&b, "@DatabaseTable(tableName = %q)\n", table.Name)
	}
	fmt.Fprintf(&b, "public class %s {\n", class)

	for _, f := range fields {
		b.WriteByte('\n')
		if opts.Manager == ORMLite {
			fmt.Fprintf(&b, "\t@DatabaseField(columnName = %q)\n", f.column)
		}
		fmt.Fprintf(&b, "\tprivate %s %s;\n", f.javaType, f.name)
	}

	// ORMLite needs the no-arg constructor.
	fmt.Fprintf(&b, "\n\tpublic %s() {\n\t}\n", class)

	for _, f := range fields {
		acc := upperFirst(f.name)
		getter := "get"
		if f.javaType == "boolean" {
			getter = "is"
		}
		fmt.Fprintf(&b, "\n\tpublic %s %s%s() {\n\t\treturn %s;\n\t}\n", f.javaType, getter, acc, f.name)
		fmt.Fprintf(&b, "\n\tpublic void set%s(%s %s) {\n\t\tthis.%s = %s;\n\t}\n", acc, f.javaType, f.name, f.name, f.name)
	}

	b.WriteString("}\n")
	return b.String()
}

// javaType returns the field type and the import it needs, if any.
func javaType(col schema.Column) (string, string) {
	switch col.Type {
	case schema.Byte, schema.Int16:
		return "short", ""
	case schema.SByte:
		return "byte", ""
	case schema.Int32:
		return "int", ""
	case schema.Single:
		return "float", ""
	case schema.Double:
		return "double", ""
	case schema.Boolean:
		return "boolean", ""
	case schema.Decimal:
		return "BigDecimal", "java.math.BigDecimal"
	case schema.String:
		return "String", ""
	case schema.DateTime:
		return "Date", "java.util.Date"
	}
	return "Object", ""
}

func words(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || r == ' ' || r == '.'
	})
}

// fieldName turns a column name into lowerCamelCase.
func fieldName(column string) string {
	parts := words(column)
	if len(parts) == 0 {
		return "field"
	}
	var b strings.Builder
	b.WriteString(lowerFirst(parts[0]))
	for _, p := range parts[1:] {
		b.WriteString(upperFirst(p))
	}
	return b.String()
}

// className turns a table name into UpperCamelCase.
func className(table string) string {
	var b strings.Builder
	for _, p := range words(table) {
		b.WriteString(upperFirst(p))
	}
	if b.Len() == 0 {
		return "Entity"
	}
	return b.String()
}

func upperFirst(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// lowerFirst lower-cases the leading run of capitals, so "ID" becomes
// "id" and "URLPath" becomes "urlPath".
func lowerFirst(s string) string {
	r := []rune(s)
	i := 0
	for i < len(r) && unicode.IsUpper(r[i]) {
		i++
	}
	switch {
	case i == 0:
		return s
	case i == 1 || i == len(r):
		for j := 0; j < i; j++ {
			r[j] = unicode.ToLower(r[j])
		}
	default:
		for j := 0; j < i-1; j++ {
			r[j] = unicode.ToLower(r[j])
		}
	}
	return string(r)
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
