package schema

import (
	"reflect"
	"strings"
)

// Classify maps a type name from the classification vocabulary
// (uint8/byte, int8, int16, int32, float32, float64, bool, decimal,
// string, time.Time/datetime) onto an AbstractType. Anything else is Unknown.
func Classify(typeName string) AbstractType {
	switch strings.ToLower(strings.TrimSpace(typeName)) {
	case "uint8", "byte":
		return Byte
	case "int8", "sbyte":
		return SByte
	case "int16":
		return Int16
	case "int32":
		return Int32
	case "float32", "single":
		return Single
	case "float64", "double":
		return Double
	case "bool", "boolean":
		return Boolean
	case "decimal":
		return Decimal
	case "string":
		return String
	case "time.time", "datetime":
		return DateTime
	default:
		return Unknown
	}
}

// nativeTypes maps upper-cased database type names (arguments stripped)
// to the classification vocabulary. Per-driver exceptions live in driverTypes.
var nativeTypes = map[string]string{
	"UNSIGNED TINYINT": "uint8",
	"TINYINT":          "int8",
	"SMALLINT":         "int16",
	"INT2":             "int16",
	"INT":              "int32",
	"INTEGER":          "int32",
	"INT4":             "int32",
	"MEDIUMINT":        "int32",
	"BIGINT":           "int64",
	"INT8":             "int64",
	"REAL":             "float32",
	"FLOAT4":           "float32",
	"FLOAT":            "float64",
	"FLOAT8":           "float64",
	"DOUBLE":           "float64",
	"DOUBLE PRECISION": "float64",
	"BINARY_FLOAT":     "float32",
	"BINARY_DOUBLE":    "float64",
	"BIT":              "bool",
	"BOOL":             "bool",
	"BOOLEAN":          "bool",
	"DECIMAL":          "decimal",
	"NUMERIC":          "decimal",
	"NUMBER":           "decimal",
	"MONEY":            "decimal",
	"SMALLMONEY":       "decimal",
	"CHAR":             "string",
	"NCHAR":            "string",
	"BPCHAR":           "string",
	"VARCHAR":          "string",
	"NVARCHAR":         "string",
	"VARCHAR2":         "string",
	"NVARCHAR2":        "string",
	"TEXT":             "string",
	"NTEXT":            "string",
	"TINYTEXT":         "string",
	"MEDIUMTEXT":       "string",
	"LONGTEXT":         "string",
	"CLOB":             "string",
	"NCLOB":            "string",
	"DATE":             "time.Time",
	"DATETIME":         "time.Time",
	"DATETIME2":        "time.Time",
	"SMALLDATETIME":    "time.Time",
	"TIMESTAMP":        "time.Time",
	"TIMESTAMPTZ":      "time.Time",
}

var driverTypes = map[string]map[string]string{
	"mysql": {
		"FLOAT": "float32",
	},
	"sqlserver": {
		"TINYINT": "uint8",
	},
	"oracle": {
		"FLOAT": "decimal",
	},
}

// NormalizeType turns a driver-reported column type into the classification
// vocabulary. dbType is what ColumnType.DatabaseTypeName reports; scan is
// the driver's scan type and is only consulted when dbType is empty.
// Unrecognised names are returned upper-cased so they survive into the
// UNKNOWNTYPE sentinel.
func NormalizeType(driver, dbType string, scan reflect.Type) string {
	t := strings.ToUpper(strings.TrimSpace(dbType))
	if i := strings.IndexByte(t, '('); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}
	if t == "" {
		return scanTypeName(scan)
	}

	if overrides, ok := driverTypes[canonicalDriver(driver)]; ok {
		if v, ok := overrides[t]; ok {
			return v
		}
	}
	if v, ok := nativeTypes[t]; ok {
		return v
	}
	return t
}

func scanTypeName(scan reflect.Type) string {
	if scan == nil {
		return "unknown"
	}
	for scan.Kind() == reflect.Pointer {
		scan = scan.Elem()
	}
	switch scan.String() {
	case "sql.NullString":
		return "string"
	case "sql.NullBool":
		return "bool"
	case "sql.NullByte":
		return "uint8"
	case "sql.NullInt16":
		return "int16"
	case "sql.NullInt32":
		return "int32"
	case "sql.NullInt64":
		return "int64"
	case "sql.NullFloat64":
		return "float64"
	case "sql.NullTime":
		return "time.Time"
	}
	return scan.String()
}
