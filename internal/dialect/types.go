package dialect

import "github.com/onebengaltiger/obtutils/internal/schema"

// UnknownTypePrefix marks a column whose type has no mapping. It is
// followed directly by the column's native type name.
const UnknownTypePrefix = "UNKNOWNTYPE"

// MapType returns the SQL type used to declare col in the given dialect.
// It never fails: unmapped types come back as UnknownTypePrefix+native name.
func MapType(col schema.Column, d Dialect) string {
	if d == PostgreSQL {
		switch col.Type {
		case schema.Single:
			return "REAL"
		case schema.Double, schema.Decimal:
			return "FLOAT(53)"
		case schema.DateTime:
			return "DATE"
		}
	}

	switch col.Type {
	case schema.Byte:
		return "TINYINT"
	case schema.SByte, schema.Int16:
		return "SMALLINT"
	case schema.Int32:
		return "INTEGER"
	case schema.Single:
		return "FLOAT(24)"
	case schema.Double:
		return "FLOAT(53)"
	case schema.Boolean:
		return "BIT"
	case schema.Decimal:
		return "DECIMAL"
	case schema.String:
		return "VARCHAR(255)"
	case schema.DateTime:
		return "DATETIME"
	case schema.Unknown:
		return UnknownTypePrefix + col.NativeType
	default:
		return "VARCHAR(255)"
	}
}
