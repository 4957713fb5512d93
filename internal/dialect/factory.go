package dialect

import (
	"fmt"
	"strings"
)

// SelectDialect picks the dialect for a provider identifier by case-insensitive
// substring match: npgsql, then mysql, then sqlclient. Anything else is
// Generic.
func SelectDialect(provider string) Dialect {
	p := strings.ToLower(provider)
	switch {
	case strings.Contains(p, "npgsql"):
		return PostgreSQL
	case strings.Contains(p, "mysql"):
		return MySQL
	case strings.Contains(p, "sqlclient"):
		return SQLServer
	default:
		return Generic
	}
}

// Parse resolves an explicit dialect name, as given to --dialect.
func Parse(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "generic", "":
		return Generic, nil
	case "sqlserver", "mssql", "tsql":
		return SQLServer, nil
	case "mysql":
		return MySQL, nil
	case "postgresql", "postgres", "pg", "pgsql":
		return PostgreSQL, nil
	default:
		return Generic, fmt.Errorf("unknown dialect %q (want generic, sqlserver, mysql or postgresql)", name)
	}
}
