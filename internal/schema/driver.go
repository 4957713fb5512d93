package schema

import (
	"database/sql"
	"strings"
)

// DriverFor resolves a provider identifier to a database/sql driver name.
// ADO.Net style invariant names (Npgsql, MySql.Data.MySqlClient,
// System.Data.SqlClient) are accepted as well as plain Go driver names.
func DriverFor(provider string) string {
	p := strings.ToLower(strings.TrimSpace(provider))
	for _, name := range sql.Drivers() {
		if name == p {
			return name
		}
	}

	switch {
	case strings.Contains(p, "npgsql"), strings.Contains(p, "postgres"):
		return "postgres"
	case strings.Contains(p, "mysql"):
		return "mysql"
	case strings.Contains(p, "sqlclient"), strings.Contains(p, "sqlserver"), strings.Contains(p, "mssql"):
		return "sqlserver"
	case strings.Contains(p, "oracle"):
		return "oracle"
	case strings.Contains(p, "sqlite"):
		return "sqlite"
	default:
		return p
	}
}

// canonicalDriver folds driver aliases onto the names used for catalog
// queries and type overrides.
func canonicalDriver(driver string) string {
	switch d := strings.ToLower(driver); d {
	case "pgx", "pgx/v5", "postgres", "postgresql":
		return "postgres"
	case "mssql", "sqlserver":
		return "sqlserver"
	case "sqlite", "sqlite3":
		return "sqlite"
	default:
		return d
	}
}
