package schema

// catalog holds the per-driver metadata query used to list base tables.
// tablesArg reports whether the query takes the schema name as its only argument.
type catalog struct {
	tables        string
	tablesArg     bool
	defaultSchema string
}

var catalogs = map[string]catalog{
	"mysql": {
		tables:    `SELECT TABLE_NAME FROM information_schema.TABLES WHERE TABLE_SCHEMA = ? AND TABLE_TYPE = 'BASE TABLE' ORDER BY TABLE_NAME`,
		tablesArg: true,
	},
	"postgres": {
		tables:        `SELECT TABLE_NAME FROM information_schema.TABLES WHERE TABLE_SCHEMA = $1 AND TABLE_TYPE = 'BASE TABLE' ORDER BY TABLE_NAME`,
		tablesArg:     true,
		defaultSchema: "public",
	},
	"sqlserver": {
		tables:        `SELECT TABLE_NAME FROM INFORMATION_SCHEMA.TABLES WHERE TABLE_SCHEMA = @p1 AND TABLE_TYPE = 'BASE TABLE' ORDER BY TABLE_NAME`,
		tablesArg:     true,
		defaultSchema: "dbo",
	},
	// Oracle lists the connected user's tables; the schema argument is ignored.
	"oracle": {
		tables: `SELECT TABLE_NAME FROM USER_TABLES ORDER BY TABLE_NAME`,
	},
	"sqlite": {
		tables: `SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`,
	},
}
