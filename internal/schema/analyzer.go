package schema

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Introspector returns the columns of a table in their natural order.
type Introspector interface {
	Columns(ctx context.Context, table string) ([]NativeColumn, error)
}

// SQLIntrospector reads column metadata from a live database/sql connection.
// Schema is only used when listing tables; an empty value picks the
// driver's default (current database for MySQL, public, dbo).
type SQLIntrospector struct {
	DB     *sql.DB
	Driver string
	Schema string
}

var _ Introspector = (*SQLIntrospector)(nil)

// Columns runs an always-false SELECT against the table and reads the
// result set's column types. Every failure is an *IntrospectionError.
func (in *SQLIntrospector) Columns(ctx context.Context, table string) ([]NativeColumn, error) {
	if in.DB == nil {
		return nil, &IntrospectionError{Table: table, Err: fmt.Errorf("no database connection")}
	}

	rows, err := in.DB.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s WHERE 1 <> 1", table))
	if err != nil {
		return nil, &IntrospectionError{Table: table, Err: fmt.Errorf("failed to query columns: %w", err)}
	}
	defer rows.Close()

	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, &IntrospectionError{Table: table, Err: fmt.Errorf("failed to read column types: %w", err)}
	}

	cols := make([]NativeColumn, 0, len(types))
	for _, ct := range types {
		cols = append(cols, NativeColumn{
			Name:     ct.Name(),
			TypeName: NormalizeType(in.Driver, ct.DatabaseTypeName(), ct.ScanType()),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, &IntrospectionError{Table: table, Err: fmt.Errorf("error iterating columns: %w", err)}
	}

	return cols, nil
}

// Tables lists the base tables visible through the connection, sorted by name.
func (in *SQLIntrospector) Tables(ctx context.Context) ([]string, error) {
	if in.DB == nil {
		return nil, &IntrospectionError{Err: fmt.Errorf("no database connection")}
	}

	c, ok := catalogs[canonicalDriver(in.Driver)]
	if !ok {
		return nil, &IntrospectionError{Err: fmt.Errorf("listing tables is not supported for driver %q", in.Driver)}
	}

	var args []any
	if c.tablesArg {
		target, err := in.schemaName(ctx, c)
		if err != nil {
			return nil, &IntrospectionError{Err: err}
		}
		args = append(args, target)
	}

	rows, err := in.DB.QueryContext(ctx, c.tables, args...)
	if err != nil {
		return nil, &IntrospectionError{Err: fmt.Errorf("failed to query tables: %w", err)}
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, &IntrospectionError{Err: fmt.Errorf("failed to scan table name: %w", err)}
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, &IntrospectionError{Err: fmt.Errorf("error iterating tables: %w", err)}
	}

	return tables, nil
}

func (in *SQLIntrospector) schemaName(ctx context.Context, c catalog) (string, error) {
	if in.Schema != "" {
		return in.Schema, nil
	}
	if c.defaultSchema != "" {
		return c.defaultSchema, nil
	}

	// MySQL: the database selected in the DSN.
	var name sql.NullString
	if err := in.DB.QueryRowContext(ctx, "SELECT DATABASE()").Scan(&name); err != nil {
		return "", fmt.Errorf("failed to get database name: %w", err)
	}
	if !name.Valid || name.String == "" {
		return "", fmt.Errorf("no database selected in DSN")
	}
	return name.String, nil
}

// Describe introspects table once and classifies its columns.
func Describe(ctx context.Context, in Introspector, table string) (Table, error) {
	cols, err := in.Columns(ctx, table)
	if err != nil {
		var ie *IntrospectionError
		if errors.As(err, &ie) {
			return Table{}, err
		}
		return Table{}, &IntrospectionError{Table: table, Err: err}
	}
	return NewTable(table, cols), nil
}
