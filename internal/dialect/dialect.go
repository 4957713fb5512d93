// Package dialect renders CREATE PROCEDURE / CREATE FUNCTION boilerplate
// for SELECT, INSERT, UPDATE and DELETE over a single table.
//
// The set of dialects is closed: Generic and SQLServer share the T-SQL
// templates, MySQL and PostgreSQL have their own. Rendering is dispatched
// through a (Dialect, Kind) table rather than per-dialect types.
package dialect

import (
	"fmt"
	"strings"
)

type Dialect int

const (
	Generic Dialect = iota
	SQLServer
	MySQL
	PostgreSQL
)

var dialectNames = [...]string{
	Generic:    "generic",
	SQLServer:  "sqlserver",
	MySQL:      "mysql",
	PostgreSQL: "postgresql",
}

func (d Dialect) String() string {
	if d < 0 || int(d) >= len(dialectNames) {
		return fmt.Sprintf("Dialect(%d)", int(d))
	}
	return dialectNames[d]
}

// Dialects lists every supported dialect.
func Dialects() []Dialect {
	return []Dialect{Generic, SQLServer, MySQL, PostgreSQL}
}

// Kind is the statement to generate.
type Kind int

const (
	Select Kind = iota
	Insert
	Update
	Delete
)

var kindNames = [...]string{
	Select: "select",
	Insert: "insert",
	Update: "update",
	Delete: "delete",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds lists the statement kinds in the order "all" emits them.
func Kinds() []Kind {
	return []Kind{Select, Insert, Update, Delete}
}

// ParseKind resolves a case-insensitive statement keyword.
func ParseKind(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range kindNames {
		if name == s {
			return Kind(i), true
		}
	}
	return 0, false
}

// verb is the capitalised kind used in routine names (spSelectCustomer).
func (k Kind) verb() string {
	name := k.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

// RoutineName is the name of the generated procedure or function:
// sp<Kind><Table>, or fn<Kind><Table> for PostgreSQL.
func RoutineName(d Dialect, k Kind, table string) string {
	prefix := "sp"
	if d == PostgreSQL {
		prefix = "fn"
	}
	return prefix + k.verb() + table
}
