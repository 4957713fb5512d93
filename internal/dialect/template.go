package dialect

import (
	"fmt"
	"strings"

	"github.com/onebengaltiger/obtutils/internal/notify"
	"github.com/onebengaltiger/obtutils/internal/schema"
)

// request is everything a render function needs for one statement.
type request struct {
	kind   Kind
	table  schema.Table
	types  []string
	params Params
}

type renderFunc func(w *stmtWriter, r request)

// templates is the (Dialect, Kind) dispatch table.
var templates = map[Dialect]map[Kind]renderFunc{
	Generic:    tsqlTemplates,
	SQLServer:  tsqlTemplates,
	MySQL:      mysqlTemplates,
	PostgreSQL: pgsqlTemplates,
}

type Options struct {
	Layout Layout
	// Notifier receives a notice for every column whose type could not
	// be mapped. Nil discards notices.
	Notifier notify.Notifier
}

// Template generates statements for one dialect. It holds no mutable
// state and is safe for concurrent use.
type Template struct {
	dialect  Dialect
	layout   Layout
	notifier notify.Notifier
}

func New(d Dialect, opts Options) *Template {
	return &Template{
		dialect:  d,
		layout:   opts.Layout,
		notifier: notify.Safe(opts.Notifier),
	}
}

func (t *Template) Dialect() Dialect { return t.dialect }

// MapType is MapType for the template's dialect, plus a notice when the
// column type is unmapped.
func (t *Template) MapType(col schema.Column) string {
	return t.mapType("", col)
}

func (t *Template) mapType(table string, col schema.Column) string {
	sqlType := MapType(col, t.dialect)
	if col.Type == schema.Unknown {
		name := col.Name
		if table != "" {
			name = table + "." + col.Name
		}
		t.notifier.Notify(fmt.Sprintf("MapType: unknown data type %q for column %s, emitted as %s",
			col.NativeType, name, sqlType))
	}
	return sqlType
}

// Generate renders the kind statement for table. Column order is the
// table's; names are written verbatim.
func (t *Template) Generate(kind Kind, table schema.Table) string {
	render, ok := templates[t.dialect][kind]
	if !ok {
		t.notifier.Notify(fmt.Sprintf("Generate: no %s template for dialect %s", kind, t.dialect))
		return ""
	}

	types := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		types[i] = t.mapType(table.Name, col)
	}

	w := newWriter(t.layout)
	render(w, request{
		kind:   kind,
		table:  table,
		types:  types,
		params: ParamsFor(t.dialect),
	})
	return w.String()
}

// GenerateAll renders SELECT, INSERT, UPDATE and DELETE for table,
// separated by blank lines.
func (t *Template) GenerateAll(table schema.Table) string {
	parts := make([]string, 0, 4)
	for _, k := range Kinds() {
		parts = append(parts, t.Generate(k, table))
	}
	return strings.Join(parts, "\n\n") + "\n"
}

// Bodies are shared by every dialect; only the parameter convention differs.

func selectBody(w *stmtWriter, r request) {
	w.commented("SELECT", "-- *")
	w.list(NameList(r.table.Columns), Comma)
	w.line("FROM " + r.table.Name)
	w.line("WHERE")
	w.list(EqualityList(r.params, r.table.Columns), And)
}

func insertBody(w *stmtWriter, r request) {
	w.line("INSERT INTO " + r.table.Name + " (")
	w.list(NameList(r.table.Columns), Comma)
	w.line(") VALUES (")
	w.list(PlaceholderList(r.params, r.table.Columns), Comma)
	w.line(")")
}

func updateBody(w *stmtWriter, r request) {
	w.line("UPDATE " + r.table.Name)
	w.line("SET")
	w.list(EqualityList(r.params, r.table.Columns), Comma)
	w.line("WHERE")
	w.list(EqualityList(r.params, r.table.Columns), And)
}

func deleteBody(w *stmtWriter, r request) {
	w.line("DELETE FROM " + r.table.Name)
	w.line("WHERE")
	w.list(EqualityList(r.params, r.table.Columns), And)
}

var bodies = map[Kind]renderFunc{
	Select: selectBody,
	Insert: insertBody,
	Update: updateBody,
	Delete: deleteBody,
}

// wrap builds a per-kind table from a dialect's wrapper.
func wrap(wrapper func(w *stmtWriter, r request, body renderFunc)) map[Kind]renderFunc {
	m := make(map[Kind]renderFunc, len(bodies))
	for kind, body := range bodies {
		m[kind] = func(w *stmtWriter, r request) { wrapper(w, r, body) }
	}
	return m
}

// Body renders only the DML statement of kind, on one line and without
// the routine wrapper. Placeholders follow the dialect's convention.
func (t *Template) Body(kind Kind, table schema.Table) string {
	body, ok := bodies[kind]
	if !ok {
		return ""
	}
	w := newWriter(LayoutCompact)
	body(w, request{kind: kind, table: table, params: ParamsFor(t.dialect)})
	return w.String()
}
