package dialect

// PostgreSQL SQL functions. SELECT declares every column twice, first as
// an OUT column and then as an input, and returns SETOF RECORD; the rest
// return VOID. Inputs are referenced positionally in the body.
var pgsqlTemplates = wrap(func(w *stmtWriter, r request, body renderFunc) {
	w.line("CREATE OR REPLACE FUNCTION " + RoutineName(PostgreSQL, r.kind, r.table.Name) + " (")
	if r.kind == Select {
		w.terminated(OutParamList(r.table.Columns, r.types), ",")
	}
	w.list(TypedParamList(r.params, r.table.Columns, r.types), Comma)
	w.line(")")
	if r.kind == Select {
		w.line("RETURNS SETOF RECORD")
	} else {
		w.line("RETURNS VOID")
	}
	w.line("AS")
	w.line("$$")
	w.blank()

	body(w, r)

	w.line("$$")
	w.line("LANGUAGE SQL;")
})
