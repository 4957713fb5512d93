package dialect

// MySQL stored procedures take IN P_col parameters inside parentheses and
// have no AS before the body.
var mysqlTemplates = wrap(func(w *stmtWriter, r request, body renderFunc) {
	w.line(mysqlCreate(r.kind) + " " + RoutineName(MySQL, r.kind, r.table.Name) + " (")
	w.list(TypedParamList(r.params, r.table.Columns, r.types), Comma)
	w.line(")")
	w.blank()

	body(w, r)
	if r.kind == Insert {
		w.blank()
	}
})

// mysqlCreate returns the CREATE keyword for kind. UPDATE has always been
// emitted as CREATE PROC, unlike the other three; existing output is kept
// byte-for-byte, so this is not corrected here.
func mysqlCreate(kind Kind) string {
	if kind == Update {
		return "CREATE PROC"
	}
	return "CREATE PROCEDURE"
}
