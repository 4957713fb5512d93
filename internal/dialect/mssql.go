package dialect

// T-SQL stored procedures, shared by Generic and SQLServer:
//
//	CREATE PROC spSelectCustomer
//	@Id AS INTEGER,
//	@Name AS VARCHAR(255)
//	AS
//
//	SELECT  -- *
//	...
var tsqlTemplates = wrap(func(w *stmtWriter, r request, body renderFunc) {
	w.line("CREATE PROC " + RoutineName(SQLServer, r.kind, r.table.Name))
	w.list(TypedParamList(r.params, r.table.Columns, r.types), Comma)
	w.line("AS")
	w.blank()

	body(w, r)
	if r.kind == Insert {
		w.blank()
	}
})
