package dialect

import (
	"strings"
	"testing"

	"github.com/onebengaltiger/obtutils/internal/schema"
)

func TestMapType(t *testing.T) {
	t.Parallel()

	cases := []struct {
		typ      schema.AbstractType
		baseline string
		postgres string
	}{
		{schema.Byte, "TINYINT", "TINYINT"},
		{schema.SByte, "SMALLINT", "SMALLINT"},
		{schema.Int16, "SMALLINT", "SMALLINT"},
		{schema.Int32, "INTEGER", "INTEGER"},
		{schema.Single, "FLOAT(24)", "REAL"},
		{schema.Double, "FLOAT(53)", "FLOAT(53)"},
		{schema.Boolean, "BIT", "BIT"},
		{schema.Decimal, "DECIMAL", "FLOAT(53)"},
		{schema.String, "VARCHAR(255)", "VARCHAR(255)"},
		{schema.DateTime, "DATETIME", "DATE"},
		{schema.AbstractType(99), "VARCHAR(255)", "VARCHAR(255)"},
	}

	for _, c := range cases {
		col := schema.Column{Name: "c", Type: c.typ}
		for _, d := range []Dialect{Generic, SQLServer, MySQL} {
			if got := MapType(col, d); got != c.baseline {
				t.Fatalf("MapType(%v, %s) = %q, want %q", c.typ, d, got, c.baseline)
			}
		}
		if got := MapType(col, PostgreSQL); got != c.postgres {
			t.Fatalf("MapType(%v, postgresql) = %q, want %q", c.typ, got, c.postgres)
		}
	}
}

func TestMapType_Unknown(t *testing.T) {
	t.Parallel()

	col := schema.Column{Name: "Photo", Type: schema.Unknown, NativeType: "BYTEA"}
	for _, d := range Dialects() {
		got := MapType(col, d)
		if !strings.Contains(got, "UNKNOWNTYPEBYTEA") {
			t.Fatalf("MapType(unknown, %s) = %q", d, got)
		}
	}

	// still non-empty when the native name is missing
	if got := MapType(schema.Column{Type: schema.Unknown}, Generic); got == "" {
		t.Fatal("MapType returned an empty type")
	}
}

func TestSelectDialect(t *testing.T) {
	t.Parallel()

	cases := map[string]Dialect{
		"Npgsql.NpgsqlFactory":           PostgreSQL,
		"NPGSQL":                         PostgreSQL,
		"MySql.Data.MySqlClient":         MySQL,
		"System.Data.SqlClient":          SQLServer,
		"anything-unrecognized":          Generic,
		"":                               Generic,
		"postgres":                       Generic,
		"Npgsql.MySqlClientCompat":       PostgreSQL,
		"MySql.Data.SqlClientCompatible": MySQL,
	}
	for in, want := range cases {
		if got := SelectDialect(in); got != want {
			t.Fatalf("SelectDialect(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	cases := map[string]Dialect{
		"generic":    Generic,
		"SQLServer":  SQLServer,
		"mssql":      SQLServer,
		"mysql":      MySQL,
		"postgresql": PostgreSQL,
		"pg":         PostgreSQL,
	}
	for in, want := range cases {
		got, err := Parse(in)
		if err != nil || got != want {
			t.Fatalf("Parse(%q) = %s, %v; want %s", in, got, err, want)
		}
	}

	if _, err := Parse("db2"); err == nil {
		t.Fatal("Parse(db2) should fail")
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	for _, k := range Kinds() {
		got, ok := ParseKind(strings.ToUpper(k.String()))
		if !ok || got != k {
			t.Fatalf("ParseKind(%q) = %v, %v", k, got, ok)
		}
	}
	if _, ok := ParseKind("all"); ok {
		t.Fatal("all is not a single statement kind")
	}
}

func TestParseLayout(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Layout{"": LayoutVerbose, "verbose": LayoutVerbose, " Compact ": LayoutCompact} {
		got, ok := ParseLayout(in)
		if !ok || got != want {
			t.Fatalf("ParseLayout(%q) = %v, %v", in, got, ok)
		}
	}
	if _, ok := ParseLayout("pretty"); ok {
		t.Fatal("ParseLayout(pretty) should fail")
	}
}

func TestLists(t *testing.T) {
	t.Parallel()

	for n := 0; n <= 4; n++ {
		cols := make([]schema.Column, n)
		for i := range cols {
			cols[i] = schema.Column{Name: string(rune('a' + i)), Type: schema.Int32}
		}

		names := JoinList(NameList(cols), Comma)
		joiners := strings.Count(names, ",")
		want := n - 1
		if n == 0 {
			want = 0
		}
		if joiners != want {
			t.Fatalf("n=%d: %q has %d joiners, want %d", n, names, joiners, want)
		}
		if n == 0 && names != "" {
			t.Fatalf("empty name list rendered as %q", names)
		}

		where := JoinList(EqualityList(positionalParams{}, cols), And)
		if n == 0 && where != "" {
			t.Fatalf("empty equality list rendered as %q", where)
		}
		if n > 0 && !strings.HasSuffix(where, "= $"+string(rune('0'+n))) {
			t.Fatalf("n=%d: unexpected positional list %q", n, where)
		}
	}
}

func TestParams(t *testing.T) {
	t.Parallel()

	cases := []struct {
		d           Dialect
		decl        string
		placeholder string
	}{
		{Generic, "@Id AS INTEGER", "@Id"},
		{SQLServer, "@Id AS INTEGER", "@Id"},
		{MySQL, "IN P_Id INTEGER", "P_Id"},
		{PostgreSQL, "P_Id INTEGER", "$3"},
	}
	for _, c := range cases {
		p := ParamsFor(c.d)
		if got := p.Declare("Id", "INTEGER"); got != c.decl {
			t.Fatalf("%s Declare = %q, want %q", c.d, got, c.decl)
		}
		if got := p.Placeholder("Id", 2); got != c.placeholder {
			t.Fatalf("%s Placeholder = %q, want %q", c.d, got, c.placeholder)
		}
	}
}
