package engine

import (
	"regexp"
	"strings"
	"testing"

	"github.com/onebengaltiger/obtutils/internal/dialect"
	"github.com/onebengaltiger/obtutils/internal/schema"
)

func sampleTable() schema.Table {
	return schema.Table{
		Name: "Customer",
		Columns: []schema.Column{
			{Name: "Id", Type: schema.Int32},
			{Name: "Email", Type: schema.String},
			{Name: "Balance", Type: schema.Decimal},
			{Name: "Active", Type: schema.Boolean},
			{Name: "CreatedAt", Type: schema.DateTime},
			{Name: "Photo", Type: schema.Unknown, NativeType: "BLOB"},
		},
	}
}

func TestInvocation_Shapes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		d      dialect.Dialect
		kind   dialect.Kind
		prefix string
	}{
		{dialect.SQLServer, dialect.Insert, "EXEC spInsertCustomer @Id = "},
		{dialect.Generic, dialect.Delete, "EXEC spDeleteCustomer @Id = "},
		{dialect.MySQL, dialect.Update, "CALL spUpdateCustomer("},
		{dialect.PostgreSQL, dialect.Select, "SELECT * FROM fnSelectCustomer("},
		{dialect.PostgreSQL, dialect.Insert, "SELECT fnInsertCustomer("},
	}
	for _, c := range cases {
		got := NewSampler(7).Invocation(c.d, c.kind, sampleTable())
		if !strings.HasPrefix(got, c.prefix) || !strings.HasSuffix(got, ";") {
			t.Fatalf("Invocation(%s, %s) = %q, want prefix %q", c.d, c.kind, got, c.prefix)
		}
		if !strings.Contains(got, "NULL") {
			t.Fatalf("unknown column should be passed as NULL: %q", got)
		}
	}
}

func TestInvocation_Deterministic(t *testing.T) {
	t.Parallel()

	a := NewSampler(42).Invocation(dialect.MySQL, dialect.Insert, sampleTable())
	b := NewSampler(42).Invocation(dialect.MySQL, dialect.Insert, sampleTable())
	if a != b {
		t.Fatalf("same seed produced different invocations:\n%s\n%s", a, b)
	}
}

func TestInvocation_EmptyTable(t *testing.T) {
	t.Parallel()

	empty := schema.Table{Name: "T"}
	if got := NewSampler(1).Invocation(dialect.SQLServer, dialect.Delete, empty); got != "EXEC spDeleteT;" {
		t.Fatalf("got %q", got)
	}
	if got := NewSampler(1).Invocation(dialect.MySQL, dialect.Delete, empty); got != "CALL spDeleteT();" {
		t.Fatalf("got %q", got)
	}
}

func TestValue_Literals(t *testing.T) {
	t.Parallel()

	s := NewSampler(3)
	checks := []struct {
		col     schema.Column
		d       dialect.Dialect
		pattern string
	}{
		{schema.Column{Name: "Id", Type: schema.Int32}, dialect.Generic, `^\d+$`},
		{schema.Column{Name: "Flags", Type: schema.SByte}, dialect.Generic, `^-?\d+$`},
		{schema.Column{Name: "Price", Type: schema.Decimal}, dialect.MySQL, `^\d+\.\d{2}$`},
		{schema.Column{Name: "Active", Type: schema.Boolean}, dialect.SQLServer, `^[01]$`},
		{schema.Column{Name: "Active", Type: schema.Boolean}, dialect.PostgreSQL, `^B'[01]'$`},
		{schema.Column{Name: "CreatedAt", Type: schema.DateTime}, dialect.MySQL, `^'\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}'$`},
		{schema.Column{Name: "CreatedAt", Type: schema.DateTime}, dialect.PostgreSQL, `^'\d{4}-\d{2}-\d{2}'$`},
		{schema.Column{Name: "Email", Type: schema.String}, dialect.Generic, `^'[^']*@[^']*'$`},
		{schema.Column{Name: "Blob", Type: schema.Unknown}, dialect.Generic, `^NULL$`},
	}
	for _, c := range checks {
		got := s.Value(c.col, c.d)
		if !regexp.MustCompile(c.pattern).MatchString(got) {
			t.Fatalf("Value(%s, %s) = %q, want match %s", c.col.Name, c.d, got, c.pattern)
		}
	}
}

func TestQuote(t *testing.T) {
	t.Parallel()

	if got := quote("O'Brien"); got != "'O''Brien'" {
		t.Fatalf("quote = %q", got)
	}
	if got := truncate("abcdef", 3); got != "abc" {
		t.Fatalf("truncate = %q", got)
	}
}
