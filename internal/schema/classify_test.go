package schema

import (
	"database/sql"
	"reflect"
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want AbstractType
	}{
		{"uint8", Byte},
		{"byte", Byte},
		{"int8", SByte},
		{"int16", Int16},
		{"int32", Int32},
		{"float32", Single},
		{"float64", Double},
		{"bool", Boolean},
		{"decimal", Decimal},
		{"string", String},
		{"time.Time", DateTime},
		{"datetime", DateTime},
		{" STRING ", String},
		{"int64", Unknown},
		{"BLOB", Unknown},
		{"", Unknown},
	}
	for _, c := range cases {
		if got := Classify(c.in); got != c.want {
			t.Fatalf("Classify(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNormalizeType(t *testing.T) {
	t.Parallel()

	cases := []struct {
		driver string
		dbType string
		want   string
	}{
		{"postgres", "INT4", "int32"},
		{"pgx", "NUMERIC", "decimal"},
		{"postgres", "TIMESTAMPTZ", "time.Time"},
		{"postgres", "FLOAT8", "float64"},
		{"postgres", "UUID", "UUID"},
		{"mysql", "TINYINT", "int8"},
		{"mysql", "UNSIGNED TINYINT", "uint8"},
		{"mysql", "FLOAT", "float32"},
		{"sqlserver", "TINYINT", "uint8"},
		{"mssql", "FLOAT", "float64"},
		{"sqlserver", "nvarchar", "string"},
		{"sqlserver", "BIT", "bool"},
		{"oracle", "NUMBER", "decimal"},
		{"oracle", "VARCHAR2", "string"},
		{"sqlite", "varchar(100)", "string"},
		{"sqlite", "DECIMAL(10,2)", "decimal"},
		{"sqlite", "BIGINT", "int64"},
	}
	for _, c := range cases {
		if got := NormalizeType(c.driver, c.dbType, nil); got != c.want {
			t.Fatalf("NormalizeType(%q, %q) = %q, want %q", c.driver, c.dbType, got, c.want)
		}
	}
}

func TestNormalizeType_ScanTypeFallback(t *testing.T) {
	t.Parallel()

	cases := []struct {
		scan reflect.Type
		want string
	}{
		{reflect.TypeOf(sql.NullString{}), "string"},
		{reflect.TypeOf(sql.NullInt32{}), "int32"},
		{reflect.TypeOf(sql.NullTime{}), "time.Time"},
		{reflect.TypeOf(time.Time{}), "time.Time"},
		{reflect.TypeOf(float32(0)), "float32"},
		{reflect.TypeOf(new(int16)), "int16"},
		{nil, "unknown"},
	}
	for _, c := range cases {
		if got := NormalizeType("sqlite", "", c.scan); got != c.want {
			t.Fatalf("NormalizeType(scan %v) = %q, want %q", c.scan, got, c.want)
		}
	}
}

func TestNewTable(t *testing.T) {
	t.Parallel()

	table := NewTable("Customer", []NativeColumn{
		{Name: "Id", TypeName: "int32"},
		{Name: "Photo", TypeName: "BLOB"},
	})
	if len(table.Columns) != 2 {
		t.Fatalf("len(Columns) = %d, want 2", len(table.Columns))
	}
	if table.Columns[0].Type != Int32 {
		t.Fatalf("Id classified as %v", table.Columns[0].Type)
	}
	if table.Columns[1].Type != Unknown || table.Columns[1].NativeType != "BLOB" {
		t.Fatalf("Photo = %+v, want Unknown/BLOB", table.Columns[1])
	}
}

func TestAnalyzeMeaning(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"CustomerEmail": "email",
		"cust_tel":      "phone",
		"Name":          "name",
		"Balance":       "price",
		"is_active":     "yesno",
		"order_qty":     "count",
		"Id":            "id",
		"HTTPStatus":    "http status",
	}
	for in, want := range cases {
		if got := AnalyzeMeaning(in); got != want {
			t.Fatalf("AnalyzeMeaning(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDriverFor(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Npgsql":                   "postgres",
		"MySql.Data.MySqlClient":   "mysql",
		"System.Data.SqlClient":    "sqlserver",
		"Oracle.DataAccess.Client": "oracle",
		"System.Data.SQLite":       "sqlite",
		"firebird":                 "firebird",
	}
	for in, want := range cases {
		if got := DriverFor(in); got != want {
			t.Fatalf("DriverFor(%q) = %q, want %q", in, got, want)
		}
	}
}
