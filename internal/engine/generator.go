// Package engine produces example invocations of generated routines,
// filled with plausible fake arguments.
package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/onebengaltiger/obtutils/internal/dialect"
	"github.com/onebengaltiger/obtutils/internal/schema"
)

// maxStringLen matches the VARCHAR(255) the templates declare.
const maxStringLen = 255

var (
	dateFrom = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	dateTo   = time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)
)

// Sampler generates argument values. The same seed always yields the same
// sequence of values. A Sampler is not safe for concurrent use.
type Sampler struct {
	faker *gofakeit.Faker
}

// NewSampler returns a sampler seeded with seed; 0 picks a random seed.
func NewSampler(seed int64) *Sampler {
	return &Sampler{faker: gofakeit.New(seed)}
}

// Value returns a SQL literal for col, chosen by the column's type and
// by what its name suggests it holds.
func (s *Sampler) Value(col schema.Column, d dialect.Dialect) string {
	meaning := schema.AnalyzeMeaning(col.Name)
	f := s.faker

	switch col.Type {
	case schema.String:
		return quote(truncate(s.text(meaning), maxStringLen))

	case schema.Byte:
		return strconv.Itoa(f.Number(0, 255))
	case schema.SByte:
		return strconv.Itoa(f.Number(-128, 127))
	case schema.Int16, schema.Int32:
		hi := 32767
		if col.Type == schema.Int32 {
			hi = 100000
		}
		switch meaning {
		case "count":
			hi = 100
		case "yesno":
			return strconv.Itoa(f.Number(0, 1))
		}
		return strconv.Itoa(f.Number(1, hi))

	case schema.Single, schema.Double, schema.Decimal:
		if meaning == "price" {
			return strconv.FormatFloat(f.Price(1, 1000), 'f', 2, 64)
		}
		return strconv.FormatFloat(f.Float64Range(0, 1000), 'f', 2, 64)

	case schema.Boolean:
		bit := "0"
		if f.Bool() {
			bit = "1"
		}
		if d == dialect.PostgreSQL {
			return "B'" + bit + "'"
		}
		return bit

	case schema.DateTime:
		t := f.DateRange(dateFrom, dateTo)
		if d == dialect.PostgreSQL {
			return quote(t.Format("2006-01-02"))
		}
		return quote(t.Format("2006-01-02 15:04:05"))
	}

	return "NULL"
}

func (s *Sampler) text(meaning string) string {
	f := s.faker
	switch meaning {
	case "email":
		return f.Email()
	case "phone":
		return f.Phone()
	case "name":
		return f.Name()
	case "address":
		return f.Street()
	case "city":
		return f.City()
	case "country":
		return f.Country()
	case "zipcode":
		return f.Zip()
	case "password":
		return f.Password(true, true, true, false, false, 12)
	case "url":
		return f.URL()
	case "title":
		return strings.TrimSuffix(f.Sentence(3), ".")
	case "description":
		return f.Sentence(8)
	case "date":
		return f.DateRange(dateFrom, dateTo).Format("2006-01-02")
	case "yesno":
		if f.Bool() {
			return "Y"
		}
		return "N"
	}
	return f.Word()
}

// Values returns one literal per column, in table order.
func (s *Sampler) Values(table schema.Table, d dialect.Dialect) []string {
	vals := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		vals[i] = s.Value(col, d)
	}
	return vals
}

// Invocation renders a call of the routine generated for (d, kind, table):
//
//	EXEC spInsertCustomer @Id = 1, @Name = 'Ann';
//	CALL spInsertCustomer(1, 'Ann');
//	SELECT fnInsertCustomer(1, 'Ann');
//	SELECT * FROM fnSelectCustomer(1, 'Ann');
func (s *Sampler) Invocation(d dialect.Dialect, kind dialect.Kind, table schema.Table) string {
	name := dialect.RoutineName(d, kind, table.Name)
	vals := s.Values(table, d)

	switch d {
	case dialect.MySQL:
		return fmt.Sprintf("CALL %s(%s);", name, strings.Join(vals, ", "))
	case dialect.PostgreSQL:
		if kind == dialect.Select {
			return fmt.Sprintf("SELECT * FROM %s(%s);", name, strings.Join(vals, ", "))
		}
		return fmt.Sprintf("SELECT %s(%s);", name, strings.Join(vals, ", "))
	default:
		p := dialect.ParamsFor(d)
		args := make([]string, len(vals))
		for i, col := range table.Columns {
			args[i] = p.Placeholder(col.Name, i) + " = " + vals[i]
		}
		if len(args) == 0 {
			return "EXEC " + name + ";"
		}
		return fmt.Sprintf("EXEC %s %s;", name, strings.Join(args, ", "))
	}
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) > limit {
		return string(runes[:limit])
	}
	return s
}
