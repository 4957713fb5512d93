package verify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onebengaltiger/obtutils/internal/dialect"
	"github.com/onebengaltiger/obtutils/internal/schema"
)

func customer() schema.Table {
	return schema.Table{
		Name: "Customer",
		Columns: []schema.Column{
			{Name: "Id", Type: schema.Int32},
			{Name: "Name", Type: schema.String},
			{Name: "Balance", Type: schema.Decimal},
		},
	}
}

func TestTable_AllDialectsParse(t *testing.T) {
	c := NewChecker()
	for _, d := range dialect.Dialects() {
		tpl := dialect.New(d, dialect.Options{})
		errs := c.Table(tpl, customer())
		assert.Empty(t, errs, "dialect %s", d)
	}
}

func TestCheck_Kinds(t *testing.T) {
	c := NewChecker()

	cases := map[string]dialect.Kind{
		"SELECT Id FROM Customer WHERE Id = $1":          dialect.Select,
		"INSERT INTO Customer (Id) VALUES (@Id)":         dialect.Insert,
		"UPDATE Customer SET Id = P_Id WHERE Id = P_Id":  dialect.Update,
		"DELETE FROM Customer WHERE Id = $1 AND Id = $2": dialect.Delete,
	}
	for sql, want := range cases {
		got, err := c.Check(sql)
		require.NoError(t, err, sql)
		assert.Equal(t, want, got, sql)
	}
}

func TestTable_EmptyTableIsReported(t *testing.T) {
	c := NewChecker()
	tpl := dialect.New(dialect.Generic, dialect.Options{})

	errs := c.Table(tpl, schema.Table{Name: "T"})
	require.NotEmpty(t, errs)

	var ce *CheckError
	require.True(t, errors.As(errs[0], &ce))
	assert.Equal(t, "T", ce.Table)
	assert.NotNil(t, errors.Unwrap(ce))
}

func TestTable_ReservedWordColumn(t *testing.T) {
	c := NewChecker()
	tpl := dialect.New(dialect.MySQL, dialect.Options{})

	table := schema.Table{Name: "Orders", Columns: []schema.Column{
		{Name: "Id", Type: schema.Int32},
		{Name: "Select", Type: schema.String},
	}}
	assert.NotEmpty(t, c.Table(tpl, table))
}
