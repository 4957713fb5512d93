package dialect

import (
	"strings"

	"github.com/onebengaltiger/obtutils/internal/schema"
)

// Joiner separates list items. Comma is used for column lists and SET
// clauses, And for WHERE predicates.
type Joiner string

const (
	Comma Joiner = ","
	And   Joiner = " AND"
)

// JoinList joins items on a single line: "a, b" or "a AND b".
// An empty list yields "".
func JoinList(items []string, j Joiner) string {
	return strings.Join(items, string(j)+" ")
}

// generate builds count items with fn, in index order.
func generate(count int, fn func(int) string) []string {
	items := make([]string, count)
	for i := 0; i < count; i++ {
		items[i] = fn(i)
	}
	return items
}

// NameList returns the column names in table order.
func NameList(cols []schema.Column) []string {
	return generate(len(cols), func(i int) string { return cols[i].Name })
}

// TypedParamList returns one parameter declaration per column.
// types must be parallel to cols.
func TypedParamList(p Params, cols []schema.Column, types []string) []string {
	return generate(len(cols), func(i int) string { return p.Declare(cols[i].Name, types[i]) })
}

// OutParamList returns the OUT column declarations a set-returning
// PostgreSQL function starts with.
func OutParamList(cols []schema.Column, types []string) []string {
	return generate(len(cols), func(i int) string { return "OUT " + cols[i].Name + " " + types[i] })
}

// PlaceholderList returns the parameter reference for every column.
func PlaceholderList(p Params, cols []schema.Column) []string {
	return generate(len(cols), func(i int) string { return p.Placeholder(cols[i].Name, i) })
}

// EqualityList returns "col = <placeholder>" for every column.
func EqualityList(p Params, cols []schema.Column) []string {
	return generate(len(cols), func(i int) string { return cols[i].Name + " = " + p.Placeholder(cols[i].Name, i) })
}
