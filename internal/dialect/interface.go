package dialect

import "strconv"

// Params is a routine parameter naming convention.
type Params interface {
	// Declare renders one parameter declaration in the routine signature.
	Declare(column, sqlType string) string
	// Placeholder renders the reference to the i-th (0-based) parameter
	// inside the routine body.
	Placeholder(column string, i int) string
}

// atParams is the T-SQL convention: @col AS TYPE, referenced as @col.
type atParams struct{}

func (atParams) Declare(column, sqlType string) string { return "@" + column + " AS " + sqlType }
func (atParams) Placeholder(column string, _ int) string { return "@" + column }

// inParams is the MySQL convention: IN P_col TYPE, referenced as P_col.
type inParams struct{}

func (inParams) Declare(column, sqlType string) string { return "IN P_" + column + " " + sqlType }
func (inParams) Placeholder(column string, _ int) string { return "P_" + column }

// positionalParams is the PostgreSQL SQL-function convention: parameters
// are declared by name but referenced by position ($1, $2, ...).
type positionalParams struct{}

func (positionalParams) Declare(column, sqlType string) string { return "P_" + column + " " + sqlType }
func (positionalParams) Placeholder(_ string, i int) string { return "$" + strconv.Itoa(i+1) }

// ParamsFor returns the parameter convention of d.
func ParamsFor(d Dialect) Params {
	switch d {
	case MySQL:
		return inParams{}
	case PostgreSQL:
		return positionalParams{}
	default:
		return atParams{}
	}
}

var (
	_ Params = atParams{}
	_ Params = inParams{}
	_ Params = positionalParams{}
)
