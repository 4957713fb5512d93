// Package verify parses the DML inside generated routines to catch
// statements that would not compile, such as column names that collide
// with reserved words.
package verify

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/pingcap/tidb/pkg/parser"
	"github.com/pingcap/tidb/pkg/parser/ast"
	_ "github.com/pingcap/tidb/pkg/parser/test_driver"

	"github.com/onebengaltiger/obtutils/internal/dialect"
	"github.com/onebengaltiger/obtutils/internal/schema"
)

// positional matches PostgreSQL $n references, which the MySQL grammar
// only knows as ? markers. @name and P_name parse as-is.
var positional = regexp.MustCompile(`\$\d+`)

// Checker wraps a TiDB parser. The parser is not safe for concurrent use,
// so calls are serialised.
type Checker struct {
	mu sync.Mutex
	p  *parser.Parser
}

func NewChecker() *Checker {
	return &Checker{p: parser.New()}
}

// CheckError reports a body that did not parse as the expected statement.
type CheckError struct {
	Table string
	Kind  dialect.Kind
	SQL   string
	Err   error
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("%s %s: %v (sql: %s)", e.Table, e.Kind, e.Err, e.SQL)
}

func (e *CheckError) Unwrap() error { return e.Err }

// Check parses a single DML statement and returns the statement kind it
// turned out to be.
func (c *Checker) Check(sql string) (dialect.Kind, error) {
	c.mu.Lock()
	nodes, _, err := c.p.Parse(positional.ReplaceAllString(sql, "?"), "", "")
	c.mu.Unlock()
	if err != nil {
		return 0, fmt.Errorf("parse SQL failed: %w", err)
	}
	if len(nodes) != 1 {
		return 0, fmt.Errorf("expected one statement, found %d", len(nodes))
	}

	switch nodes[0].(type) {
	case *ast.SelectStmt:
		return dialect.Select, nil
	case *ast.InsertStmt:
		return dialect.Insert, nil
	case *ast.UpdateStmt:
		return dialect.Update, nil
	case *ast.DeleteStmt:
		return dialect.Delete, nil
	default:
		return 0, fmt.Errorf("unexpected statement %T", nodes[0])
	}
}

// Table checks the body of every statement kind tpl generates for table.
// The result is empty when all four parse.
func (c *Checker) Table(tpl *dialect.Template, table schema.Table) []*CheckError {
	var errs []*CheckError
	for _, kind := range dialect.Kinds() {
		sql := tpl.Body(kind, table)
		got, err := c.Check(sql)
		if err == nil && got != kind {
			err = fmt.Errorf("parsed as %s", got)
		}
		if err != nil {
			errs = append(errs, &CheckError{Table: table.Name, Kind: kind, SQL: sql, Err: err})
		}
	}
	return errs
}
