// Package codegen ties a provider, a schema introspector and a dialect
// template together: introspect the table once, then render.
package codegen

import (
	"context"
	"fmt"
	"strings"

	"github.com/onebengaltiger/obtutils/internal/dialect"
	"github.com/onebengaltiger/obtutils/internal/schema"
)

// PetitionAll asks for every statement kind.
const PetitionAll = "all"

// UnknownPetition is the text emitted for a statement keyword that is not
// select, insert, update, delete or all.
func UnknownPetition(petition string) string {
	return "UNKNOWN SQL CODE GENERATION PETITION: " + petition
}

// ValidPetition reports whether petition names a statement kind or "all".
func ValidPetition(petition string) bool {
	if strings.EqualFold(strings.TrimSpace(petition), PetitionAll) {
		return true
	}
	_, ok := dialect.ParseKind(petition)
	return ok
}

type Generator struct {
	introspector schema.Introspector
	template     *dialect.Template
}

// New picks the dialect from the provider identifier.
func New(provider string, in schema.Introspector, opts dialect.Options) *Generator {
	return NewForDialect(dialect.SelectDialect(provider), in, opts)
}

func NewForDialect(d dialect.Dialect, in schema.Introspector, opts dialect.Options) *Generator {
	return &Generator{
		introspector: in,
		template:     dialect.New(d, opts),
	}
}

func (g *Generator) Dialect() dialect.Dialect { return g.template.Dialect() }

func (g *Generator) Template() *dialect.Template { return g.template }

// Describe introspects table. Errors are *schema.IntrospectionError.
func (g *Generator) Describe(ctx context.Context, table string) (schema.Table, error) {
	if g.introspector == nil {
		return schema.Table{}, &schema.IntrospectionError{Table: table, Err: fmt.Errorf("no introspector configured")}
	}
	return schema.Describe(ctx, g.introspector, table)
}

func (g *Generator) Generate(ctx context.Context, kind dialect.Kind, table string) (string, error) {
	t, err := g.Describe(ctx, table)
	if err != nil {
		return "", err
	}
	return g.template.Generate(kind, t), nil
}

// GenerateAll introspects once and renders the four statements.
func (g *Generator) GenerateAll(ctx context.Context, table string) (string, error) {
	t, err := g.Describe(ctx, table)
	if err != nil {
		return "", err
	}
	return g.template.GenerateAll(t), nil
}

// Petition handles a statement keyword as typed on the command line.
// Unknown keywords are answered with UnknownPetition and never touch
// the database.
func (g *Generator) Petition(ctx context.Context, petition, table string) (string, error) {
	out, _, err := g.PetitionTable(ctx, petition, table)
	return out, err
}

// PetitionTable is Petition that also returns the introspected table, so
// callers can reuse it without a second round trip. The table is empty
// for unknown petitions.
func (g *Generator) PetitionTable(ctx context.Context, petition, table string) (string, schema.Table, error) {
	if !ValidPetition(petition) {
		return UnknownPetition(petition), schema.Table{}, nil
	}
	t, err := g.Describe(ctx, table)
	if err != nil {
		return "", schema.Table{}, err
	}
	return g.Render(petition, t), t, nil
}

// Render answers a petition for an already introspected table.
func (g *Generator) Render(petition string, t schema.Table) string {
	if strings.EqualFold(strings.TrimSpace(petition), PetitionAll) {
		return g.template.GenerateAll(t)
	}
	kind, ok := dialect.ParseKind(petition)
	if !ok {
		return UnknownPetition(petition)
	}
	return g.template.Generate(kind, t)
}

// Kinds returns the statement kinds a valid petition expands to.
func Kinds(petition string) []dialect.Kind {
	if strings.EqualFold(strings.TrimSpace(petition), PetitionAll) {
		return dialect.Kinds()
	}
	if kind, ok := dialect.ParseKind(petition); ok {
		return []dialect.Kind{kind}
	}
	return nil
}
