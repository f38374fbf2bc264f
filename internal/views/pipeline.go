package views

import (
	"fmt"
	"strings"
)

// frag is a SQL fragment paired with the arguments its placeholders consume.
// Placeholders are written as '?' and renumbered to $1..$n when the pipeline
// is built, so stages can be appended in any order without tracking ordinals.
type frag struct {
	sql  string
	args []any
}

// pipeline assembles a composed-view query as an ordered set of stages:
// match (filter), leftJoin (attach related rows), deriveCount (computed
// counts), project (column allow-list), sort, and paginate. Each view in
// this package is one pipeline; shared join and count logic lives here so it
// is not re-derived per entity.
type pipeline struct {
	from    string
	columns []frag
	joins   []frag
	conds   []frag
	orderBy []string
	limit   int
	offset  int
}

func newPipeline(from string) *pipeline {
	return &pipeline{from: from, limit: -1, offset: -1}
}

// project appends plain output columns.
func (p *pipeline) project(cols ...string) *pipeline {
	for _, col := range cols {
		p.columns = append(p.columns, frag{sql: col})
	}
	return p
}

// derive appends a computed output column, typically a correlated count
// subquery. A count over an empty related set yields 0, never an error.
func (p *pipeline) derive(expr, alias string, args ...any) *pipeline {
	p.columns = append(p.columns, frag{sql: fmt.Sprintf("(%s) AS %s", expr, alias), args: args})
	return p
}

// leftJoin attaches a related table. Left semantics are deliberate: a parent
// row must survive the join even when no related row exists.
func (p *pipeline) leftJoin(clause string, args ...any) *pipeline {
	p.joins = append(p.joins, frag{sql: "LEFT JOIN " + clause, args: args})
	return p
}

// join attaches a related table with inner semantics. Rows without a match
// are dropped, which the watch history view relies on to skip entries whose
// video no longer exists.
func (p *pipeline) join(clause string, args ...any) *pipeline {
	p.joins = append(p.joins, frag{sql: "JOIN " + clause, args: args})
	return p
}

// match appends a filter predicate. Multiple predicates are ANDed.
func (p *pipeline) match(cond string, args ...any) *pipeline {
	p.conds = append(p.conds, frag{sql: cond, args: args})
	return p
}

// sort appends an ORDER BY term. Callers are responsible for passing only
// vetted column names.
func (p *pipeline) sort(column string, descending bool) *pipeline {
	dir := "ASC"
	if descending {
		dir = "DESC"
	}
	p.orderBy = append(p.orderBy, column+" "+dir)
	return p
}

// paginate applies skip = (page-1)*limit then limit.
func (p *pipeline) paginate(page, limit int) *pipeline {
	p.limit = limit
	p.offset = (page - 1) * limit
	return p
}

// build renders the pipeline to SQL with positional $n placeholders and the
// matching argument slice.
func (p *pipeline) build() (string, []any) {
	var sb strings.Builder
	var args []any

	appendFrag := func(f frag) string {
		sql := f.sql
		for _, arg := range f.args {
			args = append(args, arg)
			sql = strings.Replace(sql, "?", fmt.Sprintf("$%d", len(args)), 1)
		}
		return sql
	}

	sb.WriteString("SELECT ")
	for i, col := range p.columns {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(appendFrag(col))
	}

	sb.WriteString(" FROM ")
	sb.WriteString(p.from)

	for _, join := range p.joins {
		sb.WriteString(" ")
		sb.WriteString(appendFrag(join))
	}

	for i, cond := range p.conds {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		sb.WriteString(appendFrag(cond))
	}

	if len(p.orderBy) > 0 {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(p.orderBy, ", "))
	}

	if p.limit >= 0 {
		args = append(args, p.limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}
	if p.offset > 0 {
		args = append(args, p.offset)
		fmt.Fprintf(&sb, " OFFSET $%d", len(args))
	}

	return sb.String(), args
}
