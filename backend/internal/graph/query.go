package graph

import "strings"

// queryBuilder assembles one parameterized Cypher statement from optional
// fragments. Absent filters contribute nothing; every value travels as a
// bound parameter, never interpolated into the query text.
type queryBuilder struct {
	matches  []string
	optional []string
	sets     []string
	tail     []string
	returns  string
	params   map[string]any
}

func newQuery() *queryBuilder {
	return &queryBuilder{params: map[string]any{}}
}

// Match appends a pattern to the MATCH clause.
func (q *queryBuilder) Match(pattern string) *queryBuilder {
	q.matches = append(q.matches, pattern)
	return q
}

// MatchIf appends a pattern only when ok is true.
func (q *queryBuilder) MatchIf(ok bool, pattern string) *queryBuilder {
	if ok {
		q.matches = append(q.matches, pattern)
	}
	return q
}

// OptionalMatch appends an OPTIONAL MATCH clause.
func (q *queryBuilder) OptionalMatch(pattern string) *queryBuilder {
	q.optional = append(q.optional, pattern)
	return q
}

// Set appends a SET fragment.
func (q *queryBuilder) Set(fragment string) *queryBuilder {
	q.sets = append(q.sets, fragment)
	return q
}

// SetIf appends a SET fragment only when ok is true.
func (q *queryBuilder) SetIf(ok bool, fragment string) *queryBuilder {
	if ok {
		q.sets = append(q.sets, fragment)
	}
	return q
}

// Tail appends a raw trailing clause (WITH, UNWIND, CREATE, DELETE...).
func (q *queryBuilder) Tail(clause string) *queryBuilder {
	q.tail = append(q.tail, clause)
	return q
}

// Return sets the RETURN clause.
func (q *queryBuilder) Return(clause string) *queryBuilder {
	q.returns = clause
	return q
}

// Bind attaches a parameter value.
func (q *queryBuilder) Bind(name string, value any) *queryBuilder {
	q.params[name] = value
	return q
}

// HasSets reports whether any SET fragment was added. Partial updates use
// it to skip the round trip entirely when no field was supplied.
func (q *queryBuilder) HasSets() bool {
	return len(q.sets) > 0
}

// Build joins the collected fragments into one statement plus its params.
func (q *queryBuilder) Build() (string, map[string]any) {
	var b strings.Builder
	if len(q.matches) > 0 {
		b.WriteString("MATCH ")
		b.WriteString(strings.Join(q.matches, ", "))
	}
	for _, o := range q.optional {
		b.WriteString("\nOPTIONAL MATCH ")
		b.WriteString(o)
	}
	if len(q.sets) > 0 {
		b.WriteString("\nSET ")
		b.WriteString(strings.Join(q.sets, ", "))
	}
	for _, t := range q.tail {
		b.WriteString("\n")
		b.WriteString(t)
	}
	if q.returns != "" {
		b.WriteString("\nRETURN ")
		b.WriteString(q.returns)
	}
	return b.String(), q.params
}
