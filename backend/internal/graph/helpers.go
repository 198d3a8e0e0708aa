package graph

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Record mapping helpers. Raw query results arrive as nodes or property
// maps; these pull typed values out without failing on missing optional
// matches.

// nodeProps returns the property bag behind a record key. It tolerates
// both node values and map projections, and reports false for an absent
// or null optional match.
func nodeProps(record *neo4j.Record, key string) (map[string]any, bool) {
	val, ok := record.Get(key)
	if !ok || val == nil {
		return nil, false
	}
	switch v := val.(type) {
	case neo4j.Node:
		return v.Props, true
	case map[string]any:
		return v, true
	}
	return nil, false
}

func propString(props map[string]any, key string) string {
	if s, ok := props[key].(string); ok {
		return s
	}
	return ""
}

func propBool(props map[string]any, key string) bool {
	if b, ok := props[key].(bool); ok {
		return b
	}
	return false
}

// refFromProps maps a property bag to its id+name reference.
func refFromProps(props map[string]any) NodeRef {
	return NodeRef{
		ID:   propString(props, "id"),
		Name: propString(props, "name"),
	}
}

// refsFromValue maps a collected list of nodes or map projections to refs,
// dropping null entries left behind by an empty OPTIONAL MATCH.
func refsFromValue(val any) []NodeRef {
	list, ok := val.([]any)
	if !ok {
		return []NodeRef{}
	}
	refs := make([]NodeRef, 0, len(list))
	for _, item := range list {
		switch v := item.(type) {
		case neo4j.Node:
			refs = append(refs, refFromProps(v.Props))
		case map[string]any:
			if ref := refFromProps(v); ref.ID != "" {
				refs = append(refs, ref)
			}
		}
	}
	return refs
}

// summaryFrom maps the driver's result summary to the repository's counters.
func summaryFrom(s neo4j.ResultSummary) *WriteSummary {
	c := s.Counters()
	return &WriteSummary{
		NodesCreated:         c.NodesCreated(),
		NodesDeleted:         c.NodesDeleted(),
		RelationshipsCreated: c.RelationshipsCreated(),
		RelationshipsDeleted: c.RelationshipsDeleted(),
		PropertiesSet:        c.PropertiesSet(),
		AvailableAfter:       s.ResultAvailableAfter(),
	}
}
