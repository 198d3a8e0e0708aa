package graph

import (
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(keys []string, values []any) *neo4j.Record {
	return &neo4j.Record{Keys: keys, Values: values}
}

func TestNodeProps_Node(t *testing.T) {
	rec := record([]string{"u"}, []any{neo4j.Node{Props: map[string]any{"id": "u1", "name": "alice"}}})

	props, ok := nodeProps(rec, "u")
	require.True(t, ok)
	assert.Equal(t, "u1", propString(props, "id"))
	assert.Equal(t, "alice", propString(props, "name"))
}

func TestNodeProps_MapProjection(t *testing.T) {
	rec := record([]string{"call"}, []any{map[string]any{"id": "c1", "name": "standup"}})

	props, ok := nodeProps(rec, "call")
	require.True(t, ok)
	assert.Equal(t, "c1", propString(props, "id"))
}

func TestNodeProps_MissingOptionalMatch(t *testing.T) {
	rec := record([]string{"call"}, []any{nil})

	_, ok := nodeProps(rec, "call")
	assert.False(t, ok)

	_, ok = nodeProps(rec, "absent")
	assert.False(t, ok)
}

func TestPropDefaults(t *testing.T) {
	props := map[string]any{"edited": "not-a-bool"}

	assert.Equal(t, "", propString(props, "missing"))
	assert.False(t, propBool(props, "edited"))
	assert.False(t, propBool(props, "missing"))
}

func TestRefsFromValue_DropsNullEntries(t *testing.T) {
	refs := refsFromValue([]any{
		map[string]any{"id": "u1", "name": "alice"},
		map[string]any{"id": nil, "name": nil}, // empty OPTIONAL MATCH projection
		neo4j.Node{Props: map[string]any{"id": "u2", "name": "bob"}},
	})

	require.Len(t, refs, 2)
	assert.Equal(t, NodeRef{ID: "u1", Name: "alice"}, refs[0])
	assert.Equal(t, NodeRef{ID: "u2", Name: "bob"}, refs[1])
}

func TestRefsFromValue_NotAList(t *testing.T) {
	assert.Empty(t, refsFromValue("nope"))
	assert.Empty(t, refsFromValue(nil))
}

func TestMapMessage_DeletedAuthor(t *testing.T) {
	rec := record([]string{"m", "u", "c"}, []any{
		neo4j.Node{Props: map[string]any{"id": "m1", "text": "hi", "date": "2024-01-01T00:00:00Z", "edited": false}},
		nil,
		neo4j.Node{Props: map[string]any{"id": "c1", "name": "general"}},
	})

	view := mapMessage(rec)
	require.NotNil(t, view)
	assert.Equal(t, "m1", view.ID)
	assert.Nil(t, view.User)
	assert.Equal(t, NodeRef{ID: "c1", Name: "general"}, view.Channel)
}

func TestMapMessage_WithAuthor(t *testing.T) {
	rec := record([]string{"m", "u", "c"}, []any{
		neo4j.Node{Props: map[string]any{"id": "m1", "text": "hi", "date": "2024-01-01T00:00:00Z", "edited": true}},
		neo4j.Node{Props: map[string]any{"id": "u1", "name": "alice"}},
		neo4j.Node{Props: map[string]any{"id": "c1", "name": "general"}},
	})

	view := mapMessage(rec)
	require.NotNil(t, view)
	assert.True(t, view.Edited)
	require.NotNil(t, view.User)
	assert.Equal(t, "u1", view.User.ID)
}

func TestMapFile(t *testing.T) {
	rec := record([]string{"f", "u", "c"}, []any{
		neo4j.Node{Props: map[string]any{
			"id": "f1", "name": "files/1-cat.png", "date": "2024-01-01T00:00:00Z",
			"description": "a cat", "edited": false,
		}},
		neo4j.Node{Props: map[string]any{"id": "u1", "name": "alice"}},
		neo4j.Node{Props: map[string]any{"id": "c1", "name": "general"}},
	})

	view := mapFile(rec)
	require.NotNil(t, view)
	assert.Equal(t, "files/1-cat.png", view.Name)
	assert.Equal(t, "a cat", view.Description)
	assert.Empty(t, view.File) // payload is loaded from disk, never from the graph
}
