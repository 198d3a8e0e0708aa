package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graphchat/backend/internal/graph"
	apperr "graphchat/backend/pkg/errors"
)

func TestListUsers_PassesFilters(t *testing.T) {
	var got graph.UserFilter
	store := &stubStore{
		listUsers: func(ctx context.Context, f graph.UserFilter) ([]graph.UserSummary, error) {
			got = f
			return []graph.UserSummary{{ID: "u1", Name: "alice"}}, nil
		},
	}
	router := newTestRouter(store, newStubFiles())

	env := doJSON(t, router, http.MethodGet, "/users?calls=true&channel=c1", nil)

	assert.Equal(t, "Success", env.Status)
	assert.True(t, got.ByCalls)
	assert.Equal(t, "c1", got.Channel)
	assert.False(t, got.ByScreenshare)

	result, ok := env.Result.(map[string]any)
	require.True(t, ok)
	users, ok := result["users"].([]any)
	require.True(t, ok)
	assert.Len(t, users, 1)
}

func TestCreateUser_ReportsCounters(t *testing.T) {
	store := &stubStore{
		createUser: func(ctx context.Context, name, password, email string, isAdmin bool) (*graph.WriteSummary, error) {
			assert.Equal(t, "alice", name)
			assert.True(t, isAdmin)
			return &graph.WriteSummary{NodesCreated: 1, AvailableAfter: 12 * time.Millisecond}, nil
		},
	}
	router := newTestRouter(store, newStubFiles())

	env := doJSON(t, router, http.MethodPost, "/users", map[string]any{
		"name": "alice", "password": "pw", "email": "alice@example.com", "isAdmin": true,
	})

	assert.Equal(t, "Success", env.Status)
	assert.Equal(t, "Created 1 nodes in 12 ms.", env.Result)
}

func TestCreateUser_DuplicateNameLandsInErrorField(t *testing.T) {
	store := &stubStore{
		createUser: func(ctx context.Context, name, password, email string, isAdmin bool) (*graph.WriteSummary, error) {
			return nil, apperr.NewDuplicateName(name)
		},
	}
	router := newTestRouter(store, newStubFiles())

	env := doJSON(t, router, http.MethodPost, "/users", map[string]any{
		"name": "alice", "password": "pw", "email": "alice@example.com",
	})

	assert.Equal(t, "Error", env.Status)
	assert.Equal(t, "name already exists: alice", env.Error)
	assert.Nil(t, env.Message)
}

func TestCreateUser_MissingFieldIsBadRequest(t *testing.T) {
	router := newTestRouter(&stubStore{}, newStubFiles())

	env := doJSON(t, router, http.MethodPost, "/users", map[string]any{"name": "alice"})

	assert.Equal(t, "Error", env.Status)
	assert.NotEmpty(t, env.Error)
}

func TestGetUser_NotFoundLandsInErrorField(t *testing.T) {
	store := &stubStore{
		getUser: func(ctx context.Context, id string) (*graph.UserProfile, error) {
			return nil, apperr.NewNotFound("User", id)
		},
	}
	router := newTestRouter(store, newStubFiles())

	env := doJSON(t, router, http.MethodGet, "/users/u-missing", nil)

	assert.Equal(t, "Error", env.Status)
	assert.Equal(t, "User not found: u-missing", env.Error)
}

func TestGetUser_StoreFailureLandsInMessageField(t *testing.T) {
	store := &stubStore{
		getUser: func(ctx context.Context, id string) (*graph.UserProfile, error) {
			return nil, apperr.NewGraphQueryFailed("MATCH (u:User)", assert.AnError)
		},
	}
	router := newTestRouter(store, newStubFiles())

	env := doJSON(t, router, http.MethodGet, "/users/u1", nil)

	assert.Equal(t, "Error", env.Status)
	assert.Empty(t, env.Error)
	assert.NotEmpty(t, env.Message)
}
