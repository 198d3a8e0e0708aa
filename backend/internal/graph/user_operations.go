package graph

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	apperr "graphchat/backend/pkg/errors"
)

// ============================================================================
// User Operations
// ============================================================================

// ListUsers returns the summary view of users matching the given filters.
func (r *Repository) ListUsers(ctx context.Context, f UserFilter) ([]UserSummary, error) {
	q := newQuery().
		Match("(u:User)").
		MatchIf(f.ByCalls, "(u)-[:JOINED]->(:Call)").
		MatchIf(f.ByScreenshare, "(u)-[:STARTED]->(:Screenshare)")
	if f.Channel != "" {
		q.Match("(u)-[:IS_IN]->(:Channel {id: $channel})").Bind("channel", f.Channel)
	}
	q.Return("u")

	query, params := q.Build()
	records, err := r.read(ctx, query, params)
	if err != nil {
		return nil, err
	}

	users := make([]UserSummary, 0, len(records))
	for _, record := range records {
		props, ok := nodeProps(record, "u")
		if !ok {
			continue
		}
		users = append(users, UserSummary{
			ID:      propString(props, "id"),
			Name:    propString(props, "name"),
			Email:   propString(props, "email"),
			IsAdmin: propBool(props, "isAdmin"),
		})
	}
	return users, nil
}

// CreateUser creates a user node with a generated id and loggedIn=false.
// The duplicate-name check and the create run in one transaction.
func (r *Repository) CreateUser(ctx context.Context, name, password, email string, isAdmin bool) (*WriteSummary, error) {
	res, err := r.writeTx(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		existing, err := tx.Run(ctx, "MATCH (u:User {name: $name}) RETURN u", map[string]any{"name": name})
		if err != nil {
			return nil, apperr.NewGraphQueryFailed("user uniqueness check", err)
		}
		if existing.Next(ctx) {
			return nil, apperr.NewDuplicateName(name)
		}
		if err := existing.Err(); err != nil {
			return nil, apperr.NewGraphQueryFailed("user uniqueness check", err)
		}

		query := `
			CREATE (u:User {id: $id, name: $name, password: $password,
			                email: $email, isAdmin: $isAdmin, loggedIn: false})
		`
		return runAndConsume(ctx, tx, query, map[string]any{
			"id":       uuid.NewString(),
			"name":     name,
			"password": password,
			"email":    email,
			"isAdmin":  isAdmin,
		})
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("User created", zap.String("name", name))
	return res.(*WriteSummary), nil
}

// GetUser returns a user's profile with channel memberships and current
// call activity. The password is only exposed while the user is logged in.
func (r *Repository) GetUser(ctx context.Context, id string) (*UserProfile, error) {
	query := `
		MATCH (u:User {id: $id})
		OPTIONAL MATCH (u)-[:IS_IN]->(ch:Channel)
		OPTIONAL MATCH (u)-[:JOINED]->(c:Call)
		RETURN u AS user,
		       [x IN collect(DISTINCT ch) | {id: x.id, name: x.name}] AS channels,
		       head(collect(DISTINCT c)) AS call
	`
	records, err := r.read(ctx, query, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, apperr.NewNotFound("User", id)
	}

	record := records[0]
	props, ok := nodeProps(record, "user")
	if !ok {
		return nil, apperr.NewNotFound("User", id)
	}

	profile := &UserProfile{
		ID:       id,
		Name:     propString(props, "name"),
		Email:    propString(props, "email"),
		IsAdmin:  propBool(props, "isAdmin"),
		Channels: []NodeRef{},
		Activity: "No activity",
	}
	if propBool(props, "loggedIn") {
		profile.Password = propString(props, "password")
	}

	if channels, ok := record.Get("channels"); ok {
		profile.Channels = refsFromValue(channels)
	}
	if call, ok := nodeProps(record, "call"); ok {
		profile.Activity = fmt.Sprintf("In call %s, id: %s", propString(call, "name"), propString(call, "id"))
	}
	return profile, nil
}

// UpdateUser overwrites the supplied fields; empty fields are left untouched.
func (r *Repository) UpdateUser(ctx context.Context, id, name, email string) (*WriteSummary, error) {
	q := newQuery().
		Match("(u:User {id: $id})").Bind("id", id).
		SetIf(name != "", "u.name = $name").
		SetIf(email != "", "u.email = $email")
	if name != "" {
		q.Bind("name", name)
	}
	if email != "" {
		q.Bind("email", email)
	}
	if !q.HasSets() {
		return &WriteSummary{}, nil
	}

	query, params := q.Build()
	return r.write(ctx, query, params)
}

// DeleteUser detach-deletes the user node and all incident relationships.
func (r *Repository) DeleteUser(ctx context.Context, id string) (*WriteSummary, error) {
	return r.write(ctx, "MATCH (u:User {id: $id}) DETACH DELETE u", map[string]any{"id": id})
}
