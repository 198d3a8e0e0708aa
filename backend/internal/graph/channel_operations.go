package graph

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperr "graphchat/backend/pkg/errors"
)

// ============================================================================
// Channel Operations
// ============================================================================

// ListChannels returns channels matching the given filters.
func (r *Repository) ListChannels(ctx context.Context, f ChannelFilter) ([]NodeRef, error) {
	q := newQuery().
		Match("(c:Channel)").
		MatchIf(f.ByCalls, "(c)-[:HAS_CALLS]->(:Call)")
	if f.User != "" {
		q.Match("(c)<-[:IS_IN]-(:User {id: $user})").Bind("user", f.User)
	}
	q.Return("c")

	query, params := q.Build()
	records, err := r.read(ctx, query, params)
	if err != nil {
		return nil, err
	}

	channels := make([]NodeRef, 0, len(records))
	for _, record := range records {
		if props, ok := nodeProps(record, "c"); ok {
			channels = append(channels, refFromProps(props))
		}
	}
	return channels, nil
}

// GetChannel returns a channel with its member list.
func (r *Repository) GetChannel(ctx context.Context, id string) (*ChannelDetail, error) {
	query := `
		MATCH (c:Channel {id: $id})
		OPTIONAL MATCH (c)<-[:IS_IN]-(u:User)
		RETURN c AS channel,
		       [x IN collect(DISTINCT u) | {id: x.id, name: x.name}] AS users
	`
	records, err := r.read(ctx, query, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, apperr.NewNotFound("Channel", id)
	}

	record := records[0]
	props, ok := nodeProps(record, "channel")
	if !ok {
		return nil, apperr.NewNotFound("Channel", id)
	}

	detail := &ChannelDetail{
		ID:    propString(props, "id"),
		Name:  propString(props, "name"),
		Users: []NodeRef{},
	}
	if users, ok := record.Get("users"); ok {
		detail.Users = refsFromValue(users)
	}
	return detail, nil
}

// CreateChannel creates a channel node with a generated id.
func (r *Repository) CreateChannel(ctx context.Context, name string) (*WriteSummary, error) {
	summary, err := r.write(ctx, "CREATE (c:Channel {id: $id, name: $name})", map[string]any{
		"id":   uuid.NewString(),
		"name": name,
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("Channel created", zap.String("name", name))
	return summary, nil
}

// RenameChannel sets the channel name.
func (r *Repository) RenameChannel(ctx context.Context, id, name string) (*WriteSummary, error) {
	query := "MATCH (c:Channel {id: $id}) SET c.name = $name"
	return r.write(ctx, query, map[string]any{"id": id, "name": name})
}

// DeleteChannel detach-deletes the channel node.
func (r *Repository) DeleteChannel(ctx context.Context, id string) (*WriteSummary, error) {
	return r.write(ctx, "MATCH (c:Channel {id: $id}) DETACH DELETE c", map[string]any{"id": id})
}

// AddChannelMembers creates IS_IN edges for each given user in one batched
// parameterized write.
func (r *Repository) AddChannelMembers(ctx context.Context, id string, users []string) (*WriteSummary, error) {
	query := `
		MATCH (c:Channel {id: $id})
		UNWIND $users AS userId
		MATCH (u:User {id: userId})
		CREATE (u)-[:IS_IN]->(c)
	`
	return r.write(ctx, query, map[string]any{"id": id, "users": users})
}

// RemoveChannelMember deletes the IS_IN edge between user and channel.
func (r *Repository) RemoveChannelMember(ctx context.Context, channel, user string) (*WriteSummary, error) {
	query := "MATCH (:Channel {id: $channel})<-[rel:IS_IN]-(:User {id: $user}) DELETE rel"
	return r.write(ctx, query, map[string]any{"channel": channel, "user": user})
}
