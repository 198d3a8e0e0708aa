package graph

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperr "graphchat/backend/pkg/errors"
)

// ============================================================================
// Call Operations
// ============================================================================

// CreateCall starts a call in a channel the creator belongs to. The
// creator joins immediately and every other channel member gets an unread
// notification, all in one write.
func (r *Repository) CreateCall(ctx context.Context, user, channel, name string) (*WriteSummary, error) {
	query := `
		MATCH (u:User {id: $user})-[:IS_IN]->(ch:Channel {id: $channel})
		CREATE (u)-[:JOINED]->(c:Call {id: $id, date: $date, name: $name})<-[:HAS_CALLS]-(ch),
		       (n:Notification {id: $notifId, text: $notif, date: $date})<-[:SEND]-(c)
		WITH c, n
		MATCH (c)<-[:HAS_CALLS]-(:Channel)<-[:IS_IN]-(a:User)
		WHERE a.id <> $user
		CREATE (a)-[:HAS_NOTIFICATION {read: false}]->(n)
	`
	summary, err := r.write(ctx, query, map[string]any{
		"id":      uuid.NewString(),
		"date":    time.Now().UTC().Format(time.RFC3339),
		"user":    user,
		"channel": channel,
		"name":    name,
		"notifId": uuid.NewString(),
		"notif":   fmt.Sprintf("New call in channel %s", channel),
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("Call created",
		zap.String("user", user),
		zap.String("channel", channel),
		zap.String("name", name),
	)
	return summary, nil
}

// GetCall returns a call with its channel and distinct participants.
func (r *Repository) GetCall(ctx context.Context, id string) (*CallView, error) {
	query := `
		MATCH (c:Call {id: $id})<-[:HAS_CALLS]-(ch:Channel)
		OPTIONAL MATCH (u:User)-[:JOINED]->(c)
		RETURN c AS call, ch AS channel,
		       [x IN collect(DISTINCT u) | {id: x.id, name: x.name}] AS users
	`
	records, err := r.read(ctx, query, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, apperr.NewNotFound("Call", id)
	}

	record := records[0]
	props, ok := nodeProps(record, "call")
	if !ok {
		return nil, apperr.NewNotFound("Call", id)
	}

	view := &CallView{
		ID:    propString(props, "id"),
		Name:  propString(props, "name"),
		Date:  propString(props, "date"),
		Users: []NodeRef{},
	}
	if channelProps, ok := nodeProps(record, "channel"); ok {
		view.Channel = refFromProps(channelProps)
	}
	if users, ok := record.Get("users"); ok {
		view.Users = refsFromValue(users)
	}
	return view, nil
}

// ListCalls returns calls matching the given filters.
func (r *Repository) ListCalls(ctx context.Context, f CallFilter) ([]CallView, error) {
	q := newQuery()
	if f.Channel != "" {
		q.Match("(c:Call)<-[:HAS_CALLS]-(ch:Channel {id: $channel})").Bind("channel", f.Channel)
	} else {
		q.Match("(c:Call)<-[:HAS_CALLS]-(ch:Channel)")
	}
	if f.User != "" {
		q.Match("(c)<-[:JOINED]-(:User {id: $user})").Bind("user", f.User)
	}
	q.MatchIf(f.ByScreenshare, "(c)-[:HAS_SCREENSHARE]->(:Screenshare)")
	q.Return("c, ch")

	query, params := q.Build()
	records, err := r.read(ctx, query, params)
	if err != nil {
		return nil, err
	}

	calls := make([]CallView, 0, len(records))
	for _, record := range records {
		props, ok := nodeProps(record, "c")
		if !ok {
			continue
		}
		view := CallView{
			ID:   propString(props, "id"),
			Name: propString(props, "name"),
			Date: propString(props, "date"),
		}
		if channelProps, ok := nodeProps(record, "ch"); ok {
			view.Channel = refFromProps(channelProps)
		}
		calls = append(calls, view)
	}
	return calls, nil
}

// RenameCall sets the call name.
func (r *Repository) RenameCall(ctx context.Context, id, name string) (*WriteSummary, error) {
	query := "MATCH (c:Call {id: $id}) SET c.name = $name"
	return r.write(ctx, query, map[string]any{"id": id, "name": name})
}

// DeleteCall detach-deletes the call node.
func (r *Repository) DeleteCall(ctx context.Context, id string) (*WriteSummary, error) {
	return r.write(ctx, "MATCH (c:Call {id: $id}) DETACH DELETE c", map[string]any{"id": id})
}

// JoinCall creates a JOINED edge; the user must be a member of the channel
// owning the call.
func (r *Repository) JoinCall(ctx context.Context, id, user string) (*WriteSummary, error) {
	query := `
		MATCH (u:User {id: $user})-[:IS_IN]->(:Channel)-[:HAS_CALLS]->(c:Call {id: $id})
		CREATE (u)-[:JOINED]->(c)
	`
	return r.write(ctx, query, map[string]any{"id": id, "user": user})
}

// LeaveCall deletes the JOINED edge between user and call.
func (r *Repository) LeaveCall(ctx context.Context, call, user string) (*WriteSummary, error) {
	query := "MATCH (:Call {id: $call})<-[rel:JOINED]-(:User {id: $user}) DELETE rel"
	return r.write(ctx, query, map[string]any{"call": call, "user": user})
}
