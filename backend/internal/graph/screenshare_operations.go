package graph

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperr "graphchat/backend/pkg/errors"
)

// ============================================================================
// Screenshare Operations
// ============================================================================

// CreateScreenshare starts a screenshare in a call reachable through one of
// the user's channels. No notification is fanned out.
func (r *Repository) CreateScreenshare(ctx context.Context, user, call, name string) (*WriteSummary, error) {
	query := `
		MATCH (u:User {id: $user})-[:IS_IN]->(:Channel)-[:HAS_CALLS]->(c:Call {id: $call})
		CREATE (u)-[:STARTED]->(s:Screenshare {id: $id, date: $date, name: $name})<-[:HAS_SCREENSHARE]-(c)
	`
	summary, err := r.write(ctx, query, map[string]any{
		"id":   uuid.NewString(),
		"date": time.Now().UTC().Format(time.RFC3339),
		"user": user,
		"call": call,
		"name": name,
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("Screenshare created",
		zap.String("user", user),
		zap.String("call", call),
	)
	return summary, nil
}

// GetScreenshare returns a screenshare with its owner and call.
func (r *Repository) GetScreenshare(ctx context.Context, id string) (*ScreenshareView, error) {
	query := `
		MATCH (u:User)-[:STARTED]->(s:Screenshare {id: $id})<-[:HAS_SCREENSHARE]-(c:Call)
		RETURN s, u, c
	`
	records, err := r.read(ctx, query, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, apperr.NewNotFound("Screenshare", id)
	}

	record := records[0]
	props, ok := nodeProps(record, "s")
	if !ok {
		return nil, apperr.NewNotFound("Screenshare", id)
	}

	view := &ScreenshareView{
		ID:   propString(props, "id"),
		Name: propString(props, "name"),
		Date: propString(props, "date"),
	}
	if callProps, ok := nodeProps(record, "c"); ok {
		view.Call = refFromProps(callProps)
	}
	if userProps, ok := nodeProps(record, "u"); ok {
		ref := refFromProps(userProps)
		view.User = &ref
	}
	return view, nil
}

// ListScreenshares returns screenshares matching the given filters, with
// their call and channel.
func (r *Repository) ListScreenshares(ctx context.Context, f ScreenshareFilter) ([]ScreenshareView, error) {
	q := newQuery()
	if f.User != "" {
		q.Match("(:User {id: $user})-[:STARTED]->(s:Screenshare)").Bind("user", f.User)
	} else {
		q.Match("(:User)-[:STARTED]->(s:Screenshare)")
	}
	if f.Call != "" {
		q.Match("(s)<-[:HAS_SCREENSHARE]-(c:Call {id: $call})").Bind("call", f.Call)
	} else {
		q.Match("(s)<-[:HAS_SCREENSHARE]-(c:Call)")
	}
	if f.Channel != "" {
		q.Match("(c)<-[:HAS_CALLS]-(ch:Channel {id: $channel})").Bind("channel", f.Channel)
	} else {
		q.Match("(c)<-[:HAS_CALLS]-(ch:Channel)")
	}
	q.Return("s, c, ch")

	query, params := q.Build()
	records, err := r.read(ctx, query, params)
	if err != nil {
		return nil, err
	}

	shares := make([]ScreenshareView, 0, len(records))
	for _, record := range records {
		props, ok := nodeProps(record, "s")
		if !ok {
			continue
		}
		view := ScreenshareView{
			ID:   propString(props, "id"),
			Name: propString(props, "name"),
			Date: propString(props, "date"),
		}
		if callProps, ok := nodeProps(record, "c"); ok {
			view.Call = refFromProps(callProps)
		}
		if channelProps, ok := nodeProps(record, "ch"); ok {
			ref := refFromProps(channelProps)
			view.Channel = &ref
		}
		shares = append(shares, view)
	}
	return shares, nil
}

// RenameScreenshare sets the screenshare name.
func (r *Repository) RenameScreenshare(ctx context.Context, id, name string) (*WriteSummary, error) {
	query := "MATCH (s:Screenshare {id: $id}) SET s.name = $name"
	return r.write(ctx, query, map[string]any{"id": id, "name": name})
}

// DeleteScreenshare detach-deletes the screenshare node.
func (r *Repository) DeleteScreenshare(ctx context.Context, id string) (*WriteSummary, error) {
	return r.write(ctx, "MATCH (s:Screenshare {id: $id}) DETACH DELETE s", map[string]any{"id": id})
}
