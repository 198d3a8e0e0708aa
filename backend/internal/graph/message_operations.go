package graph

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	apperr "graphchat/backend/pkg/errors"
)

// ============================================================================
// Message Operations
// ============================================================================

// CreateMessage creates a message in a channel the author belongs to, plus
// one notification fanned out to every other channel member, in one write.
func (r *Repository) CreateMessage(ctx context.Context, text, user, channel string) (*WriteSummary, error) {
	query := `
		MATCH (u:User {id: $user})-[:IS_IN]->(c:Channel {id: $channel})
		CREATE (u)-[:SEND]->(m:Message {id: $messageId, text: $text, date: $date, edited: false})<-[:HAS_MESSAGE]-(c),
		       (n:Notification {id: $notifId, text: $notif, date: $date})<-[:SEND]-(m)
		WITH m, n
		MATCH (m)<-[:HAS_MESSAGE]-(:Channel)<-[:IS_IN]-(a:User)
		WHERE a.id <> $user
		CREATE (a)-[:HAS_NOTIFICATION {read: false}]->(n)
	`
	summary, err := r.write(ctx, query, map[string]any{
		"messageId": uuid.NewString(),
		"text":      text,
		"date":      time.Now().UTC().Format(time.RFC3339),
		"user":      user,
		"channel":   channel,
		"notifId":   uuid.NewString(),
		"notif":     fmt.Sprintf("New message in channel %s", channel),
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("Message created",
		zap.String("user", user),
		zap.String("channel", channel),
	)
	return summary, nil
}

// GetMessage returns a message with its channel and author. A deleted
// author maps to a nil user.
func (r *Repository) GetMessage(ctx context.Context, id string) (*MessageView, error) {
	query := `
		MATCH (m:Message {id: $id})
		MATCH (c:Channel)-[:HAS_MESSAGE]->(m)
		OPTIONAL MATCH (m)<-[:SEND]-(u:User)
		RETURN m, u, c
	`
	records, err := r.read(ctx, query, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, apperr.NewNotFound("Message", id)
	}

	return mapMessage(records[0]), nil
}

// ListMessages returns messages matching the given filters, denormalized
// with author and channel.
func (r *Repository) ListMessages(ctx context.Context, f MessageFilter) ([]MessageView, error) {
	q := newQuery()
	if f.User != "" {
		q.Match("(u:User {id: $user})-[:SEND]->(m:Message)").Bind("user", f.User)
	} else {
		q.Match("(u:User)-[:SEND]->(m:Message)")
	}
	if f.Channel != "" {
		q.Match("(m)<-[:HAS_MESSAGE]-(c:Channel {id: $channel})").Bind("channel", f.Channel)
	} else {
		q.Match("(m)<-[:HAS_MESSAGE]-(c:Channel)")
	}
	q.Return("m, u, c")

	query, params := q.Build()
	records, err := r.read(ctx, query, params)
	if err != nil {
		return nil, err
	}

	messages := make([]MessageView, 0, len(records))
	for _, record := range records {
		if view := mapMessage(record); view != nil {
			messages = append(messages, *view)
		}
	}
	return messages, nil
}

// UpdateMessageText overwrites the text and marks the message edited.
func (r *Repository) UpdateMessageText(ctx context.Context, id, text string) (*WriteSummary, error) {
	query := "MATCH (m:Message {id: $id}) SET m.text = $text, m.edited = true"
	return r.write(ctx, query, map[string]any{"id": id, "text": text})
}

// DeleteMessage detach-deletes the message node.
func (r *Repository) DeleteMessage(ctx context.Context, id string) (*WriteSummary, error) {
	return r.write(ctx, "MATCH (m:Message {id: $id}) DETACH DELETE m", map[string]any{"id": id})
}

func mapMessage(record *neo4j.Record) *MessageView {
	props, ok := nodeProps(record, "m")
	if !ok {
		return nil
	}
	view := &MessageView{
		ID:     propString(props, "id"),
		Text:   propString(props, "text"),
		Date:   propString(props, "date"),
		Edited: propBool(props, "edited"),
	}
	if userProps, ok := nodeProps(record, "u"); ok {
		ref := refFromProps(userProps)
		view.User = &ref
	}
	if channelProps, ok := nodeProps(record, "c"); ok {
		view.Channel = refFromProps(channelProps)
	}
	return view
}
