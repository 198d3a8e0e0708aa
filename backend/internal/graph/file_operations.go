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
// File Operations
// ============================================================================
//
// File nodes carry only the on-disk path; the payload itself lives in the
// upload directory and is re-read on demand.

// CreateFile records an uploaded file in a channel the uploader belongs
// to, fanning out an unread notification to every other channel member.
func (r *Repository) CreateFile(ctx context.Context, user, channel, path, description string) (*WriteSummary, error) {
	query := `
		MATCH (u:User {id: $user})-[:IS_IN]->(ch:Channel {id: $channel})
		CREATE (u)-[:SEND]->(f:File {id: $id, name: $name, date: $date, description: $description, edited: false})<-[:HAS_FILES]-(ch),
		       (n:Notification {id: $notifId, text: $notif, date: $date})<-[:SEND]-(f)
		WITH f, n
		MATCH (f)<-[:HAS_FILES]-(:Channel)<-[:IS_IN]-(a:User)
		WHERE a.id <> $user
		CREATE (a)-[:HAS_NOTIFICATION {read: false}]->(n)
	`
	summary, err := r.write(ctx, query, map[string]any{
		"id":          uuid.NewString(),
		"name":        path,
		"date":        time.Now().UTC().Format(time.RFC3339),
		"user":        user,
		"channel":     channel,
		"description": description,
		"notifId":     uuid.NewString(),
		"notif":       fmt.Sprintf("New file in %s", channel),
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("File created",
		zap.String("user", user),
		zap.String("channel", channel),
		zap.String("path", path),
	)
	return summary, nil
}

// GetFile returns a file's metadata with its uploader and channel. The
// payload is loaded from disk by the caller using the returned Name.
func (r *Repository) GetFile(ctx context.Context, id string) (*FileView, error) {
	query := `
		MATCH (u:User)-[:SEND]->(f:File {id: $id})<-[:HAS_FILES]-(c:Channel)
		RETURN f, u, c
	`
	records, err := r.read(ctx, query, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, apperr.NewNotFound("File", id)
	}

	return mapFile(records[0]), nil
}

// ListFiles returns file metadata matching the given filters.
func (r *Repository) ListFiles(ctx context.Context, f FileFilter) ([]FileView, error) {
	q := newQuery()
	if f.Channel != "" {
		q.Match("(c:Channel {id: $channel})-[:HAS_FILES]->(f:File)").Bind("channel", f.Channel)
	} else {
		q.Match("(c:Channel)-[:HAS_FILES]->(f:File)")
	}
	if f.User != "" {
		q.Match("(f)<-[:SEND]-(u:User {id: $user})").Bind("user", f.User)
	} else {
		q.Match("(f)<-[:SEND]-(u:User)")
	}
	q.Return("f, u, c")

	query, params := q.Build()
	records, err := r.read(ctx, query, params)
	if err != nil {
		return nil, err
	}

	files := make([]FileView, 0, len(records))
	for _, record := range records {
		if view := mapFile(record); view != nil {
			files = append(files, *view)
		}
	}
	return files, nil
}

// UpdateFileDescription overwrites the description and marks the file edited.
func (r *Repository) UpdateFileDescription(ctx context.Context, id, description string) (*WriteSummary, error) {
	query := "MATCH (f:File {id: $id}) SET f.description = $description, f.edited = true"
	return r.write(ctx, query, map[string]any{"id": id, "description": description})
}

// DeleteFile resolves the stored path and detach-deletes the node in one
// transaction, returning the path so the caller can remove the disk
// artifact afterwards.
func (r *Repository) DeleteFile(ctx context.Context, id string) (string, *WriteSummary, error) {
	res, err := r.writeTx(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		lookup, err := tx.Run(ctx, "MATCH (f:File {id: $id}) RETURN f.name AS name", map[string]any{"id": id})
		if err != nil {
			return nil, apperr.NewGraphQueryFailed("file path lookup", err)
		}
		record, err := lookup.Single(ctx)
		if err != nil {
			return nil, apperr.NewNotFound("File", id)
		}
		path, _ := record.Get("name")

		summary, err := runAndConsume(ctx, tx, "MATCH (f:File {id: $id}) DETACH DELETE f", map[string]any{"id": id})
		if err != nil {
			return nil, err
		}
		return []any{path, summary}, nil
	})
	if err != nil {
		return "", nil, err
	}

	pair := res.([]any)
	path, _ := pair[0].(string)
	return path, pair[1].(*WriteSummary), nil
}

func mapFile(record *neo4j.Record) *FileView {
	props, ok := nodeProps(record, "f")
	if !ok {
		return nil
	}
	view := &FileView{
		ID:          propString(props, "id"),
		Name:        propString(props, "name"),
		Date:        propString(props, "date"),
		Description: propString(props, "description"),
		Edited:      propBool(props, "edited"),
	}
	if userProps, ok := nodeProps(record, "u"); ok {
		view.User = refFromProps(userProps)
	}
	if channelProps, ok := nodeProps(record, "c"); ok {
		view.Channel = refFromProps(channelProps)
	}
	return view
}
