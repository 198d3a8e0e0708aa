package graph

import (
	"context"
)

// ============================================================================
// Notification Operations
// ============================================================================

// ListNotifications returns notifications with per-recipient read state.
// When user is empty, the currently logged-in user's notifications are
// returned instead.
func (r *Repository) ListNotifications(ctx context.Context, user string) ([]NotificationView, error) {
	q := newQuery()
	if user != "" {
		q.Match("(:User {id: $user})-[rel:HAS_NOTIFICATION]->(n:Notification)").Bind("user", user)
	} else {
		q.Match("(:User {loggedIn: true})-[rel:HAS_NOTIFICATION]->(n:Notification)")
	}
	q.Return("n, rel.read AS read")

	query, params := q.Build()
	records, err := r.read(ctx, query, params)
	if err != nil {
		return nil, err
	}

	notifications := make([]NotificationView, 0, len(records))
	for _, record := range records {
		props, ok := nodeProps(record, "n")
		if !ok {
			continue
		}
		view := NotificationView{
			ID:   propString(props, "id"),
			Date: propString(props, "date"),
			Text: propString(props, "text"),
		}
		if read, ok := record.Get("read"); ok {
			view.Read, _ = read.(bool)
		}
		notifications = append(notifications, view)
	}
	return notifications, nil
}

// MarkNotificationsRead sets read=true on one HAS_NOTIFICATION edge when a
// notification id is given, or on all of the user's edges otherwise.
func (r *Repository) MarkNotificationsRead(ctx context.Context, user, notification string) (*WriteSummary, error) {
	q := newQuery().Bind("user", user)
	if notification != "" {
		q.Match("(:User {id: $user})-[rel:HAS_NOTIFICATION]->(:Notification {id: $notification})").
			Bind("notification", notification)
	} else {
		q.Match("(:User {id: $user})-[rel:HAS_NOTIFICATION]->(:Notification)")
	}
	q.Set("rel.read = true")

	query, params := q.Build()
	return r.write(ctx, query, params)
}

// DeleteNotification detach-deletes the notification node, dropping the
// read state of every recipient with it.
func (r *Repository) DeleteNotification(ctx context.Context, id string) (*WriteSummary, error) {
	return r.write(ctx, "MATCH (n:Notification {id: $id}) DETACH DELETE n", map[string]any{"id": id})
}
