package graph

import "time"

// NodeRef is the minimal id+name view of a related node.
type NodeRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UserSummary is the list view of a user. Password is never part of it.
type UserSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin,omitempty"`
}

// UserProfile is the detail view of a user, including memberships and
// current call activity. Password is only populated while the user is
// logged in.
type UserProfile struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	IsAdmin  bool      `json:"isAdmin,omitempty"`
	Password string    `json:"password,omitempty"`
	Channels []NodeRef `json:"channels"`
	Activity string    `json:"activity"`
}

// ChannelDetail is the detail view of a channel with its members.
type ChannelDetail struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Users []NodeRef `json:"users"`
}

// MessageView is the denormalized view of a message. User is nil when the
// author node was deleted after the message was sent.
type MessageView struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Date    string   `json:"date"`
	Edited  bool     `json:"edited"`
	User    *NodeRef `json:"user"`
	Channel NodeRef  `json:"channel"`
}

// CallView is the denormalized view of a call. Users is filled on
// get-by-id only.
type CallView struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Date    string    `json:"date"`
	Channel NodeRef   `json:"channel"`
	Users   []NodeRef `json:"users,omitempty"`
}

// ScreenshareView is the denormalized view of a screenshare. Channel is
// filled on list, User on get-by-id.
type ScreenshareView struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Date    string   `json:"date"`
	Call    NodeRef  `json:"call"`
	Channel *NodeRef `json:"channel,omitempty"`
	User    *NodeRef `json:"user,omitempty"`
}

// FileView is the denormalized view of an uploaded file. Name is the
// storage path on disk; File carries the base64 data URL and is filled on
// get-by-id only.
type FileView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Edited      bool    `json:"edited"`
	User        NodeRef `json:"user"`
	Channel     NodeRef `json:"channel"`
	File        string  `json:"file,omitempty"`
}

// NotificationView is one notification as seen by one recipient; Read
// comes off that recipient's HAS_NOTIFICATION edge.
type NotificationView struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Text string `json:"text"`
	Read bool   `json:"read"`
}

// WriteSummary reports the store's update counters for a write operation.
type WriteSummary struct {
	NodesCreated         int
	NodesDeleted         int
	RelationshipsCreated int
	RelationshipsDeleted int
	PropertiesSet        int
	AvailableAfter       time.Duration
}

// List filters. A zero value means the filter is absent and contributes no
// query clause.

type UserFilter struct {
	ByCalls       bool
	Channel       string
	ByScreenshare bool
}

type ChannelFilter struct {
	ByCalls bool
	User    string
}

type MessageFilter struct {
	User    string
	Channel string
}

type CallFilter struct {
	User          string
	Channel       string
	ByScreenshare bool
}

type ScreenshareFilter struct {
	User    string
	Call    string
	Channel string
}

type FileFilter struct {
	User    string
	Channel string
}
