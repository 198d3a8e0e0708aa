package server

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"graphchat/backend/internal/graph"
	"graphchat/backend/pkg/logger"
)

// Store is the graph-backed data access surface the handlers depend on.
// *graph.Repository implements it.
type Store interface {
	ListUsers(ctx context.Context, f graph.UserFilter) ([]graph.UserSummary, error)
	CreateUser(ctx context.Context, name, password, email string, isAdmin bool) (*graph.WriteSummary, error)
	GetUser(ctx context.Context, id string) (*graph.UserProfile, error)
	UpdateUser(ctx context.Context, id, name, email string) (*graph.WriteSummary, error)
	DeleteUser(ctx context.Context, id string) (*graph.WriteSummary, error)

	Login(ctx context.Context, login, password string) error
	Logout(ctx context.Context, login string) error
	ResetPassword(ctx context.Context, login, email, password string) error

	ListChannels(ctx context.Context, f graph.ChannelFilter) ([]graph.NodeRef, error)
	GetChannel(ctx context.Context, id string) (*graph.ChannelDetail, error)
	CreateChannel(ctx context.Context, name string) (*graph.WriteSummary, error)
	RenameChannel(ctx context.Context, id, name string) (*graph.WriteSummary, error)
	DeleteChannel(ctx context.Context, id string) (*graph.WriteSummary, error)
	AddChannelMembers(ctx context.Context, id string, users []string) (*graph.WriteSummary, error)
	RemoveChannelMember(ctx context.Context, channel, user string) (*graph.WriteSummary, error)

	CreateMessage(ctx context.Context, text, user, channel string) (*graph.WriteSummary, error)
	GetMessage(ctx context.Context, id string) (*graph.MessageView, error)
	ListMessages(ctx context.Context, f graph.MessageFilter) ([]graph.MessageView, error)
	UpdateMessageText(ctx context.Context, id, text string) (*graph.WriteSummary, error)
	DeleteMessage(ctx context.Context, id string) (*graph.WriteSummary, error)

	CreateCall(ctx context.Context, user, channel, name string) (*graph.WriteSummary, error)
	GetCall(ctx context.Context, id string) (*graph.CallView, error)
	ListCalls(ctx context.Context, f graph.CallFilter) ([]graph.CallView, error)
	RenameCall(ctx context.Context, id, name string) (*graph.WriteSummary, error)
	DeleteCall(ctx context.Context, id string) (*graph.WriteSummary, error)
	JoinCall(ctx context.Context, id, user string) (*graph.WriteSummary, error)
	LeaveCall(ctx context.Context, call, user string) (*graph.WriteSummary, error)

	CreateScreenshare(ctx context.Context, user, call, name string) (*graph.WriteSummary, error)
	GetScreenshare(ctx context.Context, id string) (*graph.ScreenshareView, error)
	ListScreenshares(ctx context.Context, f graph.ScreenshareFilter) ([]graph.ScreenshareView, error)
	RenameScreenshare(ctx context.Context, id, name string) (*graph.WriteSummary, error)
	DeleteScreenshare(ctx context.Context, id string) (*graph.WriteSummary, error)

	CreateFile(ctx context.Context, user, channel, path, description string) (*graph.WriteSummary, error)
	GetFile(ctx context.Context, id string) (*graph.FileView, error)
	ListFiles(ctx context.Context, f graph.FileFilter) ([]graph.FileView, error)
	UpdateFileDescription(ctx context.Context, id, description string) (*graph.WriteSummary, error)
	DeleteFile(ctx context.Context, id string) (string, *graph.WriteSummary, error)

	ListNotifications(ctx context.Context, user string) ([]graph.NotificationView, error)
	MarkNotificationsRead(ctx context.Context, user, notification string) (*graph.WriteSummary, error)
	DeleteNotification(ctx context.Context, id string) (*graph.WriteSummary, error)
}

// FileStore is the disk-side storage the file handlers depend on.
// *storage.Disk implements it.
type FileStore interface {
	Save(name string, src io.Reader) (string, error)
	Load(path string) ([]byte, error)
	Remove(path string) error
}

// Server wires the resource handlers to the store.
type Server struct {
	store  Store
	files  FileStore
	logger *zap.Logger
}

// New creates a server over the given store and file storage.
func New(store Store, files FileStore) *Server {
	return &Server{
		store:  store,
		files:  files,
		logger: logger.Get(),
	}
}

// Register mounts all resource routes on the router.
func (s *Server) Register(r *gin.Engine) {
	r.GET("/users", s.listUsers)
	r.POST("/users", s.createUser)
	r.GET("/users/:id", s.getUser)
	r.PUT("/users/:id", s.updateUser)
	r.DELETE("/users/:id", s.deleteUser)

	r.POST("/auth/login", s.login)
	r.POST("/auth/logout", s.logout)
	r.POST("/auth/password/reset", s.resetPassword)

	r.GET("/channels", s.listChannels)
	r.POST("/channels", s.createChannel)
	r.GET("/channels/:id", s.getChannel)
	r.PUT("/channels/:id", s.updateChannel)
	r.DELETE("/channels/:id", s.deleteChannel)
	r.POST("/channels/:id/users", s.addChannelMembers)
	r.DELETE("/channels/:id/users/:user", s.removeChannelMember)

	r.GET("/messages", s.listMessages)
	r.POST("/messages", s.createMessage)
	r.GET("/messages/:id", s.getMessage)
	r.PUT("/messages/:id", s.updateMessage)
	r.DELETE("/messages/:id", s.deleteMessage)

	r.GET("/calls", s.listCalls)
	r.POST("/calls", s.createCall)
	r.GET("/calls/:id", s.getCall)
	r.PUT("/calls/:id", s.updateCall)
	r.DELETE("/calls/:id", s.deleteCall)
	r.POST("/calls/:id/users", s.joinCall)
	r.DELETE("/calls/:id/users/:user", s.leaveCall)

	r.GET("/screenshares", s.listScreenshares)
	r.POST("/screenshares", s.createScreenshare)
	r.GET("/screenshares/:id", s.getScreenshare)
	r.PUT("/screenshares/:id", s.updateScreenshare)
	r.DELETE("/screenshares/:id", s.deleteScreenshare)

	r.GET("/files", s.listFiles)
	r.POST("/files", s.createFile)
	r.GET("/files/:id", s.getFile)
	r.PUT("/files/:id", s.updateFile)
	r.DELETE("/files/:id", s.deleteFile)

	// Both routes share the :id name to satisfy gin's router; for PUT the
	// path parameter is the recipient user's id.
	r.GET("/notifications", s.listNotifications)
	r.PUT("/notifications/:id", s.markNotificationsRead)
	r.DELETE("/notifications/:id", s.deleteNotification)
}
