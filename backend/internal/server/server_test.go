package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"graphchat/backend/internal/graph"
)

// stubStore implements Store with overridable functions; unset operations
// return zero values.
type stubStore struct {
	listUsers  func(ctx context.Context, f graph.UserFilter) ([]graph.UserSummary, error)
	createUser func(ctx context.Context, name, password, email string, isAdmin bool) (*graph.WriteSummary, error)
	getUser    func(ctx context.Context, id string) (*graph.UserProfile, error)

	login         func(ctx context.Context, login, password string) error
	logout        func(ctx context.Context, login string) error
	resetPassword func(ctx context.Context, login, email, password string) error

	createMessage func(ctx context.Context, text, user, channel string) (*graph.WriteSummary, error)
	listMessages  func(ctx context.Context, f graph.MessageFilter) ([]graph.MessageView, error)
	getMessage    func(ctx context.Context, id string) (*graph.MessageView, error)

	listNotifications     func(ctx context.Context, user string) ([]graph.NotificationView, error)
	markNotificationsRead func(ctx context.Context, user, notification string) (*graph.WriteSummary, error)

	createFile func(ctx context.Context, user, channel, path, description string) (*graph.WriteSummary, error)
	deleteFile func(ctx context.Context, id string) (string, *graph.WriteSummary, error)
	getFile    func(ctx context.Context, id string) (*graph.FileView, error)
}

var emptySummary = &graph.WriteSummary{}

func (s *stubStore) ListUsers(ctx context.Context, f graph.UserFilter) ([]graph.UserSummary, error) {
	if s.listUsers != nil {
		return s.listUsers(ctx, f)
	}
	return nil, nil
}

func (s *stubStore) CreateUser(ctx context.Context, name, password, email string, isAdmin bool) (*graph.WriteSummary, error) {
	if s.createUser != nil {
		return s.createUser(ctx, name, password, email, isAdmin)
	}
	return emptySummary, nil
}

func (s *stubStore) GetUser(ctx context.Context, id string) (*graph.UserProfile, error) {
	if s.getUser != nil {
		return s.getUser(ctx, id)
	}
	return &graph.UserProfile{ID: id}, nil
}

func (s *stubStore) UpdateUser(ctx context.Context, id, name, email string) (*graph.WriteSummary, error) {
	return emptySummary, nil
}

func (s *stubStore) DeleteUser(ctx context.Context, id string) (*graph.WriteSummary, error) {
	return emptySummary, nil
}

func (s *stubStore) Login(ctx context.Context, login, password string) error {
	if s.login != nil {
		return s.login(ctx, login, password)
	}
	return nil
}

func (s *stubStore) Logout(ctx context.Context, login string) error {
	if s.logout != nil {
		return s.logout(ctx, login)
	}
	return nil
}

func (s *stubStore) ResetPassword(ctx context.Context, login, email, password string) error {
	if s.resetPassword != nil {
		return s.resetPassword(ctx, login, email, password)
	}
	return nil
}

func (s *stubStore) ListChannels(ctx context.Context, f graph.ChannelFilter) ([]graph.NodeRef, error) {
	return nil, nil
}

func (s *stubStore) GetChannel(ctx context.Context, id string) (*graph.ChannelDetail, error) {
	return &graph.ChannelDetail{ID: id}, nil
}

func (s *stubStore) CreateChannel(ctx context.Context, name string) (*graph.WriteSummary, error) {
	return emptySummary, nil
}

func (s *stubStore) RenameChannel(ctx context.Context, id, name string) (*graph.WriteSummary, error) {
	return emptySummary, nil
}

func (s *stubStore) DeleteChannel(ctx context.Context, id string) (*graph.WriteSummary, error) {
	return emptySummary, nil
}

func (s *stubStore) AddChannelMembers(ctx context.Context, id string, users []string) (*graph.WriteSummary, error) {
	return emptySummary, nil
}

func (s *stubStore) RemoveChannelMember(ctx context.Context, channel, user string) (*graph.WriteSummary, error) {
	return emptySummary, nil
}

func (s *stubStore) CreateMessage(ctx context.Context, text, user, channel string) (*graph.WriteSummary, error) {
	if s.createMessage != nil {
		return s.createMessage(ctx, text, user, channel)
	}
	return emptySummary, nil
}

func (s *stubStore) GetMessage(ctx context.Context, id string) (*graph.MessageView, error) {
	if s.getMessage != nil {
		return s.getMessage(ctx, id)
	}
	return &graph.MessageView{ID: id}, nil
}

func (s *stubStore) ListMessages(ctx context.Context, f graph.MessageFilter) ([]graph.MessageView, error) {
	if s.listMessages != nil {
		return s.listMessages(ctx, f)
	}
	return nil, nil
}

func (s *stubStore) UpdateMessageText(ctx context.Context, id, text string) (*graph.WriteSummary, error) {
	return emptySummary, nil
}

func (s *stubStore) DeleteMessage(ctx context.Context, id string) (*graph.WriteSummary, error) {
	return emptySummary, nil
}

func (s *stubStore) CreateCall(ctx context.Context, user, channel, name string) (*graph.WriteSummary, error) {
	return emptySummary, nil
}

func (s *stubStore) GetCall(ctx context.Context, id string) (*graph.CallView, error) {
	return &graph.CallView{ID: id}, nil
}

func (s *stubStore) ListCalls(ctx context.Context, f graph.CallFilter) ([]graph.CallView, error) {
	return nil, nil
}

func (s *stubStore) RenameCall(ctx context.Context, id, name string) (*graph.WriteSummary, error) {
	return emptySummary, nil
}

func (s *stubStore) DeleteCall(ctx context.Context, id string) (*graph.WriteSummary, error) {
	return emptySummary, nil
}

func (s *stubStore) JoinCall(ctx context.Context, id, user string) (*graph.WriteSummary, error) {
	return emptySummary, nil
}

func (s *stubStore) LeaveCall(ctx context.Context, call, user string) (*graph.WriteSummary, error) {
	return emptySummary, nil
}

func (s *stubStore) CreateScreenshare(ctx context.Context, user, call, name string) (*graph.WriteSummary, error) {
	return emptySummary, nil
}

func (s *stubStore) GetScreenshare(ctx context.Context, id string) (*graph.ScreenshareView, error) {
	return &graph.ScreenshareView{ID: id}, nil
}

func (s *stubStore) ListScreenshares(ctx context.Context, f graph.ScreenshareFilter) ([]graph.ScreenshareView, error) {
	return nil, nil
}

func (s *stubStore) RenameScreenshare(ctx context.Context, id, name string) (*graph.WriteSummary, error) {
	return emptySummary, nil
}

func (s *stubStore) DeleteScreenshare(ctx context.Context, id string) (*graph.WriteSummary, error) {
	return emptySummary, nil
}

func (s *stubStore) CreateFile(ctx context.Context, user, channel, path, description string) (*graph.WriteSummary, error) {
	if s.createFile != nil {
		return s.createFile(ctx, user, channel, path, description)
	}
	return emptySummary, nil
}

func (s *stubStore) GetFile(ctx context.Context, id string) (*graph.FileView, error) {
	if s.getFile != nil {
		return s.getFile(ctx, id)
	}
	return &graph.FileView{ID: id}, nil
}

func (s *stubStore) ListFiles(ctx context.Context, f graph.FileFilter) ([]graph.FileView, error) {
	return nil, nil
}

func (s *stubStore) UpdateFileDescription(ctx context.Context, id, description string) (*graph.WriteSummary, error) {
	return emptySummary, nil
}

func (s *stubStore) DeleteFile(ctx context.Context, id string) (string, *graph.WriteSummary, error) {
	if s.deleteFile != nil {
		return s.deleteFile(ctx, id)
	}
	return "", emptySummary, nil
}

func (s *stubStore) ListNotifications(ctx context.Context, user string) ([]graph.NotificationView, error) {
	if s.listNotifications != nil {
		return s.listNotifications(ctx, user)
	}
	return nil, nil
}

func (s *stubStore) MarkNotificationsRead(ctx context.Context, user, notification string) (*graph.WriteSummary, error) {
	if s.markNotificationsRead != nil {
		return s.markNotificationsRead(ctx, user, notification)
	}
	return emptySummary, nil
}

func (s *stubStore) DeleteNotification(ctx context.Context, id string) (*graph.WriteSummary, error) {
	return emptySummary, nil
}

// stubFiles implements FileStore in memory.
type stubFiles struct {
	saved   map[string][]byte
	removed []string
}

func newStubFiles() *stubFiles {
	return &stubFiles{saved: map[string][]byte{}}
}

func (f *stubFiles) Save(name string, src io.Reader) (string, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}
	path := "files/" + name
	f.saved[path] = data
	return path, nil
}

func (f *stubFiles) Load(path string) ([]byte, error) {
	return f.saved[path], nil
}

func (f *stubFiles) Remove(path string) error {
	f.removed = append(f.removed, path)
	delete(f.saved, path)
	return nil
}

// Test helpers

func newTestRouter(store Store, files FileStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	New(store, files).Register(router)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) envelope {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Failures still ride on HTTP 200; only the envelope's status differs.
	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}
