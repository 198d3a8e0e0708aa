package server

import (
	"github.com/gin-gonic/gin"

	"graphchat/backend/internal/graph"
)

func (s *Server) listChannels(c *gin.Context) {
	f := graph.ChannelFilter{
		ByCalls: c.Query("calls") != "",
		User:    c.Query("user"),
	}
	channels, err := s.store.ListChannels(c.Request.Context(), f)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, gin.H{"channels": channels})
}

func (s *Server) createChannel(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	summary, err := s.store.CreateChannel(c.Request.Context(), req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, createdNodes(summary))
}

func (s *Server) getChannel(c *gin.Context) {
	channel, err := s.store.GetChannel(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	success(c, gin.H{"channel": channel})
}

func (s *Server) updateChannel(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	summary, err := s.store.RenameChannel(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, setProperties(summary))
}

func (s *Server) deleteChannel(c *gin.Context) {
	summary, err := s.store.DeleteChannel(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	success(c, deletedNodes(summary))
}

// addChannelMembers accepts either a single user or a batch.
func (s *Server) addChannelMembers(c *gin.Context) {
	var req struct {
		User  string   `json:"user"`
		Users []string `json:"users"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	users := req.Users
	if req.User != "" {
		users = append(users, req.User)
	}

	summary, err := s.store.AddChannelMembers(c.Request.Context(), c.Param("id"), users)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, createdRelationships(summary))
}

func (s *Server) removeChannelMember(c *gin.Context) {
	summary, err := s.store.RemoveChannelMember(c.Request.Context(), c.Param("id"), c.Param("user"))
	if err != nil {
		fail(c, err)
		return
	}
	success(c, deletedRelationships(summary))
}
