package server

import (
	"github.com/gin-gonic/gin"

	"graphchat/backend/internal/graph"
)

func (s *Server) listMessages(c *gin.Context) {
	f := graph.MessageFilter{
		User:    c.Query("user"),
		Channel: c.Query("channel"),
	}
	messages, err := s.store.ListMessages(c.Request.Context(), f)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, gin.H{"messages": messages})
}

func (s *Server) createMessage(c *gin.Context) {
	var req struct {
		Text    string `json:"text" binding:"required"`
		User    string `json:"user" binding:"required"`
		Channel string `json:"channel" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	summary, err := s.store.CreateMessage(c.Request.Context(), req.Text, req.User, req.Channel)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, createdNodes(summary))
}

func (s *Server) getMessage(c *gin.Context) {
	message, err := s.store.GetMessage(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	success(c, message)
}

func (s *Server) updateMessage(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	summary, err := s.store.UpdateMessageText(c.Request.Context(), c.Param("id"), req.Text)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, setProperties(summary))
}

func (s *Server) deleteMessage(c *gin.Context) {
	summary, err := s.store.DeleteMessage(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	success(c, deletedNodes(summary))
}
