package server

import (
	"github.com/gin-gonic/gin"

	"graphchat/backend/internal/graph"
)

func (s *Server) listCalls(c *gin.Context) {
	f := graph.CallFilter{
		User:          c.Query("user"),
		Channel:       c.Query("channel"),
		ByScreenshare: c.Query("screenshare") != "",
	}
	calls, err := s.store.ListCalls(c.Request.Context(), f)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, gin.H{"calls": calls})
}

func (s *Server) createCall(c *gin.Context) {
	var req struct {
		User    string `json:"user" binding:"required"`
		Channel string `json:"channel" binding:"required"`
		Name    string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	summary, err := s.store.CreateCall(c.Request.Context(), req.User, req.Channel, req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, createdNodes(summary))
}

func (s *Server) getCall(c *gin.Context) {
	call, err := s.store.GetCall(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	success(c, call)
}

func (s *Server) updateCall(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	summary, err := s.store.RenameCall(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, setProperties(summary))
}

func (s *Server) deleteCall(c *gin.Context) {
	summary, err := s.store.DeleteCall(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	success(c, deletedNodes(summary))
}

func (s *Server) joinCall(c *gin.Context) {
	var req struct {
		User string `json:"user" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	summary, err := s.store.JoinCall(c.Request.Context(), c.Param("id"), req.User)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, createdRelationships(summary))
}

func (s *Server) leaveCall(c *gin.Context) {
	summary, err := s.store.LeaveCall(c.Request.Context(), c.Param("id"), c.Param("user"))
	if err != nil {
		fail(c, err)
		return
	}
	success(c, deletedRelationships(summary))
}
