package server

import (
	"github.com/gin-gonic/gin"

	"graphchat/backend/internal/graph"
)

func (s *Server) listScreenshares(c *gin.Context) {
	f := graph.ScreenshareFilter{
		User:    c.Query("user"),
		Call:    c.Query("call"),
		Channel: c.Query("channel"),
	}
	shares, err := s.store.ListScreenshares(c.Request.Context(), f)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, gin.H{"screenshares": shares})
}

func (s *Server) createScreenshare(c *gin.Context) {
	var req struct {
		User string `json:"user" binding:"required"`
		Call string `json:"call" binding:"required"`
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	summary, err := s.store.CreateScreenshare(c.Request.Context(), req.User, req.Call, req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, createdNodes(summary))
}

func (s *Server) getScreenshare(c *gin.Context) {
	share, err := s.store.GetScreenshare(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	success(c, share)
}

func (s *Server) updateScreenshare(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	summary, err := s.store.RenameScreenshare(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, setProperties(summary))
}

func (s *Server) deleteScreenshare(c *gin.Context) {
	summary, err := s.store.DeleteScreenshare(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	success(c, deletedNodes(summary))
}
