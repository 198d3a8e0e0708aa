package server

import (
	"github.com/gin-gonic/gin"

	"graphchat/backend/internal/graph"
)

func (s *Server) listUsers(c *gin.Context) {
	f := graph.UserFilter{
		ByCalls:       c.Query("calls") != "",
		Channel:       c.Query("channel"),
		ByScreenshare: c.Query("screenshare") != "",
	}
	users, err := s.store.ListUsers(c.Request.Context(), f)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, gin.H{"users": users})
}

func (s *Server) createUser(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Password string `json:"password" binding:"required"`
		Email    string `json:"email" binding:"required"`
		IsAdmin  bool   `json:"isAdmin"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	summary, err := s.store.CreateUser(c.Request.Context(), req.Name, req.Password, req.Email, req.IsAdmin)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, createdNodes(summary))
}

func (s *Server) getUser(c *gin.Context) {
	profile, err := s.store.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	success(c, gin.H{"user": profile})
}

func (s *Server) updateUser(c *gin.Context) {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	summary, err := s.store.UpdateUser(c.Request.Context(), c.Param("id"), req.Name, req.Email)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, setProperties(summary))
}

func (s *Server) deleteUser(c *gin.Context) {
	summary, err := s.store.DeleteUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	success(c, deletedNodes(summary))
}
