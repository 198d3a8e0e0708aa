package server

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

func (s *Server) login(c *gin.Context) {
	var req struct {
		Login    string `json:"login" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := s.store.Login(c.Request.Context(), req.Login, req.Password); err != nil {
		fail(c, err)
		return
	}
	success(c, fmt.Sprintf("Successfully logged in as %s.", req.Login))
}

func (s *Server) logout(c *gin.Context) {
	var req struct {
		Login string `json:"login" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := s.store.Logout(c.Request.Context(), req.Login); err != nil {
		fail(c, err)
		return
	}
	success(c, fmt.Sprintf("Successfully logged out as %s.", req.Login))
}

func (s *Server) resetPassword(c *gin.Context) {
	var req struct {
		Login    string `json:"login" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := s.store.ResetPassword(c.Request.Context(), req.Login, req.Email, req.Password); err != nil {
		fail(c, err)
		return
	}
	success(c, "Successfully reset password.")
}
