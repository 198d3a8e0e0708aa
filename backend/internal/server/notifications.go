package server

import (
	"github.com/gin-gonic/gin"
)

func (s *Server) listNotifications(c *gin.Context) {
	notifications, err := s.store.ListNotifications(c.Request.Context(), c.Query("user"))
	if err != nil {
		fail(c, err)
		return
	}
	success(c, gin.H{"notifications": notifications})
}

// markNotificationsRead flips read=true on one edge when the notification
// query parameter is given, or on all of the user's edges otherwise. The
// path parameter is the recipient user's id.
func (s *Server) markNotificationsRead(c *gin.Context) {
	summary, err := s.store.MarkNotificationsRead(c.Request.Context(), c.Param("id"), c.Query("notification"))
	if err != nil {
		fail(c, err)
		return
	}
	success(c, setProperties(summary))
}

func (s *Server) deleteNotification(c *gin.Context) {
	summary, err := s.store.DeleteNotification(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	success(c, deletedNodes(summary))
}
