package server

import (
	"encoding/base64"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"graphchat/backend/internal/graph"
)

func (s *Server) listFiles(c *gin.Context) {
	f := graph.FileFilter{
		User:    c.Query("user"),
		Channel: c.Query("channel"),
	}
	files, err := s.store.ListFiles(c.Request.Context(), f)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, gin.H{"files": files})
}

// createFile accepts a multipart upload, saves the payload to disk and
// records only the path in the graph. A failed graph write compensates by
// removing the freshly saved file.
func (s *Server) createFile(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		badRequest(c, err)
		return
	}
	user := c.PostForm("user")
	channel := c.PostForm("channel")
	description := c.PostForm("description")

	src, err := header.Open()
	if err != nil {
		fail(c, err)
		return
	}
	defer src.Close()

	path, err := s.files.Save(header.Filename, src)
	if err != nil {
		fail(c, err)
		return
	}

	summary, err := s.store.CreateFile(c.Request.Context(), user, channel, path, description)
	if err != nil {
		if rmErr := s.files.Remove(path); rmErr != nil {
			s.logger.Warn("Failed to remove orphaned upload",
				zap.String("path", path),
				zap.Error(rmErr),
			)
		}
		fail(c, err)
		return
	}
	success(c, createdNodes(summary))
}

func (s *Server) getFile(c *gin.Context) {
	file, err := s.store.GetFile(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	data, err := s.files.Load(file.Name)
	if err != nil {
		fail(c, err)
		return
	}
	file.File = "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)

	success(c, gin.H{"file": file})
}

func (s *Server) updateFile(c *gin.Context) {
	var req struct {
		Description string `json:"description" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	summary, err := s.store.UpdateFileDescription(c.Request.Context(), c.Param("id"), req.Description)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, setProperties(summary))
}

// deleteFile removes the node first, then the disk artifact. A failed disk
// removal leaves an orphaned file behind; it is logged, not fatal.
func (s *Server) deleteFile(c *gin.Context) {
	path, summary, err := s.store.DeleteFile(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	if path != "" {
		if err := s.files.Remove(path); err != nil {
			s.logger.Warn("Failed to remove deleted file from disk",
				zap.String("path", path),
				zap.Error(err),
			)
		}
	}
	success(c, deletedNodes(summary))
}
