package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"graphchat/backend/internal/graph"
	apperr "graphchat/backend/pkg/errors"
)

// envelope is the uniform response shape. Failures still travel with HTTP
// 200; the status field is the one clients look at.
type envelope struct {
	Status  string `json:"status"`
	Result  any    `json:"result,omitempty"`
	Message any    `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func success(c *gin.Context, result any) {
	c.JSON(http.StatusOK, envelope{Status: "Success", Result: result})
}

// fail maps domain errors into the error field and everything else (store
// failures) into the message field.
func fail(c *gin.Context, err error) {
	switch e := err.(type) {
	case *apperr.ErrNotFound:
		c.JSON(http.StatusOK, envelope{Status: "Error", Error: e.Message})
	case *apperr.ErrDuplicateName:
		c.JSON(http.StatusOK, envelope{Status: "Error", Error: e.Message})
	case *apperr.BaseError:
		if e.Type == apperr.ErrorTypeAuth {
			c.JSON(http.StatusOK, envelope{Status: "Error", Error: e.Message})
			return
		}
		c.JSON(http.StatusOK, envelope{Status: "Error", Message: e.Error()})
	default:
		c.JSON(http.StatusOK, envelope{Status: "Error", Message: err.Error()})
	}
}

// badRequest reports a request binding failure.
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusOK, envelope{Status: "Error", Error: err.Error()})
}

// Mutation result messages mirror the store's update counters.

func createdNodes(s *graph.WriteSummary) string {
	return fmt.Sprintf("Created %d nodes in %d ms.", s.NodesCreated, s.AvailableAfter.Milliseconds())
}

func deletedNodes(s *graph.WriteSummary) string {
	return fmt.Sprintf("Deleted %d nodes in %d ms.", s.NodesDeleted, s.AvailableAfter.Milliseconds())
}

func createdRelationships(s *graph.WriteSummary) string {
	return fmt.Sprintf("Created %d relationships in %d ms.", s.RelationshipsCreated, s.AvailableAfter.Milliseconds())
}

func deletedRelationships(s *graph.WriteSummary) string {
	return fmt.Sprintf("Deleted %d relationships in %d ms.", s.RelationshipsDeleted, s.AvailableAfter.Milliseconds())
}

func setProperties(s *graph.WriteSummary) string {
	return fmt.Sprintf("Set %d properties in %d ms.", s.PropertiesSet, s.AvailableAfter.Milliseconds())
}
