package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListConversations handles GET /api/conversations.
func (s *Server) ListConversations(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	summaries, err := s.conversations.List(c.Request.Context(), limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"conversations": summaries})
}

// GetConversation handles GET /api/conversations/:id.
func (s *Server) GetConversation(c *gin.Context) {
	conv, msgs, err := s.conversations.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session":  conv,
		"messages": msgs,
	})
}

// CloseConversation handles POST /api/conversations/:id/close.
func (s *Server) CloseConversation(c *gin.Context) {
	if err := s.conversations.Close(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "closed"})
}
