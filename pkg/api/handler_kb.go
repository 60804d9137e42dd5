package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/offgrid-ops/commandcenter/pkg/kb"
)

type syncRequest struct {
	Mode  string `json:"mode"`
	Force bool   `json:"force"`
}

// SyncKB handles POST /api/kb/sync, streaming progress as NDJSON. The
// stream always ends with a {done:true} record; a client disconnect
// cancels the job via the request context.
func (s *Server) SyncKB(c *gin.Context) {
	var req syncRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	mode := kb.SyncModeSmart
	switch req.Mode {
	case "", "smart":
	case "full":
		mode = kb.SyncModeFull
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be smart or full"})
		return
	}

	c.Header("Content-Type", "application/x-ndjson")
	c.Header("Cache-Control", "no-cache")
	c.Writer.WriteHeader(http.StatusOK)

	encoder := json.NewEncoder(c.Writer)
	for event := range s.kb.Sync(c.Request.Context(), mode, req.Force) {
		if err := encoder.Encode(event); err != nil {
			// Client went away; the context cancels the job.
			return
		}
		c.Writer.Flush()
	}
}

// SearchKB handles GET /api/kb/search.
func (s *Server) SearchKB(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter is required"})
		return
	}
	topK, _ := strconv.Atoi(c.DefaultQuery("top_k", "5"))
	threshold, err := strconv.ParseFloat(c.DefaultQuery("threshold", "-1"), 64)
	if err != nil {
		threshold = -1
	}

	chunks, searchErr := s.kb.SearchChunks(c.Request.Context(), query, topK, threshold)
	if searchErr != nil {
		writeServiceError(c, searchErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": chunks})
}

// KBStats handles GET /api/kb/stats.
func (s *Server) KBStats(c *gin.Context) {
	stats, err := s.kb.GetStats(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ListKBDocuments handles GET /api/kb/documents.
func (s *Server) ListKBDocuments(c *gin.Context) {
	docs, err := s.kb.ListDocuments(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"documents": docs})
}
