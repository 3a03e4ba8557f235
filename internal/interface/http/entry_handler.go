package httpapi

import (
	"net/http"

	"trade-journal/internal/domain/journal"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleListEntries(c *gin.Context) {
	entries, err := s.entryUC.List(c.Request.Context(), currentUserID(c), c.Param("id"), c.Query("start"), c.Query("end"))
	if err != nil {
		failFromError(c, err)
		return
	}
	if entries == nil {
		entries = []journal.Entry{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "entries": entries})
}

func (s *Server) handleGetEntry(c *gin.Context) {
	entry, err := s.entryUC.Get(c.Request.Context(), currentUserID(c), c.Param("id"), c.Param("date"))
	if err != nil {
		failFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "entry": entry})
}

func (s *Server) handleUpsertEntry(c *gin.Context) {
	var body struct {
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, errCodeBadRequest, "invalid body")
		return
	}
	entry, err := s.entryUC.Upsert(c.Request.Context(), currentUserID(c), c.Param("id"), c.Param("date"), body.Notes)
	if err != nil {
		failFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "entry": entry})
}
