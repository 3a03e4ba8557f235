package httpapi

import (
	"net/http"

	"trade-journal/internal/domain/journal"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleListScreenshots(c *gin.Context) {
	shots, err := s.screenshotUC.List(c.Request.Context(), currentUserID(c), c.Param("id"), c.Query("date"))
	if err != nil {
		failFromError(c, err)
		return
	}
	if shots == nil {
		shots = []journal.Screenshot{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "screenshots": shots})
}

func (s *Server) handleAttachScreenshot(c *gin.Context) {
	var body struct {
		Date        string `json:"date"`
		TradeID     string `json:"trade_id"`
		FileURL     string `json:"file_url"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, errCodeBadRequest, "invalid body")
		return
	}
	shot, err := s.screenshotUC.Attach(c.Request.Context(), currentUserID(c), journal.Screenshot{
		AccountID:   c.Param("id"),
		Date:        body.Date,
		TradeID:     body.TradeID,
		FileURL:     body.FileURL,
		Description: body.Description,
	})
	if err != nil {
		failFromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "screenshot": shot})
}

func (s *Server) handleDeleteScreenshot(c *gin.Context) {
	if err := s.screenshotUC.Delete(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		failFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
