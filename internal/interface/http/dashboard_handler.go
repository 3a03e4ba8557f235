package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleDashboard(c *gin.Context) {
	filter := parseFilter(c)
	report, err := s.dashboardUC.Build(c.Request.Context(), currentUserID(c), c.Param("id"), filter)
	if err != nil {
		failFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "report": report})
}
