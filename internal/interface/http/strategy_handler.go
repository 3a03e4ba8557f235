package httpapi

import (
	"net/http"

	"trade-journal/internal/domain/journal"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleListStrategies(c *gin.Context) {
	strategies, err := s.strategyUC.List(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		failFromError(c, err)
		return
	}
	if strategies == nil {
		strategies = []journal.Strategy{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "strategies": strategies})
}

func (s *Server) handleCreateStrategy(c *gin.Context) {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, errCodeBadRequest, "invalid body")
		return
	}
	strategy, err := s.strategyUC.Create(c.Request.Context(), currentUserID(c), c.Param("id"), body.Name)
	if err != nil {
		failFromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "strategy": strategy})
}

func (s *Server) handleRenameStrategy(c *gin.Context) {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, errCodeBadRequest, "invalid body")
		return
	}
	strategy, err := s.strategyUC.Rename(c.Request.Context(), currentUserID(c), c.Param("id"), body.Name)
	if err != nil {
		failFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "strategy": strategy})
}

func (s *Server) handleDeleteStrategy(c *gin.Context) {
	if err := s.strategyUC.Delete(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		failFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleAddStrategyItem(c *gin.Context) {
	var body struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, errCodeBadRequest, "invalid body")
		return
	}
	item, err := s.strategyUC.AddItem(c.Request.Context(), currentUserID(c), c.Param("id"), body.Text)
	if err != nil {
		failFromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "item": item})
}

func (s *Server) handleDeleteStrategyItem(c *gin.Context) {
	if err := s.strategyUC.DeleteItem(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		failFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleChecklist(c *gin.Context) {
	date := c.Query("date")
	if !isISODate(date) {
		fail(c, http.StatusBadRequest, errCodeBadRequest, "date query param required (YYYY-MM-DD)")
		return
	}
	states, err := s.strategyUC.Checklist(c.Request.Context(), currentUserID(c), c.Param("id"), date)
	if err != nil {
		failFromError(c, err)
		return
	}
	if states == nil {
		states = []journal.ChecklistState{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "checklist": states})
}

func (s *Server) handleSetChecklist(c *gin.Context) {
	var body struct {
		Date       string `json:"date"`
		StrategyID string `json:"strategy_id"`
		ItemID     string `json:"item_id"`
		Checked    bool   `json:"checked"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, errCodeBadRequest, "invalid body")
		return
	}
	state, err := s.strategyUC.SetChecked(c.Request.Context(), currentUserID(c), journal.ChecklistState{
		AccountID:  c.Param("id"),
		Date:       body.Date,
		StrategyID: body.StrategyID,
		ItemID:     body.ItemID,
		Checked:    body.Checked,
	})
	if err != nil {
		failFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "state": state})
}
