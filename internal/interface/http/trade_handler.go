package httpapi

import (
	"net/http"

	"trade-journal/internal/domain/journal"

	"github.com/gin-gonic/gin"
)

type tradeRequest struct {
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Instrument  string  `json:"instrument"`
	Side        string  `json:"side"`
	Result      string  `json:"result"`
	Contracts   int     `json:"contracts"`
	RiskRewardR float64 `json:"risk_reward_r"`
	Pnl         float64 `json:"pnl"`
}

func (r tradeRequest) toTrade() journal.Trade {
	return journal.Trade{
		Date:        r.Date,
		Time:        r.Time,
		Instrument:  r.Instrument,
		Side:        journal.Side(r.Side),
		Result:      journal.Result(r.Result),
		Contracts:   r.Contracts,
		RiskRewardR: r.RiskRewardR,
		Pnl:         r.Pnl,
	}
}

func (s *Server) handleListTrades(c *gin.Context) {
	trades, err := s.tradeUC.List(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		failFromError(c, err)
		return
	}
	if trades == nil {
		trades = []journal.Trade{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "trades": trades})
}

func (s *Server) handleCreateTrade(c *gin.Context) {
	var body tradeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, errCodeBadRequest, "invalid body")
		return
	}
	trade := body.toTrade()
	trade.AccountID = c.Param("id")
	created, err := s.tradeUC.Create(c.Request.Context(), currentUserID(c), trade)
	if err != nil {
		failFromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "trade": created})
}

func (s *Server) handleUpdateTrade(c *gin.Context) {
	var body tradeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, errCodeBadRequest, "invalid body")
		return
	}
	trade := body.toTrade()
	trade.ID = c.Param("id")
	updated, err := s.tradeUC.Update(c.Request.Context(), currentUserID(c), trade)
	if err != nil {
		failFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "trade": updated})
}

func (s *Server) handleDeleteTrade(c *gin.Context) {
	if err := s.tradeUC.Delete(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		failFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
