package httpapi

import (
	"net/http"

	"trade-journal/internal/domain/journal"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleListAccounts(c *gin.Context) {
	accounts, err := s.accountUC.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		failFromError(c, err)
		return
	}
	if accounts == nil {
		accounts = []journal.Account{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "accounts": accounts})
}

func (s *Server) handleCreateAccount(c *gin.Context) {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, errCodeBadRequest, "invalid body")
		return
	}
	account, err := s.accountUC.Create(c.Request.Context(), currentUserID(c), body.Name)
	if err != nil {
		failFromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "account": account})
}

func (s *Server) handleRenameAccount(c *gin.Context) {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, errCodeBadRequest, "invalid body")
		return
	}
	account, err := s.accountUC.Rename(c.Request.Context(), currentUserID(c), c.Param("id"), body.Name)
	if err != nil {
		failFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "account": account})
}

func (s *Server) handleDeleteAccount(c *gin.Context) {
	if err := s.accountUC.Delete(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		failFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
