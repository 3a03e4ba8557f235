package httpapi

import (
	"errors"
	"net/http"

	appauth "trade-journal/internal/application/auth"
	appjournal "trade-journal/internal/application/journal"

	"github.com/gin-gonic/gin"
)

const (
	errCodeBadRequest         = "BAD_REQUEST"
	errCodeInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	errCodeUnauthorized       = "AUTH_UNAUTHORIZED"
	errCodeForbidden          = "AUTH_FORBIDDEN"
	errCodeEmailTaken         = "AUTH_EMAIL_TAKEN"
	errCodeNotFound           = "NOT_FOUND"
	errCodeInternal           = "INTERNAL_ERROR"
	refreshCookieName         = "refresh_token"
)

func fail(c *gin.Context, status int, code, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg, "error_code": code})
}

// failFromError 將 application 層錯誤翻成對應的 HTTP 狀態碼。
func failFromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, appjournal.ErrNotFound):
		fail(c, http.StatusNotFound, errCodeNotFound, "not found")
	case errors.Is(err, appjournal.ErrForbidden):
		fail(c, http.StatusForbidden, errCodeForbidden, "forbidden")
	case errors.Is(err, appauth.ErrEmailTaken):
		fail(c, http.StatusConflict, errCodeEmailTaken, "email already registered")
	default:
		fail(c, http.StatusBadRequest, errCodeBadRequest, err.Error())
	}
}
