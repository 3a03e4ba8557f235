package httpapi

import (
	"net/http"
	"time"

	appauth "trade-journal/internal/application/auth"
	authDomain "trade-journal/internal/domain/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (s *Server) handleRegister(c *gin.Context) {
	var body struct {
		Email       string `json:"email"`
		Password    string `json:"password"`
		DisplayName string `json:"display_name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, errCodeBadRequest, "invalid body")
		return
	}

	res, err := s.registerUC.Execute(c.Request.Context(), appauth.RegisterInput{
		Email:       body.Email,
		Password:    body.Password,
		DisplayName: body.DisplayName,
		Meta: authDomain.TokenMeta{
			UserAgent: c.GetHeader("User-Agent"),
			IP:        c.ClientIP(),
		},
	})
	if err != nil {
		failFromError(c, err)
		return
	}

	s.setRefreshCookie(c, res.Token.RefreshToken, res.Token.RefreshExpiry)
	c.JSON(http.StatusCreated, gin.H{
		"success":      true,
		"user":         userBody(res.User),
		"access_token": res.Token.AccessToken,
		"token_type":   "Bearer",
		"expiry":       res.Token.AccessExpiry.Format(time.RFC3339),
	})
}

func (s *Server) handleLogin(c *gin.Context) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, errCodeBadRequest, "invalid body")
		return
	}

	res, err := s.loginUC.Execute(c.Request.Context(), appauth.LoginInput{
		Email:    body.Email,
		Password: body.Password,
		Meta: authDomain.TokenMeta{
			UserAgent: c.GetHeader("User-Agent"),
			IP:        c.ClientIP(),
		},
	})
	if err != nil {
		s.log.Info("login failure", zap.String("email", body.Email), zap.Error(err))
		fail(c, http.StatusUnauthorized, errCodeInvalidCredentials, "invalid email or password")
		return
	}

	s.setRefreshCookie(c, res.Token.RefreshToken, res.Token.RefreshExpiry)
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"user":         userBody(res.User),
		"access_token": res.Token.AccessToken,
		"token_type":   "Bearer",
		"expiry":       res.Token.AccessExpiry.Format(time.RFC3339),
	})
}

func (s *Server) handleRefresh(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshCookieName)
	if err != nil {
		fail(c, http.StatusUnauthorized, errCodeUnauthorized, "refresh token missing")
		return
	}

	pair, err := s.refreshUC.Execute(c.Request.Context(), refreshToken)
	if err != nil {
		fail(c, http.StatusUnauthorized, errCodeUnauthorized, "invalid refresh token")
		return
	}

	s.setRefreshCookie(c, pair.RefreshToken, pair.RefreshExpiry)
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"access_token": pair.AccessToken,
		"token_type":   "Bearer",
		"expiry":       pair.AccessExpiry.Format(time.RFC3339),
	})
}

func (s *Server) handleLogout(c *gin.Context) {
	refreshToken, _ := c.Cookie(refreshCookieName)
	if refreshToken != "" {
		_ = s.logoutUC.Execute(c.Request.Context(), refreshToken)
	}

	c.SetCookie(refreshCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleMe(c *gin.Context) {
	user, err := s.users.FindByID(c.Request.Context(), currentUserID(c))
	if err != nil {
		fail(c, http.StatusUnauthorized, errCodeUnauthorized, "unknown user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": userBody(user)})
}

func userBody(u authDomain.User) gin.H {
	return gin.H{
		"id":           u.ID,
		"email":        u.Email,
		"display_name": u.DisplayName,
	}
}
