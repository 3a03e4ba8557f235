package auth

import (
	"context"
	"time"
)

// Session 對應一枚尚在流通的 refresh token。每次換發都撤銷舊 session
// 並建立新的一筆（輪替），登出則直接撤銷。
type Session struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
	RevokedAt *time.Time
	UserAgent string
	IPAddress string
	CreatedAt time.Time
}

// Active 檢查 session 是否仍可用於換發：未過期且未被撤銷。
func (s Session) Active(now time.Time) bool {
	if s.ExpiresAt.Before(now) {
		return false
	}
	if s.RevokedAt != nil && !s.RevokedAt.IsZero() {
		return false
	}
	return true
}

// SessionStore 儲存 refresh session，記憶體與 PostgreSQL 各有一份實作。
type SessionStore interface {
	SaveSession(ctx context.Context, sess Session) error
	GetSession(ctx context.Context, token string) (Session, error)
	RevokeSession(ctx context.Context, token string) error
}

// TokenMeta 簽發 token 時附帶的請求來源資訊，記在 session 上。
type TokenMeta struct {
	UserAgent string
	IP        string
}
