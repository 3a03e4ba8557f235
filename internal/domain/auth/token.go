package auth

import "time"

// TokenPair 為一次登入簽發的兩枚 token：access token 由 API 逐請求驗證，
// refresh token 只放在 HttpOnly cookie，用於換發新的 access token。
type TokenPair struct {
	AccessToken   string
	RefreshToken  string
	AccessExpiry  time.Time
	RefreshExpiry time.Time
}
