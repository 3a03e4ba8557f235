package auth

import (
	"errors"
	"strings"
)

// Status 定義帳號狀態。
type Status string

const (
	StatusActive   Status = "active"
	StatusDisabled Status = "disabled"
)

// User 基本帳號資料。日誌為個人工具，不設角色權限，資源一律以擁有者判斷。
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	DisplayName  string `json:"display_name"`
	Status       Status `json:"status"`
	PasswordHash string `json:"-"` // bcrypt 雜湊
}

// Validate 基本欄位檢查。
func (u User) Validate() error {
	if u.Email == "" {
		return errors.New("email is required")
	}
	if !strings.Contains(u.Email, "@") {
		return errors.New("email is invalid")
	}
	if u.Status == "" {
		return errors.New("status is required")
	}
	return nil
}

// IsActive 檢查是否可登入。
func (u User) IsActive() bool {
	return u.Status == StatusActive
}
