package authinfra

import "golang.org/x/crypto/bcrypt"

// BcryptHasher 以 bcrypt 處理登入密碼的雜湊與比對。
type BcryptHasher struct{}

func (BcryptHasher) Compare(hashed, plain string) bool {
	if hashed == "" || plain == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

func (BcryptHasher) Hash(plain string) (string, error) {
	return HashPassword(plain)
}

// HashPassword 產生 bcrypt 雜湊，註冊與示範帳號 seed 共用。
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
