package postgres

import (
	"context"
	"database/sql"
	"errors"

	appauth "trade-journal/internal/application/auth"
	authDomain "trade-journal/internal/domain/auth"
	authinfra "trade-journal/internal/infrastructure/auth"
)

// AuthRepo 提供使用者與 refresh session 的存取。
type AuthRepo struct {
	db *sql.DB
}

// NewAuthRepo 建立 AuthRepo。
func NewAuthRepo(db *sql.DB) *AuthRepo {
	return &AuthRepo{db: db}
}

// FindByEmail 依 email 查詢使用者。
func (r *AuthRepo) FindByEmail(ctx context.Context, email string) (authDomain.User, error) {
	const q = `
SELECT id, email, display_name, password_hash, status
FROM users
WHERE email = $1
LIMIT 1;
`
	var u authDomain.User
	if err := r.db.QueryRowContext(ctx, q, email).Scan(&u.ID, &u.Email, &u.DisplayName, &u.PasswordHash, &u.Status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return authDomain.User{}, appauth.ErrUserNotFound
		}
		return authDomain.User{}, err
	}
	return u, nil
}

// FindByID 依 ID 查詢使用者。
func (r *AuthRepo) FindByID(ctx context.Context, id string) (authDomain.User, error) {
	const q = `
SELECT id, email, display_name, password_hash, status
FROM users
WHERE id = $1
LIMIT 1;
`
	var u authDomain.User
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&u.ID, &u.Email, &u.DisplayName, &u.PasswordHash, &u.Status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return authDomain.User{}, appauth.ErrUserNotFound
		}
		return authDomain.User{}, err
	}
	return u, nil
}

// CreateUser 建立使用者並回傳帶 ID 的結果。
func (r *AuthRepo) CreateUser(ctx context.Context, user authDomain.User) (authDomain.User, error) {
	const q = `
INSERT INTO users (email, display_name, password_hash, status)
VALUES ($1, $2, $3, $4)
RETURNING id;
`
	if err := r.db.QueryRowContext(ctx, q, user.Email, user.DisplayName, user.PasswordHash, string(user.Status)).Scan(&user.ID); err != nil {
		return authDomain.User{}, err
	}
	return user, nil
}

// SeedDefaults 建立示範帳號供登入測試。
func (r *AuthRepo) SeedDefaults(ctx context.Context) error {
	hash, err := authinfra.HashPassword("password123")
	if err != nil {
		return err
	}
	const q = `
INSERT INTO users (email, display_name, password_hash, status)
VALUES ($1, $2, $3, 'active')
ON CONFLICT (email) DO UPDATE SET display_name = EXCLUDED.display_name
RETURNING id;
`
	var id string
	return r.db.QueryRowContext(ctx, q, "trader@example.com", "Trader", hash).Scan(&id)
}

// SaveSession 寫入 refresh session。
func (r *AuthRepo) SaveSession(ctx context.Context, sess authDomain.Session) error {
	const q = `
INSERT INTO auth_sessions (user_id, refresh_token_id, expires_at, user_agent, ip_address)
VALUES ($1, $2, $3, $4, $5);
`
	_, err := r.db.ExecContext(ctx, q, sess.UserID, sess.Token, sess.ExpiresAt, sess.UserAgent, sess.IPAddress)
	return err
}

// GetSession 依 refresh token 查詢 session。
func (r *AuthRepo) GetSession(ctx context.Context, token string) (authDomain.Session, error) {
	const q = `
SELECT user_id, refresh_token_id, expires_at, revoked_at, user_agent, ip_address, created_at
FROM auth_sessions
WHERE refresh_token_id = $1
LIMIT 1;
`
	var sess authDomain.Session
	var revoked sql.NullTime
	if err := r.db.QueryRowContext(ctx, q, token).Scan(&sess.UserID, &sess.Token, &sess.ExpiresAt, &revoked, &sess.UserAgent, &sess.IPAddress, &sess.CreatedAt); err != nil {
		return authDomain.Session{}, mapNotFound(err)
	}
	if revoked.Valid {
		sess.RevokedAt = &revoked.Time
	}
	return sess, nil
}

// RevokeSession 將 session 標記為作廢。
func (r *AuthRepo) RevokeSession(ctx context.Context, token string) error {
	const q = `
UPDATE auth_sessions SET revoked_at = $2 WHERE refresh_token_id = $1;
`
	_, err := r.db.ExecContext(ctx, q, token, nowUTC())
	return err
}
