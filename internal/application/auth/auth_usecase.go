package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"trade-journal/internal/domain/auth"
	"trade-journal/internal/domain/journal"
)

// ErrEmailTaken 表示註冊的 email 已存在。
var ErrEmailTaken = errors.New("email already registered")

// ErrUserNotFound 表示查無使用者。
var ErrUserNotFound = errors.New("user not found")

// UserRepository 存取使用者。
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (auth.User, error)
	FindByID(ctx context.Context, id string) (auth.User, error)
	CreateUser(ctx context.Context, user auth.User) (auth.User, error)
}

// PasswordHasher 產生與驗證密碼雜湊。
type PasswordHasher interface {
	Compare(hashed, plain string) bool
	Hash(plain string) (string, error)
}

// TokenIssuer 簽發/更新/作廢 token。
type TokenIssuer interface {
	Issue(ctx context.Context, user auth.User, meta auth.TokenMeta) (auth.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (auth.TokenPair, error)
	RevokeRefresh(ctx context.Context, refreshToken string) error
}

// AccountProvisioner 供註冊時建立預設交易帳戶。
type AccountProvisioner interface {
	CreateAccount(ctx context.Context, account journal.Account) (journal.Account, error)
}

// LoginUseCase 驗證帳密並簽發 token。
type LoginUseCase struct {
	users  UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
	now    func() time.Time
}

func NewLoginUseCase(users UserRepository, hasher PasswordHasher, tokens TokenIssuer) *LoginUseCase {
	return &LoginUseCase{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		now:    time.Now,
	}
}

type LoginInput struct {
	Email    string
	Password string
	Meta     auth.TokenMeta
}

type LoginResult struct {
	User  auth.User
	Token auth.TokenPair
}

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (LoginResult, error) {
	var out LoginResult
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if email == "" || input.Password == "" {
		return out, errors.New("email and password required")
	}

	user, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		return out, fmt.Errorf("find user: %w", err)
	}
	if !user.IsActive() {
		return out, errors.New("user disabled")
	}
	if !uc.hasher.Compare(user.PasswordHash, input.Password) {
		return out, errors.New("invalid credentials")
	}

	token, err := uc.tokens.Issue(ctx, user, input.Meta)
	if err != nil {
		return out, fmt.Errorf("issue token: %w", err)
	}

	out.User = user
	out.Token = token
	return out, nil
}

// RegisterUseCase 建立新使用者與其預設交易帳戶，成功後直接簽發 token。
type RegisterUseCase struct {
	users    UserRepository
	hasher   PasswordHasher
	tokens   TokenIssuer
	accounts AccountProvisioner
}

func NewRegisterUseCase(users UserRepository, hasher PasswordHasher, tokens TokenIssuer, accounts AccountProvisioner) *RegisterUseCase {
	return &RegisterUseCase{
		users:    users,
		hasher:   hasher,
		tokens:   tokens,
		accounts: accounts,
	}
}

type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
	Meta        auth.TokenMeta
}

const defaultAccountName = "Main"

func (uc *RegisterUseCase) Execute(ctx context.Context, input RegisterInput) (LoginResult, error) {
	var out LoginResult
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if email == "" || input.Password == "" {
		return out, errors.New("email and password required")
	}
	if len(input.Password) < 8 {
		return out, errors.New("password must be at least 8 characters")
	}
	if _, err := uc.users.FindByEmail(ctx, email); err == nil {
		return out, ErrEmailTaken
	}

	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return out, fmt.Errorf("hash password: %w", err)
	}
	user := auth.User{
		Email:        email,
		DisplayName:  strings.TrimSpace(input.DisplayName),
		Status:       auth.StatusActive,
		PasswordHash: hash,
	}
	if err := user.Validate(); err != nil {
		return out, err
	}
	user, err = uc.users.CreateUser(ctx, user)
	if err != nil {
		return out, fmt.Errorf("create user: %w", err)
	}

	if _, err := uc.accounts.CreateAccount(ctx, journal.Account{
		UserID: user.ID,
		Name:   defaultAccountName,
	}); err != nil {
		return out, fmt.Errorf("create default account: %w", err)
	}

	token, err := uc.tokens.Issue(ctx, user, input.Meta)
	if err != nil {
		return out, fmt.Errorf("issue token: %w", err)
	}
	out.User = user
	out.Token = token
	return out, nil
}

// RefreshUseCase 以 refresh token 重新簽發 token。
type RefreshUseCase struct {
	tokens TokenIssuer
}

func NewRefreshUseCase(tokens TokenIssuer) *RefreshUseCase {
	return &RefreshUseCase{tokens: tokens}
}

func (uc *RefreshUseCase) Execute(ctx context.Context, refreshToken string) (auth.TokenPair, error) {
	if refreshToken == "" {
		return auth.TokenPair{}, errors.New("refresh token required")
	}
	return uc.tokens.Refresh(ctx, refreshToken)
}

// LogoutUseCase 處理 refresh token 作廢。
type LogoutUseCase struct {
	tokens TokenIssuer
}

func NewLogoutUseCase(tokens TokenIssuer) *LogoutUseCase {
	return &LogoutUseCase{tokens: tokens}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return errors.New("refresh token required")
	}
	return uc.tokens.RevokeRefresh(ctx, refreshToken)
}
