package journal

import (
	"context"
	"fmt"
	"strings"

	"trade-journal/internal/domain/journal"
)

// AccountUseCase 管理交易帳戶（使用者日誌資料的分區）。
type AccountUseCase struct {
	repo Repository
}

func NewAccountUseCase(repo Repository) *AccountUseCase {
	return &AccountUseCase{repo: repo}
}

// requireAccount 確認帳戶存在且屬於該使用者，為所有帳戶綁定資源的共同關卡。
func requireAccount(ctx context.Context, repo Repository, userID, accountID string) (journal.Account, error) {
	account, err := repo.GetAccount(ctx, accountID)
	if err != nil {
		return journal.Account{}, err
	}
	if account.UserID != userID {
		return journal.Account{}, ErrForbidden
	}
	return account, nil
}

func (uc *AccountUseCase) Create(ctx context.Context, userID, name string) (journal.Account, error) {
	account := journal.Account{
		UserID: userID,
		Name:   strings.TrimSpace(name),
	}
	if err := account.Validate(); err != nil {
		return journal.Account{}, err
	}
	return uc.repo.CreateAccount(ctx, account)
}

func (uc *AccountUseCase) List(ctx context.Context, userID string) ([]journal.Account, error) {
	return uc.repo.ListAccounts(ctx, userID)
}

func (uc *AccountUseCase) Rename(ctx context.Context, userID, accountID, name string) (journal.Account, error) {
	account, err := requireAccount(ctx, uc.repo, userID, accountID)
	if err != nil {
		return journal.Account{}, err
	}
	account.Name = strings.TrimSpace(name)
	if err := account.Validate(); err != nil {
		return journal.Account{}, err
	}
	if err := uc.repo.UpdateAccount(ctx, account); err != nil {
		return journal.Account{}, fmt.Errorf("update account: %w", err)
	}
	return account, nil
}

// Delete 移除帳戶。帳戶底下的交易、筆記、策略與截圖由儲存層一併清除。
func (uc *AccountUseCase) Delete(ctx context.Context, userID, accountID string) error {
	if _, err := requireAccount(ctx, uc.repo, userID, accountID); err != nil {
		return err
	}
	return uc.repo.DeleteAccount(ctx, accountID)
}
