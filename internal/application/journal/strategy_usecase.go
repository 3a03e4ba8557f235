package journal

import (
	"context"
	"fmt"
	"strings"

	"trade-journal/internal/domain/journal"
)

// StrategyUseCase 管理策略檢核清單與每日勾選狀態。
type StrategyUseCase struct {
	repo Repository
}

func NewStrategyUseCase(repo Repository) *StrategyUseCase {
	return &StrategyUseCase{repo: repo}
}

func (uc *StrategyUseCase) Create(ctx context.Context, userID, accountID, name string) (journal.Strategy, error) {
	if _, err := requireAccount(ctx, uc.repo, userID, accountID); err != nil {
		return journal.Strategy{}, err
	}
	strategy := journal.Strategy{
		AccountID: accountID,
		Name:      strings.TrimSpace(name),
	}
	if err := strategy.Validate(); err != nil {
		return journal.Strategy{}, err
	}
	return uc.repo.CreateStrategy(ctx, strategy)
}

// List 回傳帳戶全部策略，各策略帶齊排序後的項目。
func (uc *StrategyUseCase) List(ctx context.Context, userID, accountID string) ([]journal.Strategy, error) {
	if _, err := requireAccount(ctx, uc.repo, userID, accountID); err != nil {
		return nil, err
	}
	return uc.repo.ListStrategies(ctx, accountID)
}

func (uc *StrategyUseCase) Rename(ctx context.Context, userID, strategyID, name string) (journal.Strategy, error) {
	strategy, err := uc.requireStrategy(ctx, userID, strategyID)
	if err != nil {
		return journal.Strategy{}, err
	}
	strategy.Name = strings.TrimSpace(name)
	if err := strategy.Validate(); err != nil {
		return journal.Strategy{}, err
	}
	if err := uc.repo.UpdateStrategy(ctx, strategy); err != nil {
		return journal.Strategy{}, fmt.Errorf("update strategy: %w", err)
	}
	return strategy, nil
}

func (uc *StrategyUseCase) Delete(ctx context.Context, userID, strategyID string) error {
	if _, err := uc.requireStrategy(ctx, userID, strategyID); err != nil {
		return err
	}
	return uc.repo.DeleteStrategy(ctx, strategyID)
}

// AddItem 在策略尾端追加一個檢核項目。
func (uc *StrategyUseCase) AddItem(ctx context.Context, userID, strategyID, text string) (journal.StrategyItem, error) {
	strategy, err := uc.requireStrategy(ctx, userID, strategyID)
	if err != nil {
		return journal.StrategyItem{}, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return journal.StrategyItem{}, fmt.Errorf("item text is required")
	}
	item := journal.StrategyItem{
		StrategyID: strategy.ID,
		OrderIndex: len(strategy.Items),
		Text:       text,
	}
	return uc.repo.CreateStrategyItem(ctx, item)
}

func (uc *StrategyUseCase) DeleteItem(ctx context.Context, userID, itemID string) error {
	item, err := uc.repo.GetStrategyItem(ctx, itemID)
	if err != nil {
		return err
	}
	if _, err := uc.requireStrategy(ctx, userID, item.StrategyID); err != nil {
		return err
	}
	return uc.repo.DeleteStrategyItem(ctx, itemID)
}

// Checklist 回傳某日的勾選狀態。
func (uc *StrategyUseCase) Checklist(ctx context.Context, userID, accountID, date string) ([]journal.ChecklistState, error) {
	if _, err := requireAccount(ctx, uc.repo, userID, accountID); err != nil {
		return nil, err
	}
	return uc.repo.ListChecklist(ctx, accountID, date)
}

// SetChecked 設定某日某項目的勾選狀態。
func (uc *StrategyUseCase) SetChecked(ctx context.Context, userID string, state journal.ChecklistState) (journal.ChecklistState, error) {
	if _, err := requireAccount(ctx, uc.repo, userID, state.AccountID); err != nil {
		return journal.ChecklistState{}, err
	}
	strategy, err := uc.requireStrategy(ctx, userID, state.StrategyID)
	if err != nil {
		return journal.ChecklistState{}, err
	}
	found := false
	for _, item := range strategy.Items {
		if item.ID == state.ItemID {
			found = true
			break
		}
	}
	if !found {
		return journal.ChecklistState{}, ErrNotFound
	}
	return uc.repo.SetChecklist(ctx, state)
}

func (uc *StrategyUseCase) requireStrategy(ctx context.Context, userID, strategyID string) (journal.Strategy, error) {
	strategy, err := uc.repo.GetStrategy(ctx, strategyID)
	if err != nil {
		return journal.Strategy{}, err
	}
	if _, err := requireAccount(ctx, uc.repo, userID, strategy.AccountID); err != nil {
		return journal.Strategy{}, err
	}
	return strategy, nil
}
