package journal

import (
	"context"
	"fmt"

	"trade-journal/internal/domain/journal"
)

// TradeUseCase 管理交易紀錄的登錄與維護。
type TradeUseCase struct {
	repo Repository
}

func NewTradeUseCase(repo Repository) *TradeUseCase {
	return &TradeUseCase{repo: repo}
}

// Create 驗證並寫入一筆交易。result 與 pnl 的一致性在這裡把關，
// 統計引擎之後不再重複檢查。
func (uc *TradeUseCase) Create(ctx context.Context, userID string, trade journal.Trade) (journal.Trade, error) {
	if _, err := requireAccount(ctx, uc.repo, userID, trade.AccountID); err != nil {
		return journal.Trade{}, err
	}
	if err := trade.Validate(); err != nil {
		return journal.Trade{}, err
	}
	return uc.repo.CreateTrade(ctx, trade)
}

// List 回傳帳戶全部交易，依 session date 與時間遞增。
func (uc *TradeUseCase) List(ctx context.Context, userID, accountID string) ([]journal.Trade, error) {
	if _, err := requireAccount(ctx, uc.repo, userID, accountID); err != nil {
		return nil, err
	}
	return uc.repo.ListTrades(ctx, accountID)
}

func (uc *TradeUseCase) Update(ctx context.Context, userID string, trade journal.Trade) (journal.Trade, error) {
	existing, err := uc.repo.GetTrade(ctx, trade.ID)
	if err != nil {
		return journal.Trade{}, err
	}
	if _, err := requireAccount(ctx, uc.repo, userID, existing.AccountID); err != nil {
		return journal.Trade{}, err
	}
	trade.AccountID = existing.AccountID
	trade.CreatedAt = existing.CreatedAt
	if err := trade.Validate(); err != nil {
		return journal.Trade{}, err
	}
	if err := uc.repo.UpdateTrade(ctx, trade); err != nil {
		return journal.Trade{}, fmt.Errorf("update trade: %w", err)
	}
	return trade, nil
}

func (uc *TradeUseCase) Delete(ctx context.Context, userID, tradeID string) error {
	existing, err := uc.repo.GetTrade(ctx, tradeID)
	if err != nil {
		return err
	}
	if _, err := requireAccount(ctx, uc.repo, userID, existing.AccountID); err != nil {
		return err
	}
	return uc.repo.DeleteTrade(ctx, tradeID)
}
