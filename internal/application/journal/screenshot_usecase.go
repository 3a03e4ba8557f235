package journal

import (
	"context"

	"trade-journal/internal/domain/journal"
)

// ScreenshotUseCase 管理附掛在交易日上的圖表截圖連結。
type ScreenshotUseCase struct {
	repo Repository
}

func NewScreenshotUseCase(repo Repository) *ScreenshotUseCase {
	return &ScreenshotUseCase{repo: repo}
}

// Attach 登錄一張截圖；若指定 trade_id，該交易必須屬於同一帳戶。
func (uc *ScreenshotUseCase) Attach(ctx context.Context, userID string, shot journal.Screenshot) (journal.Screenshot, error) {
	if _, err := requireAccount(ctx, uc.repo, userID, shot.AccountID); err != nil {
		return journal.Screenshot{}, err
	}
	if err := shot.Validate(); err != nil {
		return journal.Screenshot{}, err
	}
	if shot.TradeID != "" {
		trade, err := uc.repo.GetTrade(ctx, shot.TradeID)
		if err != nil {
			return journal.Screenshot{}, err
		}
		if trade.AccountID != shot.AccountID {
			return journal.Screenshot{}, ErrForbidden
		}
	}
	return uc.repo.CreateScreenshot(ctx, shot)
}

// List 取帳戶的截圖；date 非空時只取該日。
func (uc *ScreenshotUseCase) List(ctx context.Context, userID, accountID, date string) ([]journal.Screenshot, error) {
	if _, err := requireAccount(ctx, uc.repo, userID, accountID); err != nil {
		return nil, err
	}
	return uc.repo.ListScreenshots(ctx, accountID, date)
}

func (uc *ScreenshotUseCase) Delete(ctx context.Context, userID, screenshotID string) error {
	shot, err := uc.repo.GetScreenshot(ctx, screenshotID)
	if err != nil {
		return err
	}
	if _, err := requireAccount(ctx, uc.repo, userID, shot.AccountID); err != nil {
		return err
	}
	return uc.repo.DeleteScreenshot(ctx, screenshotID)
}
