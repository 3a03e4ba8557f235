package journal

import (
	"context"

	"trade-journal/internal/domain/journal"
)

// EntryUseCase 管理每日日誌筆記，每帳戶每日至多一筆。
type EntryUseCase struct {
	repo Repository
}

func NewEntryUseCase(repo Repository) *EntryUseCase {
	return &EntryUseCase{repo: repo}
}

// Upsert 寫入或覆寫某日的筆記。
func (uc *EntryUseCase) Upsert(ctx context.Context, userID, accountID, date, notes string) (journal.Entry, error) {
	if _, err := requireAccount(ctx, uc.repo, userID, accountID); err != nil {
		return journal.Entry{}, err
	}
	entry := journal.Entry{
		AccountID: accountID,
		Date:      date,
		Notes:     notes,
	}
	if err := entry.Validate(); err != nil {
		return journal.Entry{}, err
	}
	return uc.repo.UpsertEntry(ctx, entry)
}

// Get 取某日筆記；該日沒有筆記時回傳 ErrNotFound。
func (uc *EntryUseCase) Get(ctx context.Context, userID, accountID, date string) (journal.Entry, error) {
	if _, err := requireAccount(ctx, uc.repo, userID, accountID); err != nil {
		return journal.Entry{}, err
	}
	return uc.repo.GetEntry(ctx, accountID, date)
}

// List 取日期區間內的筆記，空字串表示該側不設界。
func (uc *EntryUseCase) List(ctx context.Context, userID, accountID, start, end string) ([]journal.Entry, error) {
	if _, err := requireAccount(ctx, uc.repo, userID, accountID); err != nil {
		return nil, err
	}
	return uc.repo.ListEntries(ctx, accountID, start, end)
}
