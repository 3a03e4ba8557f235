package journal

import (
	"context"
	"errors"

	"trade-journal/internal/domain/journal"
)

// ErrNotFound 表示查無資源。
var ErrNotFound = errors.New("not found")

// ErrForbidden 表示資源不屬於目前使用者。
var ErrForbidden = errors.New("forbidden")

// Repository 定義日誌資料的儲存介面。交易列表一律以 session date（18:00
// 之後歸入隔日）遞增、再以時間遞增排序回傳，統計引擎依賴這個順序。
type Repository interface {
	CreateAccount(ctx context.Context, account journal.Account) (journal.Account, error)
	GetAccount(ctx context.Context, id string) (journal.Account, error)
	ListAccounts(ctx context.Context, userID string) ([]journal.Account, error)
	UpdateAccount(ctx context.Context, account journal.Account) error
	DeleteAccount(ctx context.Context, id string) error

	CreateTrade(ctx context.Context, trade journal.Trade) (journal.Trade, error)
	GetTrade(ctx context.Context, id string) (journal.Trade, error)
	ListTrades(ctx context.Context, accountID string) ([]journal.Trade, error)
	UpdateTrade(ctx context.Context, trade journal.Trade) error
	DeleteTrade(ctx context.Context, id string) error

	UpsertEntry(ctx context.Context, entry journal.Entry) (journal.Entry, error)
	GetEntry(ctx context.Context, accountID, date string) (journal.Entry, error)
	ListEntries(ctx context.Context, accountID, start, end string) ([]journal.Entry, error)

	CreateStrategy(ctx context.Context, strategy journal.Strategy) (journal.Strategy, error)
	GetStrategy(ctx context.Context, id string) (journal.Strategy, error)
	ListStrategies(ctx context.Context, accountID string) ([]journal.Strategy, error)
	UpdateStrategy(ctx context.Context, strategy journal.Strategy) error
	DeleteStrategy(ctx context.Context, id string) error
	CreateStrategyItem(ctx context.Context, item journal.StrategyItem) (journal.StrategyItem, error)
	GetStrategyItem(ctx context.Context, id string) (journal.StrategyItem, error)
	DeleteStrategyItem(ctx context.Context, id string) error
	ListChecklist(ctx context.Context, accountID, date string) ([]journal.ChecklistState, error)
	SetChecklist(ctx context.Context, state journal.ChecklistState) (journal.ChecklistState, error)

	CreateScreenshot(ctx context.Context, shot journal.Screenshot) (journal.Screenshot, error)
	GetScreenshot(ctx context.Context, id string) (journal.Screenshot, error)
	ListScreenshots(ctx context.Context, accountID, date string) ([]journal.Screenshot, error)
	DeleteScreenshot(ctx context.Context, id string) error
}
