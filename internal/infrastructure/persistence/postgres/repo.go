package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	appjournal "trade-journal/internal/application/journal"
	"trade-journal/internal/domain/journal"
)

// Repo 提供日誌資料的 Postgres 存取，實作 application 層的 Repository。
type Repo struct {
	db *sql.DB
}

// NewRepo 建立 Postgres 資料存取實例。
func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

func nowUTC() time.Time {
	return time.Now().UTC()
}

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appjournal.ErrNotFound
	}
	return err
}

// CreateAccount 建立交易帳戶。
func (r *Repo) CreateAccount(ctx context.Context, account journal.Account) (journal.Account, error) {
	const q = `
INSERT INTO accounts (user_id, name)
VALUES ($1, $2)
RETURNING id, created_at, updated_at;
`
	if err := r.db.QueryRowContext(ctx, q, account.UserID, account.Name).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt); err != nil {
		return journal.Account{}, err
	}
	return account, nil
}

// GetAccount 依 ID 查詢帳戶。
func (r *Repo) GetAccount(ctx context.Context, id string) (journal.Account, error) {
	const q = `
SELECT id, user_id, name, created_at, updated_at
FROM accounts
WHERE id = $1
LIMIT 1;
`
	var a journal.Account
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&a.ID, &a.UserID, &a.Name, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return journal.Account{}, mapNotFound(err)
	}
	return a, nil
}

// ListAccounts 列出使用者的全部帳戶（依建立時間遞增）。
func (r *Repo) ListAccounts(ctx context.Context, userID string) ([]journal.Account, error) {
	const q = `
SELECT id, user_id, name, created_at, updated_at
FROM accounts
WHERE user_id = $1
ORDER BY created_at;
`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []journal.Account
	for rows.Next() {
		var a journal.Account
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// UpdateAccount 更新帳戶名稱。
func (r *Repo) UpdateAccount(ctx context.Context, account journal.Account) error {
	const q = `
UPDATE accounts SET name = $2, updated_at = NOW() WHERE id = $1;
`
	res, err := r.db.ExecContext(ctx, q, account.ID, account.Name)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// DeleteAccount 刪除帳戶，其下資料由外鍵 CASCADE 一併清除。
func (r *Repo) DeleteAccount(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// CreateTrade 寫入單筆交易。
func (r *Repo) CreateTrade(ctx context.Context, trade journal.Trade) (journal.Trade, error) {
	const q = `
INSERT INTO trades (account_id, trade_date, trade_time, instrument, side, result, contracts, risk_reward_r, pnl)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, created_at, updated_at;
`
	err := r.db.QueryRowContext(ctx, q,
		trade.AccountID,
		trade.Date,
		trade.Time,
		trade.Instrument,
		string(trade.Side),
		string(trade.Result),
		trade.Contracts,
		trade.RiskRewardR,
		trade.Pnl,
	).Scan(&trade.ID, &trade.CreatedAt, &trade.UpdatedAt)
	if err != nil {
		return journal.Trade{}, err
	}
	return trade, nil
}

// GetTrade 依 ID 查詢交易。
func (r *Repo) GetTrade(ctx context.Context, id string) (journal.Trade, error) {
	const q = `
SELECT id, account_id, trade_date, trade_time, instrument, side, result, contracts, risk_reward_r, pnl, created_at, updated_at
FROM trades
WHERE id = $1
LIMIT 1;
`
	var t journal.Trade
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&t.ID, &t.AccountID, &t.Date, &t.Time, &t.Instrument, &t.Side, &t.Result,
		&t.Contracts, &t.RiskRewardR, &t.Pnl, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return journal.Trade{}, mapNotFound(err)
	}
	return t, nil
}

// ListTrades 列出帳戶交易。排序鍵是 session date：18:00 之後的交易
// 歸入隔日，排序需與統計引擎的分組一致。
func (r *Repo) ListTrades(ctx context.Context, accountID string) ([]journal.Trade, error) {
	const q = `
SELECT id, account_id, trade_date, trade_time, instrument, side, result, contracts, risk_reward_r, pnl, created_at, updated_at
FROM trades
WHERE account_id = $1
ORDER BY trade_date::date + (trade_time >= '18:00')::int, trade_time;
`
	rows, err := r.db.QueryContext(ctx, q, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []journal.Trade
	for rows.Next() {
		var t journal.Trade
		if err := rows.Scan(
			&t.ID, &t.AccountID, &t.Date, &t.Time, &t.Instrument, &t.Side, &t.Result,
			&t.Contracts, &t.RiskRewardR, &t.Pnl, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// UpdateTrade 更新交易內容。
func (r *Repo) UpdateTrade(ctx context.Context, trade journal.Trade) error {
	const q = `
UPDATE trades
SET trade_date = $2, trade_time = $3, instrument = $4, side = $5, result = $6,
    contracts = $7, risk_reward_r = $8, pnl = $9, updated_at = NOW()
WHERE id = $1;
`
	res, err := r.db.ExecContext(ctx, q,
		trade.ID,
		trade.Date,
		trade.Time,
		trade.Instrument,
		string(trade.Side),
		string(trade.Result),
		trade.Contracts,
		trade.RiskRewardR,
		trade.Pnl,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// DeleteTrade 刪除交易。
func (r *Repo) DeleteTrade(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM trades WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return appjournal.ErrNotFound
	}
	return nil
}
