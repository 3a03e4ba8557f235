package postgres

import (
	"context"

	"trade-journal/internal/domain/journal"
)

// UpsertEntry 以 (account_id, entry_date) 作為唯一鍵寫入或更新筆記。
func (r *Repo) UpsertEntry(ctx context.Context, entry journal.Entry) (journal.Entry, error) {
	const q = `
INSERT INTO journal_entries (account_id, entry_date, notes)
VALUES ($1, $2, $3)
ON CONFLICT (account_id, entry_date)
DO UPDATE SET notes = EXCLUDED.notes, updated_at = NOW()
RETURNING id, created_at, updated_at;
`
	if err := r.db.QueryRowContext(ctx, q, entry.AccountID, entry.Date, entry.Notes).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt); err != nil {
		return journal.Entry{}, err
	}
	return entry, nil
}

// GetEntry 查詢某日筆記。
func (r *Repo) GetEntry(ctx context.Context, accountID, date string) (journal.Entry, error) {
	const q = `
SELECT id, account_id, entry_date, notes, created_at, updated_at
FROM journal_entries
WHERE account_id = $1 AND entry_date = $2
LIMIT 1;
`
	var e journal.Entry
	if err := r.db.QueryRowContext(ctx, q, accountID, date).Scan(&e.ID, &e.AccountID, &e.Date, &e.Notes, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return journal.Entry{}, mapNotFound(err)
	}
	return e, nil
}

// ListEntries 依日期區間列出筆記（遞增）。空字串的邊界不設限。
func (r *Repo) ListEntries(ctx context.Context, accountID, start, end string) ([]journal.Entry, error) {
	const q = `
SELECT id, account_id, entry_date, notes, created_at, updated_at
FROM journal_entries
WHERE account_id = $1
AND ($2 = '' OR entry_date >= $2)
AND ($3 = '' OR entry_date <= $3)
ORDER BY entry_date;
`
	rows, err := r.db.QueryContext(ctx, q, accountID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []journal.Entry
	for rows.Next() {
		var e journal.Entry
		if err := rows.Scan(&e.ID, &e.AccountID, &e.Date, &e.Notes, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// CreateStrategy 建立策略清單。
func (r *Repo) CreateStrategy(ctx context.Context, strategy journal.Strategy) (journal.Strategy, error) {
	const q = `
INSERT INTO strategies (account_id, name)
VALUES ($1, $2)
RETURNING id, created_at, updated_at;
`
	if err := r.db.QueryRowContext(ctx, q, strategy.AccountID, strategy.Name).Scan(&strategy.ID, &strategy.CreatedAt, &strategy.UpdatedAt); err != nil {
		return journal.Strategy{}, err
	}
	return strategy, nil
}

// GetStrategy 查詢策略與其項目（依 order_index 遞增）。
func (r *Repo) GetStrategy(ctx context.Context, id string) (journal.Strategy, error) {
	const q = `
SELECT id, account_id, name, created_at, updated_at
FROM strategies
WHERE id = $1
LIMIT 1;
`
	var s journal.Strategy
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.AccountID, &s.Name, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return journal.Strategy{}, mapNotFound(err)
	}
	items, err := r.listItems(ctx, id)
	if err != nil {
		return journal.Strategy{}, err
	}
	s.Items = items
	return s, nil
}

// ListStrategies 列出帳戶的全部策略（含項目）。
func (r *Repo) ListStrategies(ctx context.Context, accountID string) ([]journal.Strategy, error) {
	const q = `
SELECT id, account_id, name, created_at, updated_at
FROM strategies
WHERE account_id = $1
ORDER BY created_at;
`
	rows, err := r.db.QueryContext(ctx, q, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []journal.Strategy
	for rows.Next() {
		var s journal.Strategy
		if err := rows.Scan(&s.ID, &s.AccountID, &s.Name, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		items, err := r.listItems(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Items = items
	}
	return out, nil
}

func (r *Repo) listItems(ctx context.Context, strategyID string) ([]journal.StrategyItem, error) {
	const q = `
SELECT id, strategy_id, order_index, text
FROM strategy_items
WHERE strategy_id = $1
ORDER BY order_index;
`
	rows, err := r.db.QueryContext(ctx, q, strategyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []journal.StrategyItem
	for rows.Next() {
		var it journal.StrategyItem
		if err := rows.Scan(&it.ID, &it.StrategyID, &it.OrderIndex, &it.Text); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// UpdateStrategy 更新策略名稱。
func (r *Repo) UpdateStrategy(ctx context.Context, strategy journal.Strategy) error {
	const q = `
UPDATE strategies SET name = $2, updated_at = NOW() WHERE id = $1;
`
	res, err := r.db.ExecContext(ctx, q, strategy.ID, strategy.Name)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// DeleteStrategy 刪除策略與其項目（CASCADE）。
func (r *Repo) DeleteStrategy(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM strategies WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// CreateStrategyItem 新增清單項目。
func (r *Repo) CreateStrategyItem(ctx context.Context, item journal.StrategyItem) (journal.StrategyItem, error) {
	const q = `
INSERT INTO strategy_items (strategy_id, order_index, text)
VALUES ($1, $2, $3)
RETURNING id;
`
	if err := r.db.QueryRowContext(ctx, q, item.StrategyID, item.OrderIndex, item.Text).Scan(&item.ID); err != nil {
		return journal.StrategyItem{}, err
	}
	return item, nil
}

// GetStrategyItem 查詢單一清單項目。
func (r *Repo) GetStrategyItem(ctx context.Context, id string) (journal.StrategyItem, error) {
	const q = `
SELECT id, strategy_id, order_index, text
FROM strategy_items
WHERE id = $1
LIMIT 1;
`
	var it journal.StrategyItem
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&it.ID, &it.StrategyID, &it.OrderIndex, &it.Text); err != nil {
		return journal.StrategyItem{}, mapNotFound(err)
	}
	return it, nil
}

// DeleteStrategyItem 刪除清單項目與其勾選紀錄（CASCADE）。
func (r *Repo) DeleteStrategyItem(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM strategy_items WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// ListChecklist 查詢某日全部勾選狀態。
func (r *Repo) ListChecklist(ctx context.Context, accountID, date string) ([]journal.ChecklistState, error) {
	const q = `
SELECT id, account_id, check_date, strategy_id, item_id, checked
FROM checklist_state
WHERE account_id = $1 AND check_date = $2
ORDER BY strategy_id, item_id;
`
	rows, err := r.db.QueryContext(ctx, q, accountID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []journal.ChecklistState
	for rows.Next() {
		var st journal.ChecklistState
		if err := rows.Scan(&st.ID, &st.AccountID, &st.Date, &st.StrategyID, &st.ItemID, &st.Checked); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

// SetChecklist 以 (account_id, check_date, item_id) 作為唯一鍵寫入勾選狀態。
func (r *Repo) SetChecklist(ctx context.Context, state journal.ChecklistState) (journal.ChecklistState, error) {
	const q = `
INSERT INTO checklist_state (account_id, check_date, strategy_id, item_id, checked)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (account_id, check_date, item_id)
DO UPDATE SET checked = EXCLUDED.checked
RETURNING id;
`
	if err := r.db.QueryRowContext(ctx, q, state.AccountID, state.Date, state.StrategyID, state.ItemID, state.Checked).Scan(&state.ID); err != nil {
		return journal.ChecklistState{}, err
	}
	return state, nil
}

// CreateScreenshot 新增截圖紀錄。
func (r *Repo) CreateScreenshot(ctx context.Context, shot journal.Screenshot) (journal.Screenshot, error) {
	const q = `
INSERT INTO screenshots (account_id, shot_date, trade_id, file_url, description)
VALUES ($1, $2, NULLIF($3, ''), $4, $5)
RETURNING id, created_at;
`
	if err := r.db.QueryRowContext(ctx, q, shot.AccountID, shot.Date, shot.TradeID, shot.FileURL, shot.Description).Scan(&shot.ID, &shot.CreatedAt); err != nil {
		return journal.Screenshot{}, err
	}
	return shot, nil
}

// GetScreenshot 查詢單張截圖。
func (r *Repo) GetScreenshot(ctx context.Context, id string) (journal.Screenshot, error) {
	const q = `
SELECT id, account_id, shot_date, COALESCE(trade_id::text, ''), file_url, description, created_at
FROM screenshots
WHERE id = $1
LIMIT 1;
`
	var s journal.Screenshot
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.AccountID, &s.Date, &s.TradeID, &s.FileURL, &s.Description, &s.CreatedAt); err != nil {
		return journal.Screenshot{}, mapNotFound(err)
	}
	return s, nil
}

// ListScreenshots 列出截圖，date 為空時回傳全帳戶。
func (r *Repo) ListScreenshots(ctx context.Context, accountID, date string) ([]journal.Screenshot, error) {
	const q = `
SELECT id, account_id, shot_date, COALESCE(trade_id::text, ''), file_url, description, created_at
FROM screenshots
WHERE account_id = $1
AND ($2 = '' OR shot_date = $2)
ORDER BY shot_date, created_at;
`
	rows, err := r.db.QueryContext(ctx, q, accountID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []journal.Screenshot
	for rows.Next() {
		var s journal.Screenshot
		if err := rows.Scan(&s.ID, &s.AccountID, &s.Date, &s.TradeID, &s.FileURL, &s.Description, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// DeleteScreenshot 刪除截圖紀錄。
func (r *Repo) DeleteScreenshot(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM screenshots WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
