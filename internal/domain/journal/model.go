package journal

import (
	"fmt"
	"time"
)

// Side 表示交易方向。
type Side string

const (
	SideLong  Side = "LONG"
	SideShort Side = "SHORT"
)

// Result 表示單筆交易結果。
type Result string

const (
	ResultWin       Result = "WIN"
	ResultLoss      Result = "LOSS"
	ResultBreakeven Result = "BREAKEVEN"
)

// Account 為使用者日誌資料的分區（一個帳戶一份交易與筆記）。
type Account struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate 檢查帳戶欄位。
func (a Account) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("account name is required")
	}
	return nil
}

// Trade 為使用者手動登錄的單筆交易紀錄。
// Date 採 YYYY-MM-DD，Time 採 24 小時制 HH:MM。
type Trade struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"account_id"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Instrument  string    `json:"instrument"`
	Side        Side      `json:"side"`
	Result      Result    `json:"result"`
	Contracts   int       `json:"contracts"`
	RiskRewardR float64   `json:"risk_reward_r"`
	Pnl         float64   `json:"pnl"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate 檢查交易欄位，並在資料進入點維持 result 與 pnl 的一致性：
// WIN 不可為負、LOSS 不可為正、BREAKEVEN 必須為 0。
// 統計引擎本身信任輸入，不重複做這層檢查。
func (t Trade) Validate() error {
	if _, err := time.Parse("2006-01-02", t.Date); err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD")
	}
	if t.Time != "" {
		if _, err := time.Parse("15:04", t.Time); err != nil {
			return fmt.Errorf("time must be HH:MM")
		}
	}
	if t.Instrument == "" {
		return fmt.Errorf("instrument is required")
	}
	switch t.Side {
	case SideLong, SideShort:
	default:
		return fmt.Errorf("unsupported side")
	}
	switch t.Result {
	case ResultWin:
		if t.Pnl < 0 {
			return fmt.Errorf("WIN trade cannot have negative pnl")
		}
	case ResultLoss:
		if t.Pnl > 0 {
			return fmt.Errorf("LOSS trade cannot have positive pnl")
		}
	case ResultBreakeven:
		if t.Pnl != 0 {
			return fmt.Errorf("BREAKEVEN trade must have zero pnl")
		}
	default:
		return fmt.Errorf("unsupported result")
	}
	if t.Contracts <= 0 {
		return fmt.Errorf("contracts must be positive")
	}
	if t.RiskRewardR < 0 {
		return fmt.Errorf("risk_reward_r cannot be negative")
	}
	return nil
}

// Entry 為某交易日的日誌筆記，每帳戶每日至多一筆。
type Entry struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	Date      string    `json:"date"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate 檢查日誌欄位。
func (e Entry) Validate() error {
	if _, err := time.Parse("2006-01-02", e.Date); err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD")
	}
	return nil
}

// Strategy 為一份策略檢核清單的標題。
type Strategy struct {
	ID        string         `json:"id"`
	AccountID string         `json:"account_id"`
	Name      string         `json:"name"`
	Items     []StrategyItem `json:"items,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Validate 檢查策略欄位。
func (s Strategy) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("strategy name is required")
	}
	return nil
}

// StrategyItem 為檢核清單中的單一項目。
type StrategyItem struct {
	ID         string `json:"id"`
	StrategyID string `json:"strategy_id"`
	OrderIndex int    `json:"order_index"`
	Text       string `json:"text"`
}

// ChecklistState 記錄某日某項目是否勾選。
type ChecklistState struct {
	ID         string `json:"id"`
	AccountID  string `json:"account_id"`
	Date       string `json:"date"`
	StrategyID string `json:"strategy_id"`
	ItemID     string `json:"item_id"`
	Checked    bool   `json:"checked"`
}

// Screenshot 為附掛在某日（或某筆交易）的圖表截圖連結。
type Screenshot struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"account_id"`
	Date        string    `json:"date"`
	TradeID     string    `json:"trade_id,omitempty"`
	FileURL     string    `json:"file_url"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Validate 檢查截圖欄位。
func (s Screenshot) Validate() error {
	if _, err := time.Parse("2006-01-02", s.Date); err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD")
	}
	if s.FileURL == "" {
		return fmt.Errorf("file_url is required")
	}
	return nil
}
