package reports

import (
	"context"
	"fmt"
	"sort"

	appjournal "trade-journal/internal/application/journal"
	"trade-journal/internal/domain/journal"
	"trade-journal/internal/domain/stats"
)

// TradeReader 讀取儀表板所需的帳戶與交易資料。
type TradeReader interface {
	GetAccount(ctx context.Context, id string) (journal.Account, error)
	ListTrades(ctx context.Context, accountID string) ([]journal.Trade, error)
}

// Report 為儀表板一次查詢的完整結果。同一份交易快照算出所有圖表，
// 確保彼此數字一致。
type Report struct {
	Filter        stats.Filter       `json:"filter"`
	Summary       stats.Summary      `json:"summary"`
	EquityCurve   []stats.CurvePoint `json:"equity_curve"`
	DailyPnl      []stats.DailyPoint `json:"daily_pnl"`
	WinRateByTime []stats.RatePoint  `json:"win_rate_by_time"`
	AvgPnlByTime  []stats.ValuePoint `json:"avg_pnl_by_time"`
	WinRateByDay  []stats.RatePoint  `json:"win_rate_by_day"`
	AvgPnlByDay   []stats.ValuePoint `json:"avg_pnl_by_day"`
	Instruments   []string           `json:"instruments"`
	TradeCount    int                `json:"trade_count"`
}

// DashboardUseCase 把帳戶交易轉成儀表板統計。
type DashboardUseCase struct {
	repo  TradeReader
	stats *stats.Engine
}

func NewDashboardUseCase(repo TradeReader) *DashboardUseCase {
	return &DashboardUseCase{
		repo:  repo,
		stats: stats.NewEngine(),
	}
}

// Build 載入帳戶交易一次，套用過濾條件後計算全部儀表板數據。
func (uc *DashboardUseCase) Build(ctx context.Context, userID, accountID string, filter stats.Filter) (Report, error) {
	account, err := uc.repo.GetAccount(ctx, accountID)
	if err != nil {
		return Report{}, err
	}
	if account.UserID != userID {
		return Report{}, appjournal.ErrForbidden
	}

	trades, err := uc.repo.ListTrades(ctx, accountID)
	if err != nil {
		return Report{}, fmt.Errorf("list trades: %w", err)
	}

	report := Report{
		Filter:        filter,
		Summary:       uc.stats.Summarize(trades, filter),
		EquityCurve:   uc.stats.EquityCurve(trades, filter),
		DailyPnl:      uc.stats.DailyPnl(trades, filter),
		WinRateByTime: uc.stats.WinRateByTimeBucket(trades, filter),
		AvgPnlByTime:  uc.stats.AvgPnlByTimeBucket(trades, filter),
		WinRateByDay:  uc.stats.WinRateByWeekday(trades, filter),
		AvgPnlByDay:   uc.stats.AvgPnlByWeekday(trades, filter),
		Instruments:   distinctInstruments(trades),
	}
	report.TradeCount = len(uc.stats.FilterTrades(trades, filter))
	return report, nil
}

// distinctInstruments 取全部交易（不套過濾）出現過的商品，供前端下拉選單。
func distinctInstruments(trades []journal.Trade) []string {
	seen := make(map[string]struct{}, len(trades))
	var out []string
	for _, t := range trades {
		if _, ok := seen[t.Instrument]; ok {
			continue
		}
		seen[t.Instrument] = struct{}{}
		out = append(out, t.Instrument)
	}
	sort.Strings(out)
	return out
}
