package stats

import (
	"math"

	"trade-journal/internal/domain/journal"
)

// Summary holds the scalar dashboard metrics for a filtered trade set.
// Monetary and ratio values are rounded to two decimals, WinRate to one.
type Summary struct {
	NetPnl         float64 `json:"net_pnl"`
	WinRate        float64 `json:"win_rate"`
	WinCount       int     `json:"win_count"`
	LossCount      int     `json:"loss_count"`
	BreakevenCount int     `json:"breakeven_count"`
	ProfitFactor   float64 `json:"profit_factor"`
	TotalWinning   float64 `json:"total_winning"`
	TotalLosing    float64 `json:"total_losing"`
	AvgRiskReward  float64 `json:"avg_risk_reward"`
	AvgWin         float64 `json:"avg_win"`
	AvgLoss        float64 `json:"avg_loss"`
}

// Summarize filters the trades and computes the dashboard summary. An empty
// filtered set yields the zero Summary; every ratio has an explicit
// zero-denominator fallback, so the result never carries NaN or Inf.
//
// When there are no losing trades the profit factor is reported as the gross
// winning amount itself rather than infinity. That convention is kept for
// continuity with how the dashboard always displayed it.
func (e *Engine) Summarize(trades []journal.Trade, f Filter) Summary {
	filtered := e.FilterTrades(trades, f)
	if len(filtered) == 0 {
		return Summary{}
	}

	var s Summary
	var netPnl, totalWinning, totalLosing, totalRR float64
	for _, t := range filtered {
		netPnl += t.Pnl
		totalRR += t.RiskRewardR
		switch t.Result {
		case journal.ResultWin:
			s.WinCount++
			totalWinning += t.Pnl
		case journal.ResultLoss:
			s.LossCount++
			totalLosing += t.Pnl
		case journal.ResultBreakeven:
			s.BreakevenCount++
		}
	}

	profitFactor := totalWinning
	if totalLosing != 0 {
		profitFactor = totalWinning / math.Abs(totalLosing)
	}
	avgWin := 0.0
	if s.WinCount > 0 {
		avgWin = totalWinning / float64(s.WinCount)
	}
	avgLoss := 0.0
	if s.LossCount > 0 {
		avgLoss = math.Abs(totalLosing) / float64(s.LossCount)
	}
	winRate := 0.0
	// Breakeven trades stay out of the win-rate denominator.
	if denom := s.WinCount + s.LossCount; denom > 0 {
		winRate = float64(s.WinCount) / float64(denom) * 100
	}

	s.NetPnl = round2(netPnl)
	s.WinRate = round1(winRate)
	s.ProfitFactor = round2(profitFactor)
	s.TotalWinning = round2(totalWinning)
	s.TotalLosing = round2(totalLosing)
	s.AvgRiskReward = round2(totalRR / float64(len(filtered)))
	s.AvgWin = round2(avgWin)
	s.AvgLoss = round2(avgLoss)
	return s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
