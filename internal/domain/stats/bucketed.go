package stats

import (
	"trade-journal/internal/domain/journal"
)

// RatePoint is a win rate for one fixed bucket.
type RatePoint struct {
	Label   string  `json:"label"`
	WinRate float64 `json:"win_rate"`
}

// ValuePoint is an average P&L for one fixed bucket.
type ValuePoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// WinRateByTimeBucket returns the win rate per intraday window, always five
// points in fixed order; windows without win/loss trades report zero. The
// bucket is taken from the raw clock time.
func (e *Engine) WinRateByTimeBucket(trades []journal.Trade, f Filter) []RatePoint {
	grouped := groupByTimeBucket(e.FilterTrades(trades, f))
	points := make([]RatePoint, 0, len(timeBuckets))
	for _, b := range timeBuckets {
		points = append(points, RatePoint{Label: b.label, WinRate: winRate(grouped[b.key])})
	}
	return points
}

// AvgPnlByTimeBucket returns the mean P&L per intraday window over all
// trades in that window, always five points in fixed order.
func (e *Engine) AvgPnlByTimeBucket(trades []journal.Trade, f Filter) []ValuePoint {
	grouped := groupByTimeBucket(e.FilterTrades(trades, f))
	points := make([]ValuePoint, 0, len(timeBuckets))
	for _, b := range timeBuckets {
		points = append(points, ValuePoint{Label: b.label, Value: avgPnl(grouped[b.key])})
	}
	return points
}

// WinRateByWeekday returns the win rate per trading weekday Monday through
// Friday, keyed on the session date. Weekend sessions are not represented and
// drop out of the grouping.
func (e *Engine) WinRateByWeekday(trades []journal.Trade, f Filter) []RatePoint {
	grouped := groupByWeekday(e.FilterTrades(trades, f))
	points := make([]RatePoint, 0, len(weekdays))
	for _, w := range weekdays {
		points = append(points, RatePoint{Label: w.label, WinRate: winRate(grouped[w.key])})
	}
	return points
}

// AvgPnlByWeekday returns the mean P&L per trading weekday, keyed on the
// session date.
func (e *Engine) AvgPnlByWeekday(trades []journal.Trade, f Filter) []ValuePoint {
	grouped := groupByWeekday(e.FilterTrades(trades, f))
	points := make([]ValuePoint, 0, len(weekdays))
	for _, w := range weekdays {
		points = append(points, ValuePoint{Label: w.label, Value: avgPnl(grouped[w.key])})
	}
	return points
}

func groupByTimeBucket(trades []journal.Trade) map[TimeBucket][]journal.Trade {
	grouped := make(map[TimeBucket][]journal.Trade)
	for _, t := range trades {
		m := minutesOfDay(t.Time)
		for _, b := range timeBuckets {
			if m >= b.start && m < b.end {
				grouped[b.key] = append(grouped[b.key], t)
				break
			}
		}
	}
	return grouped
}

func groupByWeekday(trades []journal.Trade) map[Weekday][]journal.Trade {
	grouped := make(map[Weekday][]journal.Trade)
	for _, t := range trades {
		day := dayKey(SessionDate(t.Date, t.Time))
		if day == "" {
			continue
		}
		grouped[day] = append(grouped[day], t)
	}
	return grouped
}

func winRate(trades []journal.Trade) float64 {
	var wins, losses int
	for _, t := range trades {
		switch t.Result {
		case journal.ResultWin:
			wins++
		case journal.ResultLoss:
			losses++
		}
	}
	denom := wins + losses
	if denom == 0 {
		return 0
	}
	return round1(float64(wins) / float64(denom) * 100)
}

func avgPnl(trades []journal.Trade) float64 {
	if len(trades) == 0 {
		return 0
	}
	var sum float64
	for _, t := range trades {
		sum += t.Pnl
	}
	return round2(sum / float64(len(trades)))
}
