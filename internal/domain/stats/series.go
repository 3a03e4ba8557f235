package stats

import (
	"sort"
	"time"

	"trade-journal/internal/domain/journal"
)

// CurvePoint is one day on the cumulative P&L curve.
type CurvePoint struct {
	Date          string  `json:"date"`
	CumulativePnl float64 `json:"cumulative_pnl"`
}

// DailyPoint is one day's net P&L. Pnl is nil on days with no matching
// trades, which consumers must keep distinct from a day that netted to zero.
type DailyPoint struct {
	Date string   `json:"date"`
	Pnl  *float64 `json:"pnl"`
}

// EquityCurve returns the running cumulative P&L for every calendar day in
// the resolved range, including days without trades. Trades are attributed to
// their session date.
func (e *Engine) EquityCurve(trades []journal.Trade, f Filter) []CurvePoint {
	filtered := e.FilterTrades(trades, f)
	grouped := groupBySessionDate(filtered)
	days := e.continuousDates(f, sortedSessionDates(filtered))
	if len(days) == 0 {
		return nil
	}
	points := make([]CurvePoint, 0, len(days))
	cumulative := 0.0
	for _, day := range days {
		cumulative += grouped[day]
		points = append(points, CurvePoint{Date: day, CumulativePnl: round2(cumulative)})
	}
	return points
}

// DailyPnl returns each day's net P&L over the resolved range, nil for days
// without trades.
func (e *Engine) DailyPnl(trades []journal.Trade, f Filter) []DailyPoint {
	filtered := e.FilterTrades(trades, f)
	grouped := groupBySessionDate(filtered)
	days := e.continuousDates(f, sortedSessionDates(filtered))
	if len(days) == 0 {
		return nil
	}
	points := make([]DailyPoint, 0, len(days))
	for _, day := range days {
		p := DailyPoint{Date: day}
		if pnl, ok := grouped[day]; ok {
			v := round2(pnl)
			p.Pnl = &v
		}
		points = append(points, p)
	}
	return points
}

// resolveRange picks the concrete [start, end] the daily axis spans: explicit
// filter bounds win, otherwise the filtered trades' first/last session date,
// otherwise today. Both ends are clamped to the current session date so the
// axis never extends into the future, and an inverted start collapses to end.
func (e *Engine) resolveRange(f Filter, tradeDates []string) (string, string) {
	today := e.CurrentSessionDate()
	first, last := today, today
	if len(tradeDates) > 0 {
		first = tradeDates[0]
		last = tradeDates[len(tradeDates)-1]
	}
	start, end := f.Start, f.End
	if start == "" {
		start = first
	}
	if end == "" {
		end = last
	}
	if end > today {
		end = today
	}
	if start > today {
		start = today
	}
	if start > end {
		start = end
	}
	return start, end
}

// continuousDates expands the resolved range into every calendar day it
// covers, inclusive. Unparseable bounds yield an empty axis.
func (e *Engine) continuousDates(f Filter, tradeDates []string) []string {
	start, end := e.resolveRange(f, tradeDates)
	from, err := time.Parse(isoDate, start)
	if err != nil {
		return nil
	}
	to, err := time.Parse(isoDate, end)
	if err != nil {
		return nil
	}
	var days []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(isoDate))
	}
	return days
}

func groupBySessionDate(trades []journal.Trade) map[string]float64 {
	grouped := make(map[string]float64, len(trades))
	for _, t := range trades {
		grouped[SessionDate(t.Date, t.Time)] += t.Pnl
	}
	return grouped
}

func sortedSessionDates(trades []journal.Trade) []string {
	seen := make(map[string]struct{}, len(trades))
	var dates []string
	for _, t := range trades {
		d := SessionDate(t.Date, t.Time)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}
