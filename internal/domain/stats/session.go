package stats

import (
	"strconv"
	"strings"
	"time"
)

// Trades logged at or after 18:00 belong to the next trading session, so a
// position journaled at 23:50 on Monday counts toward Tuesday's session.
const sessionCutoffMinutes = 18 * 60

const isoDate = "2006-01-02"

// Engine computes journal statistics over an in-memory trade snapshot.
// It holds no state besides the clock and is safe to share across calls.
type Engine struct {
	now func() time.Time
}

// NewEngine creates a stats engine backed by the wall clock.
func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// SessionDate maps a trade's calendar date and clock time to the trading
// session it belongs to. Times at or past the 18:00 cutoff roll the date
// forward one calendar day (UTC arithmetic, so month and year boundaries are
// handled). A malformed or empty time counts as minute zero; a malformed date
// passes through unchanged.
func SessionDate(date, clock string) string {
	if date == "" {
		return date
	}
	if minutesOfDay(clock) >= sessionCutoffMinutes {
		return shiftDate(date, 1)
	}
	return date
}

// CurrentSessionDate applies the session cutoff rule to the current wall
// clock moment. Trades dated after this never count toward any aggregate.
func (e *Engine) CurrentSessionDate() string {
	now := e.now()
	return SessionDate(now.Format(isoDate), now.Format("15:04"))
}

// minutesOfDay parses HH:MM into minutes since midnight. Anything that does
// not parse degrades to zero rather than failing.
func minutesOfDay(clock string) int {
	if clock == "" {
		return 0
	}
	hourStr, minuteStr, found := strings.Cut(clock, ":")
	if !found {
		minuteStr = "0"
	}
	hours, err := strconv.Atoi(hourStr)
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(minuteStr))
	if err != nil {
		return 0
	}
	return hours*60 + minutes
}

// shiftDate moves an ISO date by the given number of days. Unparseable input
// is returned unchanged.
func shiftDate(date string, days int) string {
	d, err := time.Parse(isoDate, date)
	if err != nil {
		return date
	}
	return d.AddDate(0, 0, days).Format(isoDate)
}
