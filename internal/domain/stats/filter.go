package stats

import (
	"time"

	"trade-journal/internal/domain/journal"
)

// TimeBucket selects one of the fixed intraday windows, or ALL.
type TimeBucket string

const (
	BucketAll      TimeBucket = "ALL"
	Bucket0930     TimeBucket = "0930_0945"
	Bucket0945     TimeBucket = "0945_1000"
	Bucket1000     TimeBucket = "1000_1015"
	Bucket1015     TimeBucket = "1015_1030"
	Bucket1030Plus TimeBucket = "1030_PLUS"
)

// Weekday selects a trading weekday, or ALL. Weekend session dates never
// match any weekday value.
type Weekday string

const (
	WeekdayAll Weekday = "ALL"
	WeekdayMon Weekday = "MON"
	WeekdayTue Weekday = "TUE"
	WeekdayWed Weekday = "WED"
	WeekdayThu Weekday = "THU"
	WeekdayFri Weekday = "FRI"
)

// Filter narrows which trades contribute to an aggregate. Zero values mean
// unbounded: empty Start/End leave that side of the date range open, and an
// empty (or ALL) bucket, weekday, or instrument matches everything.
type Filter struct {
	Start      string     `json:"start,omitempty"`
	End        string     `json:"end,omitempty"`
	Bucket     TimeBucket `json:"time_bucket,omitempty"`
	Day        Weekday    `json:"day_of_week,omitempty"`
	Instrument string     `json:"instrument,omitempty"`
}

type bucketDef struct {
	key   TimeBucket
	label string
	start int // minutes since midnight, inclusive
	end   int // exclusive
}

const openEnd = 1<<31 - 1

var timeBuckets = []bucketDef{
	{Bucket0930, "9:30-9:45", 9*60 + 30, 9*60 + 45},
	{Bucket0945, "9:45-10:00", 9*60 + 45, 10 * 60},
	{Bucket1000, "10:00-10:15", 10 * 60, 10*60 + 15},
	{Bucket1015, "10:15-10:30", 10*60 + 15, 10*60 + 30},
	{Bucket1030Plus, "10:30+", 10*60 + 30, openEnd},
}

type weekdayDef struct {
	key   Weekday
	label string
	day   time.Weekday
}

var weekdays = []weekdayDef{
	{WeekdayMon, "Monday", time.Monday},
	{WeekdayTue, "Tuesday", time.Tuesday},
	{WeekdayWed, "Wednesday", time.Wednesday},
	{WeekdayThu, "Thursday", time.Thursday},
	{WeekdayFri, "Friday", time.Friday},
}

func bucketByKey(key TimeBucket) (bucketDef, bool) {
	for _, b := range timeBuckets {
		if b.key == key {
			return b, true
		}
	}
	return bucketDef{}, false
}

// dayKey returns the weekday of an ISO session date, or "" for weekends and
// unparseable dates. Empty never equals any Weekday constant, so such trades
// simply fall out of weekday-keyed grouping.
func dayKey(date string) Weekday {
	d, err := time.Parse(isoDate, date)
	if err != nil {
		return ""
	}
	for _, w := range weekdays {
		if w.day == d.Weekday() {
			return w.key
		}
	}
	return ""
}

// FilterTrades returns the stable subsequence of trades matching every
// predicate in the filter. Date range and weekday are judged on the session
// date; the time bucket is judged on the raw clock time. Trades whose session
// date lies beyond the current session date are always dropped.
func (e *Engine) FilterTrades(trades []journal.Trade, f Filter) []journal.Trade {
	today := e.CurrentSessionDate()
	out := make([]journal.Trade, 0, len(trades))
	for _, t := range trades {
		session := SessionDate(t.Date, t.Time)
		if session > today {
			continue
		}
		if f.Start != "" && session < f.Start {
			continue
		}
		if f.End != "" && session > f.End {
			continue
		}
		if f.Instrument != "" && f.Instrument != "ALL" && t.Instrument != f.Instrument {
			continue
		}
		if f.Bucket != "" && f.Bucket != BucketAll {
			if b, ok := bucketByKey(f.Bucket); ok {
				m := minutesOfDay(t.Time)
				if m < b.start || m >= b.end {
					continue
				}
			}
		}
		if f.Day != "" && f.Day != WeekdayAll {
			if dayKey(session) != f.Day {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}
