package httpapi

import (
	"strings"
	"time"

	"trade-journal/internal/domain/stats"

	"github.com/gin-gonic/gin"
)

func parseBearer(h string) string {
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

func currentUserID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

func (s *Server) setRefreshCookie(c *gin.Context, token string, expiry time.Time) {
	host, _, _ := strings.Cut(c.Request.Host, ":")
	isLocal := host == "localhost" || host == "127.0.0.1"

	c.SetCookie(
		refreshCookieName,
		token,
		int(time.Until(expiry).Seconds()),
		"/",
		"",
		!isLocal, // Secure: only if not local
		true,     // HttpOnly
	)
}

// parseFilter 從 query string 組出統計過濾條件。無法辨識的值視同未過濾，
// 讓儀表板對舊書籤或手打網址保持寬容。
func parseFilter(c *gin.Context) stats.Filter {
	f := stats.Filter{
		Instrument: strings.TrimSpace(c.Query("instrument")),
	}
	if v := c.Query("start"); isISODate(v) {
		f.Start = v
	}
	if v := c.Query("end"); isISODate(v) {
		f.End = v
	}
	switch b := stats.TimeBucket(strings.ToUpper(c.Query("time_bucket"))); b {
	case stats.Bucket0930, stats.Bucket0945, stats.Bucket1000, stats.Bucket1015, stats.Bucket1030Plus:
		f.Bucket = b
	default:
		f.Bucket = stats.BucketAll
	}
	switch d := stats.Weekday(strings.ToUpper(c.Query("day_of_week"))); d {
	case stats.WeekdayMon, stats.WeekdayTue, stats.WeekdayWed, stats.WeekdayThu, stats.WeekdayFri:
		f.Day = d
	default:
		f.Day = stats.WeekdayAll
	}
	return f
}

func isISODate(s string) bool {
	if s == "" {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
