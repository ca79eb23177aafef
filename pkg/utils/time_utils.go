package utils

import "time"

// Nepal time (NPT, +05:45)
var nptLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Kathmandu"); err == nil {
		return loc
	}
	return time.FixedZone("NPT", 5*3600+45*60)
}()

func NowUnixSeconds() int64 { return time.Now().Unix() }

// FromUnixSeconds converts an epoch value in seconds to Nepal time.
// Returns zero time if t<=0 to let callers decide how to render.
func FromUnixSeconds(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(nptLoc)
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(nptLoc).Format(time.RFC3339)
}

func FormatDisplay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(nptLoc).Format("2006-01-02 15:04")
}
