package debugtools

import "time"

const timestampLayout = "15:04:05"

// Timestamp formats t in local time as HH:MM:SS.
func Timestamp(t time.Time) string {
	return t.Local().Format(timestampLayout)
}
