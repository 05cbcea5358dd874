package utils

import "time"

// NowMillis returns the current time as epoch milliseconds, the unit used by
// every *Created field.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// FormatMillis renders an epoch-millisecond timestamp in Bangladesh time.
func FormatMillis(millis int64) string {
	location := time.FixedZone("BST", 6*60*60)
	return time.UnixMilli(millis).In(location).Format("02 January 2006, 15:04 MST")
}
