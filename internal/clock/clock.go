package clock

import "time"

// Clock supplies the local calendar date and wall-clock time. Services sample
// it once per logical operation and thread the values through, so a slow
// gateway response never shifts a partition boundary mid-merge.
type Clock interface {
	// Today returns the local calendar date as "YYYY-MM-DD".
	Today() string

	// NowTime returns the local wall-clock time as "HH:MM".
	NowTime() string
}

// SystemClock reads the process-local time.
type SystemClock struct{}

func (SystemClock) Today() string {
	return time.Now().Format("2006-01-02")
}

func (SystemClock) NowTime() string {
	return time.Now().Format("15:04")
}

// Fixed is a Clock pinned to a single instant, for tests.
type Fixed struct {
	Date string
	Time string
}

func (f Fixed) Today() string   { return f.Date }
func (f Fixed) NowTime() string { return f.Time }
