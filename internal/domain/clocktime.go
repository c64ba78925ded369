package domain

import "fmt"

// ParseClock parses a "HH:MM" 24-hour wall-clock string into a minute-of-day
// offset in [0, 1439]. Malformed input is rejected. There is no date or
// timezone component; blocks never span midnight.
func ParseClock(t string) (int, error) {
	if len(t) != 5 || t[2] != ':' {
		return 0, fmt.Errorf("invalid clock time %q: want HH:MM", t)
	}
	h, ok1 := twoDigits(t[0], t[1])
	m, ok2 := twoDigits(t[3], t[4])
	if !ok1 || !ok2 || h > 23 || m > 59 {
		return 0, fmt.Errorf("invalid clock time %q: want HH:MM", t)
	}
	return h*60 + m, nil
}

// MinuteOf converts an already-validated "HH:MM" string to its minute-of-day
// offset. Malformed input clamps to 0 rather than panicking; boundaries that
// accept user or gateway input must validate with ParseClock first.
func MinuteOf(t string) int {
	m, err := ParseClock(t)
	if err != nil {
		return 0
	}
	return m
}

// FormatClock renders a minute-of-day offset as "HH:MM". Out-of-range values
// clamp into [0, 1439].
func FormatClock(m int) string {
	if m < 0 {
		m = 0
	}
	if m > 23*60+59 {
		m = 23*60 + 59
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}
