package timeline

import "time"

// resolve implements the resolution order shared by Clip, Event and Movie:
// an explicitly set value wins, a value derived from children is used when
// any exist, and the fallback covers the empty case.
func resolve[T any](explicit *T, children int, derive func() T, fallback func() T) T {
	if explicit != nil {
		return *explicit
	}
	if children > 0 {
		return derive()
	}
	return fallback()
}

func nowUTC() time.Time {
	return time.Now().UTC()
}

// secondsDuration converts a duration in seconds to a time.Duration.
func secondsDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// compareTimes orders timestamps for the stable child sorts.
func compareTimes(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}
