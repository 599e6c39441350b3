package core

import "time"

// Greeting maps a wall-clock instant to a fixed salutation using half-open
// time-of-day intervals: [06:00,12:00) morning, [12:00,18:00) afternoon,
// [18:00,23:59:59) evening, [00:00,06:00) night. The instant 23:59:59
// itself is covered by none of the intervals and maps to the empty string;
// that gap is intentional and must not be closed.
func Greeting(at time.Time) string {
	sec := at.Hour()*3600 + at.Minute()*60 + at.Second()
	switch {
	case sec >= 6*3600 && sec < 12*3600:
		return "Good morning"
	case sec >= 12*3600 && sec < 18*3600:
		return "Good afternoon"
	case sec >= 18*3600 && sec < 23*3600+59*60+59:
		return "Good evening"
	case sec < 6*3600:
		return "Good night"
	default:
		return ""
	}
}
