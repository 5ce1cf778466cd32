package constants

import (
	"strings"
	"time"
)

// Hari jadwal pelajaran (Minggu libur, tidak ada slot)
const (
	DayMonday    = "monday"
	DayTuesday   = "tuesday"
	DayWednesday = "wednesday"
	DayThursday  = "thursday"
	DayFriday    = "friday"
	DaySaturday  = "saturday"
)

// Urutan tampilan tabel jadwal
var ScheduleDays = []string{
	DayMonday,
	DayTuesday,
	DayWednesday,
	DayThursday,
	DayFriday,
	DaySaturday,
}

func IsValidScheduleDay(day string) bool {
	for _, d := range ScheduleDays {
		if d == day {
			return true
		}
	}
	return false
}

// DayFromWeekday memetakan time.Weekday ke nama hari jadwal.
// Minggu mengembalikan string kosong.
func DayFromWeekday(w time.Weekday) string {
	switch w {
	case time.Monday:
		return DayMonday
	case time.Tuesday:
		return DayTuesday
	case time.Wednesday:
		return DayWednesday
	case time.Thursday:
		return DayThursday
	case time.Friday:
		return DayFriday
	case time.Saturday:
		return DaySaturday
	default:
		return ""
	}
}

func NormalizeDay(day string) string {
	return strings.ToLower(strings.TrimSpace(day))
}
