package constants

import (
	"testing"
	"time"
)

func TestDayFromWeekday(t *testing.T) {
	tests := []struct {
		weekday time.Weekday
		want    string
	}{
		{time.Monday, DayMonday},
		{time.Wednesday, DayWednesday},
		{time.Saturday, DaySaturday},
		{time.Sunday, ""},
	}
	for _, tt := range tests {
		if got := DayFromWeekday(tt.weekday); got != tt.want {
			t.Errorf("DayFromWeekday(%v) = %q, want %q", tt.weekday, got, tt.want)
		}
	}
}

func TestNormalizeDay(t *testing.T) {
	if got := NormalizeDay("  Monday "); got != "monday" {
		t.Errorf("NormalizeDay = %q, want %q", got, "monday")
	}
}

func TestIsValidScheduleDay(t *testing.T) {
	for _, d := range ScheduleDays {
		if !IsValidScheduleDay(d) {
			t.Errorf("%q harus valid", d)
		}
	}
	if IsValidScheduleDay("sunday") {
		t.Error("minggu bukan hari jadwal")
	}
	if IsValidScheduleDay("Monday") {
		t.Error("validasi harus setelah normalisasi, bukan di sini")
	}
}
