package service

import (
	"testing"
	"time"

	schedulemodel "kursusku_backend/internals/features/school/schedules/model"
	"kursusku_backend/internals/helpers/dbtime"
)

func mustTod(t *testing.T, s string) dbtime.Tod {
	t.Helper()
	tod, err := dbtime.Parse(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return tod
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 2, hour, minute, 0, 0, time.UTC) // Senin
}

func TestSlotOpenAt(t *testing.T) {
	slots := []schedulemodel.ScheduleModel{
		{ScheduleStartTime: mustTod(t, "09:00"), ScheduleEndTime: mustTod(t, "10:00")},
		{ScheduleStartTime: mustTod(t, "14:00"), ScheduleEndTime: mustTod(t, "15:30")},
	}

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"sebelum slot pagi", at(8, 59), false},
		{"tepat jam mulai", at(9, 0), true},
		{"di tengah slot", at(9, 30), true},
		{"tepat jam selesai", at(10, 0), true},
		{"setelah slot pagi", at(10, 1), false},
		{"di slot siang", at(14, 45), true},
		{"setelah semua slot", at(16, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SlotOpenAt(slots, tt.now); got != tt.want {
				t.Errorf("SlotOpenAt(%02d:%02d) = %v, want %v",
					tt.now.Hour(), tt.now.Minute(), got, tt.want)
			}
		})
	}
}

func TestSlotOpenAtTanpaSlot(t *testing.T) {
	if SlotOpenAt(nil, at(9, 0)) {
		t.Error("tanpa slot harus selalu tertutup")
	}
}

func TestMinutesOfDay(t *testing.T) {
	if got := MinutesOfDay(at(9, 30)); got != 570 {
		t.Errorf("MinutesOfDay(09:30) = %d, want 570", got)
	}
	if got := MinutesOfDay(at(0, 0)); got != 0 {
		t.Errorf("MinutesOfDay(00:00) = %d, want 0", got)
	}
}
