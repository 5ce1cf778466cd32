package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/constants"
	attendancemodel "kursusku_backend/internals/features/school/attendance/model"
	schedulemodel "kursusku_backend/internals/features/school/schedules/model"
)

// MinutesOfDay mengubah jam menjadi menit sejak tengah malam.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// SlotOpenAt: true kalau "now" jatuh di dalam salah satu slot
// (inklusif di kedua ujung).
func SlotOpenAt(slots []schedulemodel.ScheduleModel, now time.Time) bool {
	minutes := MinutesOfDay(now)
	for _, s := range slots {
		if minutes >= s.ScheduleStartTime.Minutes() && minutes <= s.ScheduleEndTime.Minutes() {
			return true
		}
	}
	return false
}

// WindowState: hasil pemeriksaan jendela absensi satu grup.
type WindowState struct {
	Open          bool
	Reason        string
	Day           string
	AlreadyMarked bool
}

// CheckWindow memeriksa apakah absensi grup bisa dibuka sekarang:
// ada slot jadwal di hari ini, jam sekarang di dalam slot, dan
// grup belum diabsen pada tanggal hari ini.
func CheckWindow(ctx context.Context, db *gorm.DB, groupID uuid.UUID, now time.Time) (WindowState, error) {
	day := constants.DayFromWeekday(now.Weekday())
	state := WindowState{Day: day}
	if day == "" {
		state.Reason = "Tidak ada jadwal di hari Minggu"
		return state, nil
	}

	var slots []schedulemodel.ScheduleModel
	if err := db.WithContext(ctx).
		Where("schedule_group_id = ? AND schedule_day = ?", groupID, day).
		Find(&slots).Error; err != nil {
		return state, err
	}
	if len(slots) == 0 {
		state.Reason = "Grup tidak punya jadwal hari ini"
		return state, nil
	}
	if !SlotOpenAt(slots, now) {
		state.Reason = "Di luar jam pelajaran"
		return state, nil
	}

	var count int64
	if err := db.WithContext(ctx).Model(&attendancemodel.AttendanceModel{}).
		Where("attendance_group_id = ? AND attendance_date = ?", groupID, now.Format("2006-01-02")).
		Count(&count).Error; err != nil {
		return state, err
	}
	if count > 0 {
		state.AlreadyMarked = true
		state.Reason = "Absensi hari ini sudah diisi"
		return state, nil
	}

	state.Open = true
	return state, nil
}
