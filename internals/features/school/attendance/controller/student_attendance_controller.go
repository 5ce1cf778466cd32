package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/school/attendance/dto"
	"kursusku_backend/internals/features/school/attendance/model"
	groupservice "kursusku_backend/internals/features/school/groups/service"
	helper "kursusku_backend/internals/helpers"
)

type StudentAttendanceController struct {
	DB *gorm.DB
}

func NewStudentAttendanceController(db *gorm.DB) *StudentAttendanceController {
	return &StudentAttendanceController{DB: db}
}

// Riwayat kehadiran saya, dikelompokkan per grup.
func (ctrl *StudentAttendanceController) MyAttendance(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	fences, err := groupservice.StudentFences(c.Context(), ctrl.DB, studentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil grup")
	}
	groupIDs := groupservice.GroupIDs(fences)
	if len(groupIDs) == 0 {
		return helper.JsonOK(c, "OK", []fiber.Map{})
	}

	var records []model.AttendanceModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("attendance_student_id = ? AND attendance_group_id IN ?", studentID, groupIDs).
		Order("attendance_date ASC").
		Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kehadiran")
	}

	type groupSummary struct {
		Cells   []dto.AttendanceCellDTO
		Present int
		Absent  int
	}
	byGroup := make(map[string]*groupSummary)
	for _, r := range records {
		key := r.AttendanceGroupID.String()
		if byGroup[key] == nil {
			byGroup[key] = &groupSummary{Cells: []dto.AttendanceCellDTO{}}
		}
		s := byGroup[key]
		s.Cells = append(s.Cells, dto.AttendanceCellDTO{
			Date:    time.Time(r.AttendanceDate).Format("2006-01-02"),
			Present: r.AttendancePresent,
		})
		if r.AttendancePresent {
			s.Present++
		} else {
			s.Absent++
		}
	}

	out := make([]fiber.Map, 0, len(byGroup))
	for _, f := range fences {
		s := byGroup[f.GroupID.String()]
		if s == nil {
			s = &groupSummary{Cells: []dto.AttendanceCellDTO{}}
		}
		out = append(out, fiber.Map{
			"group_id":     f.GroupID,
			"records":      s.Cells,
			"present_days": s.Present,
			"absent_days":  s.Absent,
		})
	}
	return helper.JsonOK(c, "OK", out)
}
