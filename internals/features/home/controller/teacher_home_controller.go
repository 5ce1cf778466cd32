package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/home/service"
	groupmodel "kursusku_backend/internals/features/school/groups/model"
	groupservice "kursusku_backend/internals/features/school/groups/service"
	quizservice "kursusku_backend/internals/features/school/quizzes/service"
	helper "kursusku_backend/internals/helpers"
	"kursusku_backend/internals/helpers/dbtime"
)

type TeacherHomeController struct {
	DB *gorm.DB
}

func NewTeacherHomeController(db *gorm.DB) *TeacherHomeController {
	return &TeacherHomeController{DB: db}
}

// =============================
// 🏠 Dashboard teacher: student dikelompokkan per level
// =============================
func (ctrl *TeacherHomeController) Home(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	groupIDs, err := groupservice.TeacherGroupIDs(c.Context(), ctrl.DB, teacherID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil grup")
	}

	students := make(map[uuid.UUID]bool)
	if len(groupIDs) > 0 {
		var ids []uuid.UUID
		if err := ctrl.DB.WithContext(c.Context()).Model(&groupmodel.GroupStudentMembershipModel{}).
			Where("membership_group_id IN ?", groupIDs).
			Distinct().
			Pluck("membership_student_id", &ids).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil student")
		}
		for _, id := range ids {
			students[id] = true
		}
	}

	scores, err := service.ComputeStudentScores(c.Context(), ctrl.DB, students)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung level")
	}

	good := []service.StudentScore{}
	average := []service.StudentScore{}
	weak := []service.StudentScore{}
	ungraded := []service.StudentScore{}
	for _, s := range scores {
		if !s.HasContent {
			ungraded = append(ungraded, s)
			continue
		}
		switch s.Level {
		case quizservice.LevelGood:
			good = append(good, s)
		case quizservice.LevelAverage:
			average = append(average, s)
		default:
			weak = append(weak, s)
		}
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"total":      len(scores),
		"good":       good,
		"average":    average,
		"weak":       weak,
		"unassessed": ungraded,
	})
}

// =============================
// 🔔 Pengingat teacher (jawaban belum dinilai)
// =============================
func (ctrl *TeacherHomeController) Notifications(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	notifications, err := service.BuildTeacherNotifications(c.Context(), ctrl.DB, teacherID, dbtime.NowLocal())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengingat")
	}
	return helper.JsonOK(c, "OK", fiber.Map{
		"notifications": notifications,
		"count":         len(notifications),
	})
}
