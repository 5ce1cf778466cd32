package controller

import (
	"math"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/home/service"
	assignmentmodel "kursusku_backend/internals/features/school/assignments/model"
	groupservice "kursusku_backend/internals/features/school/groups/service"
	quizmodel "kursusku_backend/internals/features/school/quizzes/model"
	quizservice "kursusku_backend/internals/features/school/quizzes/service"
	helper "kursusku_backend/internals/helpers"
	"kursusku_backend/internals/helpers/dbtime"
)

type StudentHomeController struct {
	DB *gorm.DB
}

func NewStudentHomeController(db *gorm.DB) *StudentHomeController {
	return &StudentHomeController{DB: db}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// =============================
// 🏠 Dashboard student: progres, level, dan peringkat
// =============================
func (ctrl *StudentHomeController) Home(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	fences, err := groupservice.StudentFences(c.Context(), ctrl.DB, studentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil grup")
	}

	// progres tugas
	var totalAssignments int64
	aq := ctrl.DB.WithContext(c.Context()).Model(&assignmentmodel.AssignmentModel{})
	aq = groupservice.ApplyFenceScope(aq, fences, "assignment_group_id", "assignment_created_at")
	if err := aq.Count(&totalAssignments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung tugas")
	}

	var completedAssignments int64
	if totalAssignments > 0 {
		sq := ctrl.DB.WithContext(c.Context()).
			Table("assignment_submissions").
			Joins("JOIN assignments ON assignments.assignment_id = assignment_submissions.submission_assignment_id").
			Where("submission_student_id = ?", studentID)
		sq = groupservice.ApplyFenceScope(sq, fences, "assignments.assignment_group_id", "assignments.assignment_created_at")
		if err := sq.Count(&completedAssignments).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung jawaban")
		}
	}

	// progres kuis
	var totalQuizzes int64
	qq := ctrl.DB.WithContext(c.Context()).Model(&quizmodel.QuizModel{})
	qq = groupservice.ApplyFenceScope(qq, fences, "quiz_group_id", "quiz_created_at")
	if err := qq.Count(&totalQuizzes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung kuis")
	}

	var completedQuizzes int64
	if totalQuizzes > 0 {
		rq := ctrl.DB.WithContext(c.Context()).
			Table("student_quiz_results").
			Joins("JOIN quizzes ON quizzes.quiz_id = student_quiz_results.result_quiz_id").
			Where("result_student_id = ?", studentID)
		rq = groupservice.ApplyFenceScope(rq, fences, "quizzes.quiz_group_id", "quizzes.quiz_created_at")
		if err := rq.Count(&completedQuizzes).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung hasil kuis")
		}
	}

	assignmentPercent := 0.0
	if totalAssignments > 0 {
		assignmentPercent = round1(float64(completedAssignments) / float64(totalAssignments) * 100)
	}
	quizPercent := 0.0
	if totalQuizzes > 0 {
		quizPercent = round1(float64(completedQuizzes) / float64(totalQuizzes) * 100)
	}

	// level di antara teman segrup
	peers, err := service.PeerIDs(c.Context(), ctrl.DB, studentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil teman segrup")
	}
	peerScores, err := service.ComputeStudentScores(c.Context(), ctrl.DB, peers)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung level")
	}
	good, average, weak := service.LevelCounts(peerScores)

	myLevel := "unknown"
	if me := service.PlaceOf(peerScores, studentID); me != nil && me.HasContent {
		myLevel = quizservice.LevelFor(me.Percent)
	}

	// peringkat global
	allScores, err := service.ComputeStudentScores(c.Context(), ctrl.DB, nil)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung peringkat")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"assignment_completion_percent": assignmentPercent,
		"assignment_missing_percent":    round1(100 - assignmentPercent),
		"quiz_completion_percent":       quizPercent,
		"quiz_missing_percent":          round1(100 - quizPercent),
		"has_assignments":               totalAssignments > 0,
		"has_quizzes":                   totalQuizzes > 0,
		"level_total":                   len(peerScores),
		"level_good":                    good,
		"level_average":                 average,
		"level_weak":                    weak,
		"student_level":                 myLevel,
		"top_students":                  service.TopN(allScores, 10),
		"student_place":                 service.PlaceOf(allScores, studentID),
	})
}

// =============================
// 🔔 Pengingat student
// =============================
func (ctrl *StudentHomeController) Notifications(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	notifications, err := service.BuildStudentNotifications(c.Context(), ctrl.DB, studentID, dbtime.NowLocal())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengingat")
	}
	return helper.JsonOK(c, "OK", notifications)
}
