package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	assignmentmodel "kursusku_backend/internals/features/school/assignments/model"
	groupmodel "kursusku_backend/internals/features/school/groups/model"
	groupservice "kursusku_backend/internals/features/school/groups/service"
	quizmodel "kursusku_backend/internals/features/school/quizzes/model"
)

// Jendela pengingat: tenggat 3 hari ke depan (student) dan tenggat
// yang lewat maksimal 3 hari lalu (teacher).
const notificationWindow = 72 * time.Hour

type AssignmentNotification struct {
	AssignmentID uuid.UUID `json:"assignment_id"`
	GroupName    string    `json:"group_name"`
	Title        string    `json:"title"`
	Remaining    string    `json:"remaining"` // "X kun, Y soat"
	Deadline     time.Time `json:"deadline"`
}

type QuizNotification struct {
	QuizID    uuid.UUID `json:"quiz_id"`
	GroupName string    `json:"group_name"`
	Title     string    `json:"title"`
}

type StudentNotifications struct {
	Assignments []AssignmentNotification `json:"assignments"`
	Quizzes     []QuizNotification       `json:"quizzes"`
	Total       int                      `json:"total"`
}

type TeacherNotification struct {
	AssignmentID uuid.UUID `json:"assignment_id"`
	GroupName    string    `json:"group_name"`
	Title        string    `json:"title"`
	Message      string    `json:"message"`
}

// FormatRemaining menulis sisa waktu "X kun, Y soat".
func FormatRemaining(until time.Duration) string {
	days := int(until.Hours()) / 24
	hours := int(until.Hours()) % 24
	return fmt.Sprintf("%d kun, %d soat", days, hours)
}

// groupNameMap memuat nama grup sekali untuk sekumpulan id.
func groupNameMap(ctx context.Context, db *gorm.DB, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string)
	if len(ids) == 0 {
		return names, nil
	}
	var groups []groupmodel.GroupModel
	if err := db.WithContext(ctx).Where("group_id IN ?", ids).Find(&groups).Error; err != nil {
		return nil, err
	}
	for _, g := range groups {
		names[g.GroupID] = g.GroupName
	}
	return names, nil
}

// BuildStudentNotifications merangkai pengingat student:
// tugas yang tenggatnya 3 hari ke depan dan belum dikirim, plus kuis
// terlihat yang belum dikerjakan.
func BuildStudentNotifications(ctx context.Context, db *gorm.DB, studentID uuid.UUID, now time.Time) (StudentNotifications, error) {
	out := StudentNotifications{
		Assignments: []AssignmentNotification{},
		Quizzes:     []QuizNotification{},
	}

	fences, err := groupservice.StudentFences(ctx, db, studentID)
	if err != nil {
		return out, err
	}
	if len(fences) == 0 {
		return out, nil
	}
	names, err := groupNameMap(ctx, db, groupservice.GroupIDs(fences))
	if err != nil {
		return out, err
	}

	// tugas dengan tenggat dekat
	var assignments []assignmentmodel.AssignmentModel
	q := db.WithContext(ctx).Model(&assignmentmodel.AssignmentModel{}).
		Where("assignment_deadline BETWEEN ? AND ?", now, now.Add(notificationWindow))
	q = groupservice.ApplyFenceScope(q, fences, "assignment_group_id", "assignment_created_at")
	if err := q.Order("assignment_deadline ASC").Find(&assignments).Error; err != nil {
		return out, err
	}

	var submittedIDs []uuid.UUID
	if err := db.WithContext(ctx).Model(&assignmentmodel.AssignmentSubmissionModel{}).
		Where("submission_student_id = ?", studentID).
		Pluck("submission_assignment_id", &submittedIDs).Error; err != nil {
		return out, err
	}
	submitted := make(map[uuid.UUID]bool, len(submittedIDs))
	for _, id := range submittedIDs {
		submitted[id] = true
	}

	for _, a := range assignments {
		if submitted[a.AssignmentID] {
			continue
		}
		out.Assignments = append(out.Assignments, AssignmentNotification{
			AssignmentID: a.AssignmentID,
			GroupName:    names[a.AssignmentGroupID],
			Title:        a.AssignmentTitle,
			Remaining:    FormatRemaining(a.AssignmentDeadline.Sub(now)),
			Deadline:     a.AssignmentDeadline,
		})
	}

	// kuis terlihat yang belum dikerjakan
	var quizzes []quizmodel.QuizModel
	qq := db.WithContext(ctx).Model(&quizmodel.QuizModel{})
	qq = groupservice.ApplyFenceScope(qq, fences, "quiz_group_id", "quiz_created_at")
	if err := qq.Order("quiz_created_at DESC").Find(&quizzes).Error; err != nil {
		return out, err
	}

	var doneIDs []uuid.UUID
	if err := db.WithContext(ctx).Model(&quizmodel.StudentQuizResultModel{}).
		Where("result_student_id = ?", studentID).
		Pluck("result_quiz_id", &doneIDs).Error; err != nil {
		return out, err
	}
	done := make(map[uuid.UUID]bool, len(doneIDs))
	for _, id := range doneIDs {
		done[id] = true
	}

	for _, quiz := range quizzes {
		if done[quiz.QuizID] {
			continue
		}
		out.Quizzes = append(out.Quizzes, QuizNotification{
			QuizID:    quiz.QuizID,
			GroupName: names[quiz.QuizGroupID],
			Title:     quiz.QuizTitle,
		})
	}

	out.Total = len(out.Assignments) + len(out.Quizzes)
	return out, nil
}

// BuildTeacherNotifications: tugas buatan teacher yang tenggatnya lewat
// maksimal 3 hari lalu, punya jawaban, dan masih ada yang belum dinilai.
func BuildTeacherNotifications(ctx context.Context, db *gorm.DB, teacherID uuid.UUID, now time.Time) ([]TeacherNotification, error) {
	out := []TeacherNotification{}

	var assignments []assignmentmodel.AssignmentModel
	if err := db.WithContext(ctx).
		Where("assignment_created_by = ? AND assignment_deadline < ? AND assignment_deadline >= ?",
			teacherID, now, now.Add(-notificationWindow)).
		Order("assignment_deadline DESC").
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	if len(assignments) == 0 {
		return out, nil
	}

	groupIDs := make([]uuid.UUID, 0, len(assignments))
	for _, a := range assignments {
		groupIDs = append(groupIDs, a.AssignmentGroupID)
	}
	names, err := groupNameMap(ctx, db, groupIDs)
	if err != nil {
		return nil, err
	}

	for _, a := range assignments {
		var total, ungraded int64
		if err := db.WithContext(ctx).Model(&assignmentmodel.AssignmentSubmissionModel{}).
			Where("submission_assignment_id = ?", a.AssignmentID).
			Count(&total).Error; err != nil {
			return nil, err
		}
		if total == 0 {
			continue
		}
		if err := db.WithContext(ctx).Model(&assignmentmodel.AssignmentSubmissionModel{}).
			Where("submission_assignment_id = ? AND submission_grade IS NULL", a.AssignmentID).
			Count(&ungraded).Error; err != nil {
			return nil, err
		}
		if ungraded == 0 {
			continue
		}
		out = append(out, TeacherNotification{
			AssignmentID: a.AssignmentID,
			GroupName:    names[a.AssignmentGroupID],
			Title:        a.AssignmentTitle,
			Message:      "Tenggat sudah lewat, nilai jawaban yang masuk",
		})
	}
	return out, nil
}
