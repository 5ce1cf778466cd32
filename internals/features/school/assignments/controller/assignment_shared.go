package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/constants"
	"kursusku_backend/internals/features/school/assignments/dto"
	"kursusku_backend/internals/features/school/assignments/model"
	helper "kursusku_backend/internals/helpers"
	"kursusku_backend/internals/helpers/dbtime"
)

const maxAssignmentFileSize = 20 * 1024 * 1024 // 20MB

// uploadAssignmentFile mengunggah lampiran dari field form tertentu.
// Tidak ada file → (nil, nil, nil).
func uploadAssignmentFile(c *fiber.Ctx, field, folder string) (*string, *int, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil || fileHeader == nil {
		return nil, nil, nil
	}
	if fileHeader.Size > maxAssignmentFileSize {
		return nil, nil, fiber.NewError(fiber.StatusRequestEntityTooLarge, "Ukuran file maksimal 20MB")
	}
	url, err := helper.UploadFileToStorage(folder, fileHeader)
	if err != nil {
		return nil, nil, fiber.NewError(fiber.StatusBadGateway, "Gagal mengunggah file")
	}
	fileType := constants.DetectFileTypeFromExt(fileHeader.Filename)
	return &url, &fileType, nil
}

// deleteStoredFile menghapus lampiran lama dari storage (best effort).
func deleteStoredFile(url *string) {
	if url == nil || strings.TrimSpace(*url) == "" {
		return
	}
	if bucket, path, err := helper.ExtractStoragePath(*url); err == nil {
		_ = helper.DeleteFromStorage(bucket, path)
	}
}

// deleteAssignmentCascade menghapus tugas beserta semua jawaban student.
func deleteAssignmentCascade(db *gorm.DB, assignmentID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("submission_assignment_id = ?", assignmentID).
			Delete(&model.AssignmentSubmissionModel{}).Error; err != nil {
			return err
		}
		return tx.Where("assignment_id = ?", assignmentID).
			Delete(&model.AssignmentModel{}).Error
	})
}

// loadSubmissionRows menyusun daftar student yang wajib mengerjakan tugas
// (anggota grup yang bergabung sebelum tugas dibuat) beserta jawabannya.
// Student yang belum mengirim tetap muncul dengan submission nil.
func loadSubmissionRows(c *fiber.Ctx, db *gorm.DB, assignment model.AssignmentModel) ([]dto.SubmissionRowDTO, error) {
	type memberRow struct {
		StudentID uuid.UUID `gorm:"column:id"`
		FirstName string    `gorm:"column:first_name"`
		LastName  string    `gorm:"column:last_name"`
		UserName  string    `gorm:"column:user_name"`
	}
	var members []memberRow
	if err := db.WithContext(c.Context()).
		Table("users").
		Select("users.id, users.first_name, users.last_name, users.user_name").
		Joins("JOIN group_student_memberships ON group_student_memberships.membership_student_id = users.id").
		Where("group_student_memberships.membership_group_id = ?", assignment.AssignmentGroupID).
		Where("group_student_memberships.membership_joined_at <= ?", assignment.AssignmentCreatedAt).
		Order("users.first_name ASC").
		Scan(&members).Error; err != nil {
		return nil, err
	}

	var submissions []model.AssignmentSubmissionModel
	if err := db.WithContext(c.Context()).
		Where("submission_assignment_id = ?", assignment.AssignmentID).
		Find(&submissions).Error; err != nil {
		return nil, err
	}
	byStudent := make(map[uuid.UUID]model.AssignmentSubmissionModel, len(submissions))
	for _, s := range submissions {
		byStudent[s.SubmissionStudentID] = s
	}

	out := make([]dto.SubmissionRowDTO, 0, len(members))
	for _, m := range members {
		row := dto.SubmissionRowDTO{
			StudentID:   m.StudentID,
			StudentName: strings.TrimSpace(m.FirstName + " " + m.LastName),
			UserName:    m.UserName,
		}
		if s, ok := byStudent[m.StudentID]; ok {
			d := dto.ToSubmissionDTO(s)
			row.Submission = &d
		}
		out = append(out, row)
	}
	return out, nil
}

// gradeSubmission menilai satu jawaban, dibatasi 0..max_score tugasnya.
func gradeSubmission(c *fiber.Ctx, db *gorm.DB, assignment model.AssignmentModel, submissionID uuid.UUID, grade int) error {
	if grade < 0 || grade > assignment.AssignmentMaxScore {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Nilai di luar rentang tugas")
	}

	now := dbtime.NowLocal()
	res := db.WithContext(c.Context()).Model(&model.AssignmentSubmissionModel{}).
		Where("submission_id = ? AND submission_assignment_id = ?", submissionID, assignment.AssignmentID).
		Updates(map[string]any{
			"submission_grade":     grade,
			"submission_graded_at": now,
		})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan nilai")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Jawaban tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Nilai tersimpan", fiber.Map{
		"submission_id": submissionID,
		"grade":         grade,
		"graded_at":     now,
	})
}
