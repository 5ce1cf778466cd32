package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	paymentmodel "kursusku_backend/internals/features/finance/payments/model"
	assignmentmodel "kursusku_backend/internals/features/school/assignments/model"
	attendancemodel "kursusku_backend/internals/features/school/attendance/model"
	groupmodel "kursusku_backend/internals/features/school/groups/model"
	quizmodel "kursusku_backend/internals/features/school/quizzes/model"
	"kursusku_backend/internals/features/users/user/model"
)

// DeleteUsersCascade menghapus user beserta jejak datanya dalam satu
// transaksi: hasil kuis + jawaban, pengumpulan tugas, absensi,
// keanggotaan grup, penugasan guru, dan pembayaran. Mengembalikan
// jumlah user yang benar-benar terhapus.
func DeleteUsersCascade(ctx context.Context, db *gorm.DB, ids []uuid.UUID) (int64, error) {
	var deleted int64
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var resultIDs []uuid.UUID
		if err := tx.Model(&quizmodel.StudentQuizResultModel{}).
			Where("result_student_id IN ?", ids).
			Pluck("result_id", &resultIDs).Error; err != nil {
			return err
		}
		if len(resultIDs) > 0 {
			if err := tx.Where("student_answer_result_id IN ?", resultIDs).
				Delete(&quizmodel.StudentQuizAnswerModel{}).Error; err != nil {
				return err
			}
			if err := tx.Where("result_id IN ?", resultIDs).
				Delete(&quizmodel.StudentQuizResultModel{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("submission_student_id IN ?", ids).
			Delete(&assignmentmodel.AssignmentSubmissionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("attendance_student_id IN ?", ids).
			Delete(&attendancemodel.AttendanceModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("membership_student_id IN ?", ids).
			Delete(&groupmodel.GroupStudentMembershipModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("group_teacher_teacher_id IN ?", ids).
			Delete(&groupmodel.GroupTeacherModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("payment_student_id IN ?", ids).
			Delete(&paymentmodel.StudentPaymentModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("id IN ?", ids).Delete(&model.UserModel{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	return deleted, err
}
