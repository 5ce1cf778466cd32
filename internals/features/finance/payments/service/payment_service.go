package service

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/constants"
	"kursusku_backend/internals/features/finance/payments/model"
)

// SortByMonth mengurutkan pembayaran mengikuti urutan bulan akademik
// (Yanvar..Dekabr). Bulan sama diurutkan berdasarkan tanggal dicatat,
// label asing ditaruh paling akhir.
func SortByMonth(payments []model.StudentPaymentModel) {
	sort.SliceStable(payments, func(i, j int) bool {
		oi := constants.MonthOrder(payments[i].PaymentMonth)
		oj := constants.MonthOrder(payments[j].PaymentMonth)
		if oi != oj {
			return oi < oj
		}
		return payments[i].PaymentCreatedAt.Before(payments[j].PaymentCreatedAt)
	})
}

// Remaining: sisa tagihan, tidak pernah negatif.
func Remaining(totalFee, totalPaid int64) int64 {
	remaining := totalFee - totalPaid
	if remaining < 0 {
		return 0
	}
	return remaining
}

// TotalPaid menjumlahkan semua pembayaran satu student pada satu grup.
func TotalPaid(ctx context.Context, db *gorm.DB, studentID, groupID uuid.UUID) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&model.StudentPaymentModel{}).
		Where("payment_student_id = ? AND payment_group_id = ?", studentID, groupID).
		Select("COALESCE(SUM(payment_amount), 0)").
		Scan(&total).Error
	return total, err
}

// TotalsByStudent: total bayar per student untuk satu grup sekali query.
func TotalsByStudent(ctx context.Context, db *gorm.DB, groupID uuid.UUID) (map[uuid.UUID]int64, error) {
	type row struct {
		StudentID uuid.UUID `gorm:"column:payment_student_id"`
		Total     int64     `gorm:"column:total"`
	}
	var rows []row
	if err := db.WithContext(ctx).Model(&model.StudentPaymentModel{}).
		Select("payment_student_id, COALESCE(SUM(payment_amount), 0) AS total").
		Where("payment_group_id = ?", groupID).
		Group("payment_student_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	totals := make(map[uuid.UUID]int64, len(rows))
	for _, r := range rows {
		totals[r.StudentID] = r.Total
	}
	return totals, nil
}
