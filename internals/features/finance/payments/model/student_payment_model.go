package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentPaymentModel: pembayaran student, append-only (tidak pernah diubah).
type StudentPaymentModel struct {
	PaymentID        uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`
	PaymentStudentID uuid.UUID `gorm:"column:payment_student_id;type:uuid;not null;index" json:"payment_student_id"`
	PaymentGroupID   uuid.UUID `gorm:"column:payment_group_id;type:uuid;not null;index" json:"payment_group_id"`
	PaymentAmount    int64     `gorm:"column:payment_amount;not null" json:"payment_amount"`
	PaymentMonth     string    `gorm:"column:payment_month;type:varchar(10);not null" json:"payment_month"`
	PaymentCreatedBy uuid.UUID `gorm:"column:payment_created_by;type:uuid;not null" json:"payment_created_by"`
	PaymentCreatedAt time.Time `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
}

func (StudentPaymentModel) TableName() string {
	return "student_payments"
}
