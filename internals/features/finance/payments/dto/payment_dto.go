package dto

import (
	"time"

	"github.com/google/uuid"

	paymentmodel "kursusku_backend/internals/features/finance/payments/model"
)

type GroupPaymentInfoDTO struct {
	GroupID        uuid.UUID `json:"group_id"`
	MonthlyFee     int64     `json:"monthly_fee"`
	DurationMonths int       `json:"duration_months"`
	TotalFee       int64     `json:"total_fee"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func ToGroupPaymentInfoDTO(info paymentmodel.GroupPaymentInfoModel) GroupPaymentInfoDTO {
	return GroupPaymentInfoDTO{
		GroupID:        info.InfoGroupID,
		MonthlyFee:     info.InfoMonthlyFee,
		DurationMonths: info.InfoDurationMonths,
		TotalFee:       info.InfoTotalFee,
		UpdatedAt:      info.InfoUpdatedAt,
	}
}

type PaymentDTO struct {
	PaymentID uuid.UUID `json:"payment_id"`
	StudentID uuid.UUID `json:"student_id"`
	GroupID   uuid.UUID `json:"group_id"`
	Amount    int64     `json:"amount"`
	Month     string    `json:"month"`
	CreatedAt time.Time `json:"created_at"`
}

func ToPaymentDTO(p paymentmodel.StudentPaymentModel) PaymentDTO {
	return PaymentDTO{
		PaymentID: p.PaymentID,
		StudentID: p.PaymentStudentID,
		GroupID:   p.PaymentGroupID,
		Amount:    p.PaymentAmount,
		Month:     p.PaymentMonth,
		CreatedAt: p.PaymentCreatedAt,
	}
}

// StudentPaymentSummaryDTO: rekap satu student pada satu grup.
type StudentPaymentSummaryDTO struct {
	StudentID   uuid.UUID `json:"student_id"`
	StudentName string    `json:"student_name"`
	UserName    string    `json:"user_name"`
	TotalFee    int64     `json:"total_fee"`
	TotalPaid   int64     `json:"total_paid"`
	Remaining   int64     `json:"remaining"`
}

// StudentGroupPaymentsDTO: tampilan student atas tagihan satu grupnya.
type StudentGroupPaymentsDTO struct {
	GroupID   uuid.UUID            `json:"group_id"`
	GroupName string               `json:"group_name"`
	Info      *GroupPaymentInfoDTO `json:"info"`
	Payments  []PaymentDTO         `json:"payments"`
	TotalPaid int64                `json:"total_paid"`
	Remaining int64                `json:"remaining"`
}

type UpsertGroupPaymentInfoRequest struct {
	MonthlyFee     int64 `json:"monthly_fee" validate:"required,gt=0"`
	DurationMonths int   `json:"duration_months" validate:"required,gt=0,lte=36"`
}

type AddStudentPaymentRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	GroupID   uuid.UUID `json:"group_id" validate:"required"`
	Amount    int64     `json:"amount" validate:"required,gt=0"`
	Month     string    `json:"month" validate:"required"`
}
