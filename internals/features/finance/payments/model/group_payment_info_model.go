package model

import (
	"time"

	"github.com/google/uuid"
)

// GroupPaymentInfoModel: tarif satu grup. Total = tarif bulanan x durasi.
type GroupPaymentInfoModel struct {
	InfoID             uuid.UUID `gorm:"column:info_id;type:uuid;default:gen_random_uuid();primaryKey" json:"info_id"`
	InfoGroupID        uuid.UUID `gorm:"column:info_group_id;type:uuid;not null;uniqueIndex" json:"info_group_id"`
	InfoMonthlyFee     int64     `gorm:"column:info_monthly_fee;not null" json:"info_monthly_fee"`
	InfoDurationMonths int       `gorm:"column:info_duration_months;not null" json:"info_duration_months"`
	InfoTotalFee       int64     `gorm:"column:info_total_fee;not null" json:"info_total_fee"`
	InfoCreatedAt      time.Time `gorm:"column:info_created_at;autoCreateTime" json:"info_created_at"`
	InfoUpdatedAt      time.Time `gorm:"column:info_updated_at;autoUpdateTime" json:"info_updated_at"`
}

func (GroupPaymentInfoModel) TableName() string {
	return "group_payment_infos"
}
