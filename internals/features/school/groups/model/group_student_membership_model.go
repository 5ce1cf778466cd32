package model

import (
	"time"

	"github.com/google/uuid"
)

// GroupStudentMembershipModel: keanggotaan student di grup.
// joined_at jadi pagar visibilitas konten (quiz/tugas lama tidak terlihat).
type GroupStudentMembershipModel struct {
	MembershipID        uuid.UUID `gorm:"column:membership_id;type:uuid;default:gen_random_uuid();primaryKey" json:"membership_id"`
	MembershipStudentID uuid.UUID `gorm:"column:membership_student_id;type:uuid;not null;uniqueIndex:uq_membership_student_group" json:"membership_student_id"`
	MembershipGroupID   uuid.UUID `gorm:"column:membership_group_id;type:uuid;not null;uniqueIndex:uq_membership_student_group" json:"membership_group_id"`
	MembershipJoinedAt  time.Time `gorm:"column:membership_joined_at;autoCreateTime" json:"membership_joined_at"`
}

func (GroupStudentMembershipModel) TableName() string {
	return "group_student_memberships"
}
