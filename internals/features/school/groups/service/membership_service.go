package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	groupmodel "kursusku_backend/internals/features/school/groups/model"
)

// Fence: satu pagar visibilitas per grup. Konten grup hanya terlihat
// kalau dibuat pada/atau setelah student bergabung.
type Fence struct {
	GroupID  uuid.UUID
	JoinedAt time.Time
}

// Visible: true kalau konten (createdAt) dibuat setelah student join.
func (f Fence) Visible(createdAt time.Time) bool {
	return !createdAt.Before(f.JoinedAt)
}

// StudentFences mengembalikan pagar visibilitas semua grup milik student.
func StudentFences(ctx context.Context, db *gorm.DB, studentID uuid.UUID) ([]Fence, error) {
	var memberships []groupmodel.GroupStudentMembershipModel
	if err := db.WithContext(ctx).
		Where("membership_student_id = ?", studentID).
		Find(&memberships).Error; err != nil {
		return nil, err
	}
	fences := make([]Fence, 0, len(memberships))
	for _, m := range memberships {
		fences = append(fences, Fence{GroupID: m.MembershipGroupID, JoinedAt: m.MembershipJoinedAt})
	}
	return fences, nil
}

// FenceFor mencari pagar untuk satu grup. ok=false kalau bukan anggota.
func FenceFor(fences []Fence, groupID uuid.UUID) (Fence, bool) {
	for _, f := range fences {
		if f.GroupID == groupID {
			return f, true
		}
	}
	return Fence{}, false
}

// GroupIDs mengambil daftar id grup dari fences.
func GroupIDs(fences []Fence) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(fences))
	for _, f := range fences {
		ids = append(ids, f.GroupID)
	}
	return ids
}

// ApplyFenceScope menambah WHERE "konten per grup dibatasi joined_at"
// (union OR per grup) ke query GORM. Kolom dikirim caller, mis.
// ("quiz_group_id", "quiz_created_at").
func ApplyFenceScope(q *gorm.DB, fences []Fence, groupCol, createdCol string) *gorm.DB {
	if len(fences) == 0 {
		// tanpa grup → tidak ada konten yang terlihat
		return q.Where("1 = 0")
	}
	cond := q.Session(&gorm.Session{NewDB: true})
	expr := cond.Where(groupCol+" = ? AND "+createdCol+" >= ?", fences[0].GroupID, fences[0].JoinedAt)
	for _, f := range fences[1:] {
		expr = expr.Or(groupCol+" = ? AND "+createdCol+" >= ?", f.GroupID, f.JoinedAt)
	}
	return q.Where(expr)
}

// IsTeacherOfGroup cek penugasan teacher pada grup.
func IsTeacherOfGroup(ctx context.Context, db *gorm.DB, teacherID, groupID uuid.UUID) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&groupmodel.GroupTeacherModel{}).
		Where("group_teacher_teacher_id = ? AND group_teacher_group_id = ?", teacherID, groupID).
		Count(&count).Error
	return count > 0, err
}

// TeacherGroupIDs: semua grup yang diajar teacher.
func TeacherGroupIDs(ctx context.Context, db *gorm.DB, teacherID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := db.WithContext(ctx).Model(&groupmodel.GroupTeacherModel{}).
		Where("group_teacher_teacher_id = ?", teacherID).
		Pluck("group_teacher_group_id", &ids).Error
	return ids, err
}

// IsStudentOfGroup cek keanggotaan student pada grup.
func IsStudentOfGroup(ctx context.Context, db *gorm.DB, studentID, groupID uuid.UUID) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&groupmodel.GroupStudentMembershipModel{}).
		Where("membership_student_id = ? AND membership_group_id = ?", studentID, groupID).
		Count(&count).Error
	return count > 0, err
}
