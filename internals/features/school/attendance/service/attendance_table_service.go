package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/school/attendance/dto"
	"kursusku_backend/internals/features/school/attendance/model"
	groupmodel "kursusku_backend/internals/features/school/groups/model"
)

// BuildGroupTable menyusun tabel kehadiran satu grup: kolom tanggal,
// baris per student beserta rekap hadir/absen.
func BuildGroupTable(ctx context.Context, db *gorm.DB, groupID uuid.UUID) (dto.GroupAttendanceTableDTO, error) {
	var table dto.GroupAttendanceTableDTO

	var group groupmodel.GroupModel
	if err := db.WithContext(ctx).
		First(&group, "group_id = ?", groupID).Error; err != nil {
		return table, err
	}
	table.GroupID = group.GroupID
	table.GroupName = group.GroupName

	type memberRow struct {
		ID        uuid.UUID `gorm:"column:id"`
		FirstName string    `gorm:"column:first_name"`
		LastName  string    `gorm:"column:last_name"`
		UserName  string    `gorm:"column:user_name"`
	}
	var members []memberRow
	if err := db.WithContext(ctx).
		Table("users").
		Select("users.id, users.first_name, users.last_name, users.user_name").
		Joins("JOIN group_student_memberships ON group_student_memberships.membership_student_id = users.id").
		Where("group_student_memberships.membership_group_id = ?", groupID).
		Order("users.first_name ASC").
		Scan(&members).Error; err != nil {
		return table, err
	}

	var records []model.AttendanceModel
	if err := db.WithContext(ctx).
		Where("attendance_group_id = ?", groupID).
		Order("attendance_date ASC").
		Find(&records).Error; err != nil {
		return table, err
	}

	dateSet := make(map[string]bool)
	byStudent := make(map[uuid.UUID]map[string]bool)
	for _, r := range records {
		date := time.Time(r.AttendanceDate).Format("2006-01-02")
		dateSet[date] = true
		if byStudent[r.AttendanceStudentID] == nil {
			byStudent[r.AttendanceStudentID] = make(map[string]bool)
		}
		byStudent[r.AttendanceStudentID][date] = r.AttendancePresent
	}

	dates := make([]string, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	table.Dates = dates

	table.Rows = make([]dto.StudentAttendanceRowDTO, 0, len(members))
	for _, m := range members {
		row := dto.StudentAttendanceRowDTO{
			StudentID:   m.ID,
			StudentName: strings.TrimSpace(m.FirstName + " " + m.LastName),
			UserName:    m.UserName,
			Cells:       make([]dto.AttendanceCellDTO, 0, len(dates)),
		}
		marks := byStudent[m.ID]
		for _, date := range dates {
			present, ok := marks[date]
			if !ok {
				continue
			}
			row.Cells = append(row.Cells, dto.AttendanceCellDTO{Date: date, Present: present})
			if present {
				row.PresentDays++
			} else {
				row.AbsentDays++
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}
