package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/constants"
	groupmodel "kursusku_backend/internals/features/school/groups/model"
	"kursusku_backend/internals/features/school/schedules/dto"
	"kursusku_backend/internals/features/school/schedules/model"
)

// BuildWeekTables menyusun tabel jadwal mingguan untuk sekumpulan grup:
// baris per grup, kolom per hari (Senin..Sabtu), slot diurutkan jam mulai.
func BuildWeekTables(ctx context.Context, db *gorm.DB, groupIDs []uuid.UUID) ([]dto.GroupScheduleTableDTO, error) {
	if len(groupIDs) == 0 {
		return []dto.GroupScheduleTableDTO{}, nil
	}

	var groups []groupmodel.GroupModel
	if err := db.WithContext(ctx).
		Where("group_id IN ?", groupIDs).
		Order("group_name ASC").
		Find(&groups).Error; err != nil {
		return nil, err
	}

	var schedules []model.ScheduleModel
	if err := db.WithContext(ctx).
		Where("schedule_group_id IN ?", groupIDs).
		Order("schedule_start_time ASC").
		Find(&schedules).Error; err != nil {
		return nil, err
	}

	// group → day → slot times
	byGroupDay := make(map[uuid.UUID]map[string][]string)
	for _, s := range schedules {
		if byGroupDay[s.ScheduleGroupID] == nil {
			byGroupDay[s.ScheduleGroupID] = make(map[string][]string)
		}
		slot := fmt.Sprintf("%s - %s", s.ScheduleStartTime.Format("15:04"), s.ScheduleEndTime.Format("15:04"))
		byGroupDay[s.ScheduleGroupID][s.ScheduleDay] = append(byGroupDay[s.ScheduleGroupID][s.ScheduleDay], slot)
	}

	out := make([]dto.GroupScheduleTableDTO, 0, len(groups))
	for _, g := range groups {
		row := dto.GroupScheduleTableDTO{
			GroupID:   g.GroupID,
			GroupName: g.GroupName,
			Days:      make([]dto.DaySlotDTO, 0, len(constants.ScheduleDays)),
		}
		for _, day := range constants.ScheduleDays {
			times := byGroupDay[g.GroupID][day]
			if times == nil {
				times = []string{}
			}
			row.Days = append(row.Days, dto.DaySlotDTO{Day: day, Times: times})
		}
		out = append(out, row)
	}
	return out, nil
}
