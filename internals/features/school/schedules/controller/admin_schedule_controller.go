package controller

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/constants"
	groupmodel "kursusku_backend/internals/features/school/groups/model"
	"kursusku_backend/internals/features/school/schedules/dto"
	"kursusku_backend/internals/features/school/schedules/model"
	"kursusku_backend/internals/features/school/schedules/service"
	helper "kursusku_backend/internals/helpers"
	"kursusku_backend/internals/helpers/dbtime"
)

type AdminScheduleController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAdminScheduleController(db *gorm.DB) *AdminScheduleController {
	return &AdminScheduleController{DB: db, Validator: validator.New()}
}

// =============================
// ✏️ Replace-all jadwal satu grup
// =============================
func (ctrl *AdminScheduleController) ReplaceGroupSchedule(c *fiber.Ctx) error {
	groupID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.ReplaceGroupScheduleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var group groupmodel.GroupModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&group, "group_id = ?", groupID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Grup tidak ditemukan")
	}

	// teacher yang ditugaskan ke grup ini
	var teacherIDs []uuid.UUID
	if err := ctrl.DB.WithContext(c.Context()).Model(&groupmodel.GroupTeacherModel{}).
		Where("group_teacher_group_id = ?", groupID).
		Pluck("group_teacher_teacher_id", &teacherIDs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil teacher grup")
	}
	assigned := make(map[uuid.UUID]bool, len(teacherIDs))
	for _, id := range teacherIDs {
		assigned[id] = true
	}

	// validasi slot dulu sebelum menyentuh DB
	fieldErrors := map[string][]string{}
	newSlots := make([]model.ScheduleModel, 0, len(body.Slots))
	for i, slot := range body.Slots {
		key := fmt.Sprintf("slots[%d]", i)
		day := constants.NormalizeDay(slot.Day)
		if !constants.IsValidScheduleDay(day) {
			fieldErrors[key] = append(fieldErrors[key], "hari tidak valid")
			continue
		}
		if !assigned[slot.TeacherID] {
			fieldErrors[key] = append(fieldErrors[key], "teacher bukan pengajar grup ini")
			continue
		}
		start, serr := dbtime.Parse(strings.TrimSpace(slot.StartTime))
		end, eerr := dbtime.Parse(strings.TrimSpace(slot.EndTime))
		if serr != nil || eerr != nil {
			fieldErrors[key] = append(fieldErrors[key], "format jam harus HH:MM")
			continue
		}
		if end.Minutes() <= start.Minutes() {
			fieldErrors[key] = append(fieldErrors[key], "jam selesai harus setelah jam mulai")
			continue
		}
		newSlots = append(newSlots, model.ScheduleModel{
			ScheduleGroupID:   groupID,
			ScheduleTeacherID: slot.TeacherID,
			ScheduleDay:       day,
			ScheduleStartTime: start,
			ScheduleEndTime:   end,
		})
	}
	if len(fieldErrors) > 0 {
		return helper.JsonValidationError(c, fieldErrors)
	}

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("schedule_group_id = ?", groupID).
			Delete(&model.ScheduleModel{}).Error; err != nil {
			return err
		}
		for i := range newSlots {
			if err := tx.Create(&newSlots[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}

	out := make([]dto.ScheduleDTO, 0, len(newSlots))
	for _, s := range newSlots {
		out = append(out, dto.ToScheduleDTO(s))
	}
	return helper.JsonUpdated(c, "Jadwal grup disimpan", out)
}

// =============================
// 📄 Tabel jadwal semua grup
// =============================
func (ctrl *AdminScheduleController) AllGroupSchedules(c *fiber.Ctx) error {
	var groupIDs []uuid.UUID
	if err := ctrl.DB.WithContext(c.Context()).Model(&groupmodel.GroupModel{}).
		Pluck("group_id", &groupIDs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil grup")
	}

	tables, err := service.BuildWeekTables(c.Context(), ctrl.DB, groupIDs)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun jadwal")
	}
	return helper.JsonOK(c, "OK", tables)
}

// =============================
// ❌ Hapus slot (group + day + start_time)
// =============================
func (ctrl *AdminScheduleController) DeleteSlot(c *fiber.Ctx) error {
	groupIDStr := strings.TrimSpace(c.Query("group_id"))
	day := constants.NormalizeDay(c.Query("day"))
	startStr := strings.TrimSpace(c.Query("start_time"))

	if groupIDStr == "" || day == "" || startStr == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "group_id, day, start_time wajib diisi")
	}
	groupID, err := uuid.Parse(groupIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "group_id tidak valid")
	}
	start, err := dbtime.Parse(startStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "start_time harus HH:MM")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("schedule_group_id = ? AND schedule_day = ? AND schedule_start_time = ?", groupID, day, start).
		Delete(&model.ScheduleModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus slot")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Slot jadwal tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Slot jadwal dihapus", fiber.Map{
		"group_id":   groupID,
		"day":        day,
		"start_time": start.Format("15:04"),
	})
}
