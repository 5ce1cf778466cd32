package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/constants"
	"kursusku_backend/internals/features/school/groups/dto"
	"kursusku_backend/internals/features/school/groups/model"
	userdto "kursusku_backend/internals/features/users/user/dto"
	usermodel "kursusku_backend/internals/features/users/user/model"
	helper "kursusku_backend/internals/helpers"
)

type AdminGroupController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAdminGroupController(db *gorm.DB) *AdminGroupController {
	return &AdminGroupController{DB: db, Validator: validator.New()}
}

// =============================
// 📄 List grup (terbaru dulu)
// =============================
func (ctrl *AdminGroupController) ListGroups(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.GroupModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("LOWER(group_name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung grup")
	}

	var groups []model.GroupModel
	if err := q.Order("group_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&groups).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil grup")
	}

	out := make([]dto.GroupDetailDTO, 0, len(groups))
	for _, g := range groups {
		detail, err := ctrl.buildGroupDetail(c, g)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil anggota grup")
		}
		out = append(out, detail)
	}

	return helper.JsonList(c, "OK", out,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =============================
// ➕ Create grup + anggota awal
// =============================
func (ctrl *AdminGroupController) CreateGroup(c *fiber.Ctx) error {
	var body dto.CreateGroupRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	group := model.GroupModel{GroupName: strings.TrimSpace(body.GroupName)}
	if body.CreatedAt != nil {
		group.GroupCreatedAt = *body.CreatedAt
	}

	err := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&group).Error; err != nil {
			return err
		}
		if err := setGroupTeachers(tx, group.GroupID, body.TeacherIDs); err != nil {
			return err
		}
		for _, sid := range body.StudentIDs {
			m := model.GroupStudentMembershipModel{
				MembershipStudentID: sid,
				MembershipGroupID:   group.GroupID,
			}
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}

	detail, derr := ctrl.buildGroupDetail(c, group)
	if derr != nil {
		return helper.JsonCreated(c, "Grup dibuat", dto.ToGroupDTO(group))
	}
	return helper.JsonCreated(c, "Grup dibuat", detail)
}

// =============================
// 🔍 Detail grup + anggota
// =============================
func (ctrl *AdminGroupController) GetGroupByID(c *fiber.Ctx) error {
	groupID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var group model.GroupModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&group, "group_id = ?", groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Grup tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil grup")
	}

	detail, err := ctrl.buildGroupDetail(c, group)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil anggota grup")
	}
	return helper.JsonOK(c, "OK", detail)
}

// =============================
// ✏️ Update grup (nama, created_at, set anggota dengan diff)
// =============================
func (ctrl *AdminGroupController) UpdateGroup(c *fiber.Ctx) error {
	groupID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.UpdateGroupRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var group model.GroupModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&group, "group_id = ?", groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Grup tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil grup")
	}

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if body.GroupName != nil && strings.TrimSpace(*body.GroupName) != "" {
			group.GroupName = strings.TrimSpace(*body.GroupName)
		}
		if body.CreatedAt != nil {
			group.GroupCreatedAt = *body.CreatedAt
		}
		if err := tx.Save(&group).Error; err != nil {
			return err
		}

		if body.TeacherIDs != nil {
			if err := tx.Where("group_teacher_group_id = ?", group.GroupID).
				Delete(&model.GroupTeacherModel{}).Error; err != nil {
				return err
			}
			if err := setGroupTeachers(tx, group.GroupID, *body.TeacherIDs); err != nil {
				return err
			}
		}

		if body.StudentIDs != nil {
			// diff: anggota lama dipertahankan supaya joined_at tidak berubah
			var existing []model.GroupStudentMembershipModel
			if err := tx.Where("membership_group_id = ?", group.GroupID).
				Find(&existing).Error; err != nil {
				return err
			}
			existingSet := make(map[uuid.UUID]bool, len(existing))
			for _, m := range existing {
				existingSet[m.MembershipStudentID] = true
			}
			newSet := make(map[uuid.UUID]bool, len(*body.StudentIDs))
			for _, sid := range *body.StudentIDs {
				newSet[sid] = true
				if !existingSet[sid] {
					m := model.GroupStudentMembershipModel{
						MembershipStudentID: sid,
						MembershipGroupID:   group.GroupID,
					}
					if err := tx.Create(&m).Error; err != nil {
						return err
					}
				}
			}
			var toRemove []uuid.UUID
			for _, m := range existing {
				if !newSet[m.MembershipStudentID] {
					toRemove = append(toRemove, m.MembershipStudentID)
				}
			}
			if len(toRemove) > 0 {
				if err := tx.Where("membership_group_id = ? AND membership_student_id IN ?", group.GroupID, toRemove).
					Delete(&model.GroupStudentMembershipModel{}).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}

	detail, derr := ctrl.buildGroupDetail(c, group)
	if derr != nil {
		return helper.JsonUpdated(c, "Grup diperbarui", dto.ToGroupDTO(group))
	}
	return helper.JsonUpdated(c, "Grup diperbarui", detail)
}

// =============================
// ❌ Delete grup
// =============================
func (ctrl *AdminGroupController) DeleteGroup(c *fiber.Ctx) error {
	groupID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("membership_group_id = ?", groupID).
			Delete(&model.GroupStudentMembershipModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("group_teacher_group_id = ?", groupID).
			Delete(&model.GroupTeacherModel{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.GroupModel{}, "group_id = ?", groupID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Grup tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus grup")
	}

	return helper.JsonDeleted(c, "Grup dihapus", fiber.Map{"group_id": groupID})
}

/* ===== internal ===== */

func setGroupTeachers(tx *gorm.DB, groupID uuid.UUID, teacherIDs []uuid.UUID) error {
	for _, tid := range teacherIDs {
		// hanya user ber-role teacher yang boleh masuk
		var count int64
		if err := tx.Model(&usermodel.UserModel{}).
			Where("id = ? AND role = ?", tid, constants.RoleTeacher).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Teacher tidak ditemukan: "+tid.String())
		}
		gt := model.GroupTeacherModel{
			GroupTeacherGroupID:   groupID,
			GroupTeacherTeacherID: tid,
		}
		if err := tx.Create(&gt).Error; err != nil {
			return err
		}
	}
	return nil
}

func (ctrl *AdminGroupController) buildGroupDetail(c *fiber.Ctx, group model.GroupModel) (dto.GroupDetailDTO, error) {
	detail := dto.GroupDetailDTO{GroupDTO: dto.ToGroupDTO(group)}

	var teachers []usermodel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		Joins("JOIN group_teachers gt ON gt.group_teacher_teacher_id = users.id").
		Where("gt.group_teacher_group_id = ?", group.GroupID).
		Order("users.first_name ASC").
		Find(&teachers).Error; err != nil {
		return detail, err
	}
	detail.Teachers = userdto.ToUserDTOs(teachers)

	type memberRow struct {
		usermodel.UserModel
		JoinedAt time.Time `gorm:"column:membership_joined_at"`
	}
	var rows []memberRow
	if err := ctrl.DB.WithContext(c.Context()).Model(&usermodel.UserModel{}).
		Select("users.*, m.membership_joined_at").
		Joins("JOIN group_student_memberships m ON m.membership_student_id = users.id").
		Where("m.membership_group_id = ?", group.GroupID).
		Order("users.first_name ASC").
		Find(&rows).Error; err != nil {
		return detail, err
	}
	detail.Students = make([]dto.GroupMemberDTO, 0, len(rows))
	for _, r := range rows {
		detail.Students = append(detail.Students, dto.GroupMemberDTO{
			UserDTO:  userdto.ToUserDTO(r.UserModel),
			JoinedAt: r.JoinedAt,
		})
	}
	return detail, nil
}
