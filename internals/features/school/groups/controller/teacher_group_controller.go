package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/school/groups/dto"
	"kursusku_backend/internals/features/school/groups/model"
	"kursusku_backend/internals/features/school/groups/service"
	userdto "kursusku_backend/internals/features/users/user/dto"
	usermodel "kursusku_backend/internals/features/users/user/model"
	helper "kursusku_backend/internals/helpers"
)

type TeacherGroupController struct {
	DB *gorm.DB
}

func NewTeacherGroupController(db *gorm.DB) *TeacherGroupController {
	return &TeacherGroupController{DB: db}
}

// =============================
// 📄 Grup yang diajar teacher (+ daftar student per grup)
// =============================
func (ctrl *TeacherGroupController) MyGroups(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	groupIDs, err := service.TeacherGroupIDs(c.Context(), ctrl.DB, teacherID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil grup")
	}
	if len(groupIDs) == 0 {
		return helper.JsonOK(c, "OK", []dto.GroupDetailDTO{})
	}

	var groups []model.GroupModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("group_id IN ?", groupIDs).
		Order("group_created_at DESC").
		Find(&groups).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil grup")
	}

	out := make([]dto.GroupDetailDTO, 0, len(groups))
	for _, g := range groups {
		detail := dto.GroupDetailDTO{GroupDTO: dto.ToGroupDTO(g)}

		type memberRow struct {
			usermodel.UserModel
			JoinedAt time.Time `gorm:"column:membership_joined_at"`
		}
		var rows []memberRow
		if err := ctrl.DB.WithContext(c.Context()).Model(&usermodel.UserModel{}).
			Select("users.*, m.membership_joined_at").
			Joins("JOIN group_student_memberships m ON m.membership_student_id = users.id").
			Where("m.membership_group_id = ?", g.GroupID).
			Order("users.first_name ASC").
			Find(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil anggota grup")
		}
		for _, r := range rows {
			detail.Students = append(detail.Students, dto.GroupMemberDTO{
				UserDTO:  userdto.ToUserDTO(r.UserModel),
				JoinedAt: r.JoinedAt,
			})
		}
		out = append(out, detail)
	}

	return helper.JsonOK(c, "OK", out)
}
