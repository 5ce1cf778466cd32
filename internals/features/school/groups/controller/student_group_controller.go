package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/school/groups/dto"
	"kursusku_backend/internals/features/school/groups/model"
	"kursusku_backend/internals/features/school/groups/service"
	userdto "kursusku_backend/internals/features/users/user/dto"
	usermodel "kursusku_backend/internals/features/users/user/model"
	helper "kursusku_backend/internals/helpers"
)

type StudentGroupController struct {
	DB *gorm.DB
}

func NewStudentGroupController(db *gorm.DB) *StudentGroupController {
	return &StudentGroupController{DB: db}
}

// =============================
// 📄 Grup milik student (+ teacher & waktu bergabung)
// =============================
func (ctrl *StudentGroupController) MyGroups(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	fences, err := service.StudentFences(c.Context(), ctrl.DB, studentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil keanggotaan")
	}
	if len(fences) == 0 {
		return helper.JsonOK(c, "OK", []dto.StudentGroupDTO{})
	}

	var groups []model.GroupModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("group_id IN ?", service.GroupIDs(fences)).
		Order("group_created_at DESC").
		Find(&groups).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil grup")
	}

	out := make([]dto.StudentGroupDTO, 0, len(groups))
	for _, g := range groups {
		fence, _ := service.FenceFor(fences, g.GroupID)

		var teachers []usermodel.UserModel
		if err := ctrl.DB.WithContext(c.Context()).
			Joins("JOIN group_teachers gt ON gt.group_teacher_teacher_id = users.id").
			Where("gt.group_teacher_group_id = ?", g.GroupID).
			Order("users.first_name ASC").
			Find(&teachers).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil teacher grup")
		}

		out = append(out, dto.StudentGroupDTO{
			GroupDTO: dto.ToGroupDTO(g),
			Teachers: userdto.ToUserDTOs(teachers),
			JoinedAt: fence.JoinedAt,
		})
	}

	return helper.JsonOK(c, "OK", out)
}
