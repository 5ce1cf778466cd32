package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kursusku_backend/internals/constants"
	"kursusku_backend/internals/features/users/user/dto"
	"kursusku_backend/internals/features/users/user/model"
	"kursusku_backend/internals/features/users/user/service"
	helper "kursusku_backend/internals/helpers"
)

type AdminUserController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAdminUserController(db *gorm.DB) *AdminUserController {
	return &AdminUserController{DB: db, Validator: validator.New()}
}

// =============================
// 📄 List user (filter role + search + pagination)
// =============================
func (ctrl *AdminUserController) ListUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.UserModel{})

	if role := strings.TrimSpace(c.Query("role")); role != "" {
		if !constants.IsValidRole(role) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Role tidak dikenal")
		}
		q = q.Where("role = ?", role)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(user_name) LIKE ? OR LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung user")
	}

	var users []model.UserModel
	if err := q.Order("first_name ASC, last_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	return helper.JsonList(c, "OK", dto.ToUserDTOs(users),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =============================
// ➕ Create user (student/teacher)
// =============================
func (ctrl *AdminUserController) CreateUser(c *fiber.Ctx) error {
	var body dto.CreateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := model.UserModel{
		UserName:    strings.TrimSpace(body.UserName),
		FirstName:   strings.TrimSpace(body.FirstName),
		LastName:    strings.TrimSpace(body.LastName),
		PhoneNumber: strings.TrimSpace(body.PhoneNumber),
		Password:    string(hashed),
		Role:        body.Role,
		IsActive:    true,
	}

	// unique constraint users.user_name menutup race check-then-create
	if err := ctrl.DB.WithContext(c.Context()).Create(&user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Username sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}

	return helper.JsonCreated(c, "User created", dto.ToUserDTO(user))
}

// =============================
// 🔍 Get user by ID
// =============================
func (ctrl *AdminUserController) GetUserByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var user model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}
	return helper.JsonOK(c, "OK", dto.ToUserDTO(user))
}

// =============================
// ✏️ Update user (partial)
// =============================
func (ctrl *AdminUserController) UpdateUser(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.UpdateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	if body.UserName != nil && strings.TrimSpace(*body.UserName) != "" {
		user.UserName = strings.TrimSpace(*body.UserName)
	}
	if body.FirstName != nil && strings.TrimSpace(*body.FirstName) != "" {
		user.FirstName = strings.TrimSpace(*body.FirstName)
	}
	if body.LastName != nil && strings.TrimSpace(*body.LastName) != "" {
		user.LastName = strings.TrimSpace(*body.LastName)
	}
	if body.PhoneNumber != nil && strings.TrimSpace(*body.PhoneNumber) != "" {
		user.PhoneNumber = strings.TrimSpace(*body.PhoneNumber)
	}
	if body.IsActive != nil {
		user.IsActive = *body.IsActive
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(&user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Username sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui user")
	}

	return helper.JsonUpdated(c, "User updated", dto.ToUserDTO(user))
}

// =============================
// 🔑 Reset password user lain
// =============================
func (ctrl *AdminUserController) ResetPassword(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.ResetPasswordRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	res := ctrl.DB.WithContext(c.Context()).Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("password", string(hashed))
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal reset password")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helper.JsonUpdated(c, "Password direset", fiber.Map{"id": id})
}

// =============================
// ❌ Delete user (ikut bersihkan data terkait)
// =============================
func (ctrl *AdminUserController) DeleteUser(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	deleted, err := service.DeleteUsersCascade(c.Context(), ctrl.DB, []uuid.UUID{id})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus user")
	}
	if deleted == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helper.JsonDeleted(c, "User deleted", fiber.Map{"id": id})
}

// =============================
// 🗑️ Bulk delete users
// =============================
func (ctrl *AdminUserController) BulkDeleteUsers(c *fiber.Ctx) error {
	var body dto.BulkDeleteUsersRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	deleted, err := service.DeleteUsersCascade(c.Context(), ctrl.DB, body.IDs)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus user")
	}

	return helper.JsonDeleted(c, "Users deleted", fiber.Map{"deleted": deleted})
}
