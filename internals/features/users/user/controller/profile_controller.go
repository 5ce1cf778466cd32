package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/users/user/dto"
	"kursusku_backend/internals/features/users/user/model"
	helper "kursusku_backend/internals/helpers"
)

type ProfileController struct {
	DB *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db}
}

// =============================
// 👤 Profil sendiri
// =============================
func (ctrl *ProfileController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}
	return helper.JsonOK(c, "OK", dto.ToUserDTO(user))
}

// =============================
// 🖼️ Upload foto profil (convert ke webp)
// form field: profile_image
// =============================
func (ctrl *ProfileController) UploadProfileImage(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	fileHeader, err := c.FormFile("profile_image")
	if err != nil || fileHeader == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File gambar wajib diunggah")
	}
	const maxBytes = 5 * 1024 * 1024
	if fileHeader.Size > maxBytes {
		return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "Ukuran gambar maksimal 5MB")
	}

	var user model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	webpBuf, err := helper.ConvertProfileImageToWebP(fileHeader)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnsupportedMediaType, err.Error())
	}

	filename := helper.GenerateUniqueFilename("profiles", user.UserName+"_profile.webp")
	publicURL, err := helper.UploadBytesToStorage(helper.BucketImage, filename, "image/webp", webpBuf)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal upload gambar")
	}

	// best-effort hapus foto lama
	if user.ProfileImageURL != nil && *user.ProfileImageURL != "" {
		if bucket, path, perr := helper.ExtractStoragePath(*user.ProfileImageURL); perr == nil {
			_ = helper.DeleteFromStorage(bucket, path)
		}
	}

	user.ProfileImageURL = &publicURL
	if err := ctrl.DB.WithContext(c.Context()).Model(&user).
		Update("profile_image_url", publicURL).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan foto profil")
	}

	return helper.JsonUpdated(c, "Foto profil diperbarui", dto.ToUserDTO(user))
}
