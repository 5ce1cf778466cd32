package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/finance/payments/dto"
	"kursusku_backend/internals/features/finance/payments/model"
	"kursusku_backend/internals/features/finance/payments/service"
	groupmodel "kursusku_backend/internals/features/school/groups/model"
	groupservice "kursusku_backend/internals/features/school/groups/service"
	helper "kursusku_backend/internals/helpers"
)

type StudentPaymentController struct {
	DB *gorm.DB
}

func NewStudentPaymentController(db *gorm.DB) *StudentPaymentController {
	return &StudentPaymentController{DB: db}
}

// =============================
// 📄 Tagihan & pembayaran saya per grup
// =============================
func (ctrl *StudentPaymentController) MyPayments(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	fences, err := groupservice.StudentFences(c.Context(), ctrl.DB, studentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil grup")
	}
	groupIDs := groupservice.GroupIDs(fences)
	if len(groupIDs) == 0 {
		return helper.JsonOK(c, "OK", []dto.StudentGroupPaymentsDTO{})
	}

	var groups []groupmodel.GroupModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("group_id IN ?", groupIDs).
		Order("group_name ASC").
		Find(&groups).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil grup")
	}

	var infos []model.GroupPaymentInfoModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("info_group_id IN ?", groupIDs).
		Find(&infos).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tarif")
	}
	infoByGroup := make(map[uuid.UUID]model.GroupPaymentInfoModel, len(infos))
	for _, info := range infos {
		infoByGroup[info.InfoGroupID] = info
	}

	var payments []model.StudentPaymentModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("payment_student_id = ? AND payment_group_id IN ?", studentID, groupIDs).
		Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pembayaran")
	}
	service.SortByMonth(payments)
	byGroup := make(map[uuid.UUID][]dto.PaymentDTO)
	paidByGroup := make(map[uuid.UUID]int64)
	for _, p := range payments {
		byGroup[p.PaymentGroupID] = append(byGroup[p.PaymentGroupID], dto.ToPaymentDTO(p))
		paidByGroup[p.PaymentGroupID] += p.PaymentAmount
	}

	out := make([]dto.StudentGroupPaymentsDTO, 0, len(groups))
	for _, g := range groups {
		item := dto.StudentGroupPaymentsDTO{
			GroupID:   g.GroupID,
			GroupName: g.GroupName,
			Payments:  byGroup[g.GroupID],
			TotalPaid: paidByGroup[g.GroupID],
		}
		if item.Payments == nil {
			item.Payments = []dto.PaymentDTO{}
		}
		if info, ok := infoByGroup[g.GroupID]; ok {
			d := dto.ToGroupPaymentInfoDTO(info)
			item.Info = &d
			item.Remaining = service.Remaining(info.InfoTotalFee, item.TotalPaid)
		}
		out = append(out, item)
	}
	return helper.JsonOK(c, "OK", out)
}

// =============================
// 🧾 Kuitansi PDF pembayaran saya
// =============================
func (ctrl *StudentPaymentController) MyReceiptPDF(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	paymentID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	return writeReceiptPDF(c, ctrl.DB, paymentID, studentID)
}
