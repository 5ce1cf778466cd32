package controller

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/configs"
	"kursusku_backend/internals/constants"
	"kursusku_backend/internals/features/finance/payments/dto"
	"kursusku_backend/internals/features/finance/payments/model"
	"kursusku_backend/internals/features/finance/payments/service"
	groupmodel "kursusku_backend/internals/features/school/groups/model"
	groupservice "kursusku_backend/internals/features/school/groups/service"
	usermodel "kursusku_backend/internals/features/users/user/model"
	helper "kursusku_backend/internals/helpers"
)

type AdminPaymentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAdminPaymentController(db *gorm.DB) *AdminPaymentController {
	return &AdminPaymentController{DB: db, Validator: validator.New()}
}

// =============================
// 💰 Set tarif grup (upsert)
// =============================
func (ctrl *AdminPaymentController) UpsertGroupPaymentInfo(c *fiber.Ctx) error {
	groupID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.UpsertGroupPaymentInfoRequest
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

	totalFee := body.MonthlyFee * int64(body.DurationMonths)

	var info model.GroupPaymentInfoModel
	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		findErr := tx.First(&info, "info_group_id = ?", groupID).Error
		if errors.Is(findErr, gorm.ErrRecordNotFound) {
			info = model.GroupPaymentInfoModel{
				InfoGroupID:        groupID,
				InfoMonthlyFee:     body.MonthlyFee,
				InfoDurationMonths: body.DurationMonths,
				InfoTotalFee:       totalFee,
			}
			return tx.Create(&info).Error
		}
		if findErr != nil {
			return findErr
		}
		info.InfoMonthlyFee = body.MonthlyFee
		info.InfoDurationMonths = body.DurationMonths
		info.InfoTotalFee = totalFee
		return tx.Save(&info).Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Tarif grup tersimpan", dto.ToGroupPaymentInfoDTO(info))
}

// =============================
// 🔍 Tarif grup
// =============================
func (ctrl *AdminPaymentController) GetGroupPaymentInfo(c *fiber.Ctx) error {
	groupID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var info model.GroupPaymentInfoModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&info, "info_group_id = ?", groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tarif grup belum diatur")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tarif")
	}
	return helper.JsonOK(c, "OK", dto.ToGroupPaymentInfoDTO(info))
}

// =============================
// 📄 Rekap pembayaran satu grup (per student)
// =============================
func (ctrl *AdminPaymentController) GroupPaymentSummary(c *fiber.Ctx) error {
	groupID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var info model.GroupPaymentInfoModel
	infoErr := ctrl.DB.WithContext(c.Context()).
		First(&info, "info_group_id = ?", groupID).Error
	if infoErr != nil && !errors.Is(infoErr, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tarif")
	}

	type memberRow struct {
		ID        uuid.UUID `gorm:"column:id"`
		FirstName string    `gorm:"column:first_name"`
		LastName  string    `gorm:"column:last_name"`
		UserName  string    `gorm:"column:user_name"`
	}
	var members []memberRow
	if err := ctrl.DB.WithContext(c.Context()).
		Table("users").
		Select("users.id, users.first_name, users.last_name, users.user_name").
		Joins("JOIN group_student_memberships ON group_student_memberships.membership_student_id = users.id").
		Where("group_student_memberships.membership_group_id = ?", groupID).
		Order("users.first_name ASC").
		Scan(&members).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil anggota grup")
	}

	totals, err := service.TotalsByStudent(c.Context(), ctrl.DB, groupID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pembayaran")
	}

	rows := make([]dto.StudentPaymentSummaryDTO, 0, len(members))
	for _, m := range members {
		paid := totals[m.ID]
		rows = append(rows, dto.StudentPaymentSummaryDTO{
			StudentID:   m.ID,
			StudentName: strings.TrimSpace(m.FirstName + " " + m.LastName),
			UserName:    m.UserName,
			TotalFee:    info.InfoTotalFee,
			TotalPaid:   paid,
			Remaining:   service.Remaining(info.InfoTotalFee, paid),
		})
	}

	var infoDTO *dto.GroupPaymentInfoDTO
	if infoErr == nil {
		d := dto.ToGroupPaymentInfoDTO(info)
		infoDTO = &d
	}
	return helper.JsonOK(c, "OK", fiber.Map{
		"group_id": groupID,
		"info":     infoDTO,
		"students": rows,
	})
}

// =============================
// ➕ Catat pembayaran student
// =============================
func (ctrl *AdminPaymentController) AddStudentPayment(c *fiber.Ctx) error {
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.AddStudentPaymentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	if !constants.IsValidPaymentMonth(body.Month) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Nama bulan tidak dikenal")
	}

	ok, err := groupservice.IsStudentOfGroup(c.Context(), ctrl.DB, body.StudentID, body.GroupID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa keanggotaan")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Student bukan anggota grup ini")
	}

	payment := model.StudentPaymentModel{
		PaymentStudentID: body.StudentID,
		PaymentGroupID:   body.GroupID,
		PaymentAmount:    body.Amount,
		PaymentMonth:     body.Month,
		PaymentCreatedBy: adminID,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&payment).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Pembayaran tercatat", dto.ToPaymentDTO(payment))
}

// =============================
// 📄 Riwayat pembayaran satu student
// =============================
func (ctrl *AdminPaymentController) StudentHistory(c *fiber.Ctx) error {
	studentID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	q := ctrl.DB.WithContext(c.Context()).
		Where("payment_student_id = ?", studentID)
	if raw := c.Query("group_id"); raw != "" {
		groupID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "group_id tidak valid")
		}
		q = q.Where("payment_group_id = ?", groupID)
	}

	var payments []model.StudentPaymentModel
	if err := q.Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat")
	}
	service.SortByMonth(payments)

	out := make([]dto.PaymentDTO, 0, len(payments))
	for _, p := range payments {
		out = append(out, dto.ToPaymentDTO(p))
	}
	return helper.JsonOK(c, "OK", out)
}

// =============================
// 🧾 Kuitansi PDF satu pembayaran
// =============================
func (ctrl *AdminPaymentController) ReceiptPDF(c *fiber.Ctx) error {
	paymentID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	return writeReceiptPDF(c, ctrl.DB, paymentID, uuid.Nil)
}

// =============================
// 🧾 Riwayat pembayaran student sebagai PDF
// =============================
func (ctrl *AdminPaymentController) StudentHistoryPDF(c *fiber.Ctx) error {
	studentID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var student usermodel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&student, "id = ?", studentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	var payments []model.StudentPaymentModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("payment_student_id = ?", studentID).
		Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat")
	}
	service.SortByMonth(payments)

	groupNames, err := loadGroupNames(c, ctrl.DB, payments)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil grup")
	}

	cols := []service.TableColumn{
		{Header: "No", Width: 10, Align: "C"},
		{Header: "Grup", Width: 60},
		{Header: "Bulan", Width: 30, Align: "C"},
		{Header: "Jumlah (so'm)", Width: 45, Align: "R"},
		{Header: "Tanggal", Width: 45, Align: "C"},
	}
	rows := make([][]string, 0, len(payments))
	for i, p := range payments {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			groupNames[p.PaymentGroupID],
			p.PaymentMonth,
			service.FormatAmount(p.PaymentAmount),
			p.PaymentCreatedAt.Format("02.01.2006"),
		})
	}

	pdfBytes, err := service.BuildTablePDF("Riwayat Pembayaran - "+student.FullName(), cols, rows)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat PDF")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="riwayat-%s.pdf"`, student.UserName))
	return c.Send(pdfBytes)
}

// loadGroupNames memetakan group_id → nama untuk daftar pembayaran.
func loadGroupNames(c *fiber.Ctx, db *gorm.DB, payments []model.StudentPaymentModel) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string)
	if len(payments) == 0 {
		return names, nil
	}
	seen := make(map[uuid.UUID]bool)
	ids := make([]uuid.UUID, 0)
	for _, p := range payments {
		if !seen[p.PaymentGroupID] {
			seen[p.PaymentGroupID] = true
			ids = append(ids, p.PaymentGroupID)
		}
	}
	var groups []groupmodel.GroupModel
	if err := db.WithContext(c.Context()).
		Where("group_id IN ?", ids).
		Find(&groups).Error; err != nil {
		return nil, err
	}
	for _, g := range groups {
		names[g.GroupID] = g.GroupName
	}
	return names, nil
}

// writeReceiptPDF membuat dan mengirim kuitansi PDF. ownerID selain uuid.Nil
// membatasi akses ke pembayaran milik student itu sendiri.
func writeReceiptPDF(c *fiber.Ctx, db *gorm.DB, paymentID, ownerID uuid.UUID) error {
	var payment model.StudentPaymentModel
	if err := db.WithContext(c.Context()).
		First(&payment, "payment_id = ?", paymentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Pembayaran tidak ditemukan")
	}
	if ownerID != uuid.Nil && payment.PaymentStudentID != ownerID {
		return helper.JsonError(c, fiber.StatusNotFound, "Pembayaran tidak ditemukan")
	}

	var student usermodel.UserModel
	if err := db.WithContext(c.Context()).
		First(&student, "id = ?", payment.PaymentStudentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data student")
	}
	var group groupmodel.GroupModel
	if err := db.WithContext(c.Context()).
		First(&group, "group_id = ?", payment.PaymentGroupID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data grup")
	}

	code := service.VerificationCode(configs.ReceiptSecret,
		payment.PaymentID, payment.PaymentStudentID, payment.PaymentAmount, payment.PaymentMonth)

	verifyURL := ""
	if base := strings.TrimRight(os.Getenv("PUBLIC_BASE_URL"), "/"); base != "" {
		verifyURL = fmt.Sprintf("%s/api/public/payments/verify/%s/%s",
			base, payment.PaymentID, code)
	}

	data := service.ReceiptData{
		Number:      service.ReceiptNumber(payment.PaymentCreatedAt.Year(), payment.PaymentID),
		StudentName: student.FullName(),
		UserName:    student.UserName,
		GroupName:   group.GroupName,
		Month:       payment.PaymentMonth,
		Amount:      payment.PaymentAmount,
		PaidAt:      payment.PaymentCreatedAt,
		Code:        code,
		VerifyURL:   verifyURL,
	}
	pdfBytes, err := service.BuildReceiptPDF(data)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kuitansi")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s.pdf"`, data.Number))
	return c.Send(pdfBytes)
}
