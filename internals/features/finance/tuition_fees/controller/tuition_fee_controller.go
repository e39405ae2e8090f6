// file: internals/features/finance/tuition_fees/controller/tuition_fee_controller.go
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"akademiku_backend/internals/features/finance/tuition_fees/dto"
	"akademiku_backend/internals/features/finance/tuition_fees/model"
	"akademiku_backend/internals/features/finance/tuition_fees/service"
	studentModel "akademiku_backend/internals/features/school/students/model"
	helper "akademiku_backend/internals/helpers"
	authAcademy "akademiku_backend/internals/middlewares/auth_academy"
)

var billingMonthRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

type TuitionFeeController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTuitionFeeController(db *gorm.DB, v *validator.Validate) *TuitionFeeController {
	return &TuitionFeeController{DB: db, Validate: v}
}

func (ctl *TuitionFeeController) List(c *fiber.Ctx) error {
	academyID, ok := authAcademy.AcademyIDFromLocals(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "Academy scope not found")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.Model(&model.TuitionFeeModel{}).
		Where("tuition_fees_academy_id = ? AND tuition_fees_deleted_at IS NULL", academyID)
	if month := strings.TrimSpace(c.Query("billing_month")); month != "" {
		db = db.Where("tuition_fees_billing_month = ?", month)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !model.IsTuitionStatus(status) {
			return helper.Error(c, http.StatusBadRequest, "Invalid status")
		}
		db = db.Where("tuition_fees_status = ?", status)
	}
	if studentID := strings.TrimSpace(c.Query("student_id")); studentID != "" {
		id, err := uuid.Parse(studentID)
		if err != nil {
			return helper.Error(c, http.StatusBadRequest, "Invalid student_id")
		}
		db = db.Where("tuition_fees_student_id = ?", id)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Failed to count tuition fees")
	}

	var rows []model.TuitionFeeModel
	if err := db.Order("tuition_fees_billing_month DESC, tuition_fees_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Failed to fetch tuition fees")
	}

	out := make([]dto.TuitionFeeResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToTuitionFeeResponse(m))
	}

	return helper.Success(c, "OK", fiber.Map{
		"items":      out,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

func (ctl *TuitionFeeController) GetByID(c *fiber.Ctx) error {
	academyID, ok := authAcademy.AcademyIDFromLocals(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "Academy scope not found")
	}
	m, err := ctl.fetch(academyID, c.Params("id"))
	if err != nil {
		return ctl.fetchError(c, err)
	}
	return helper.Success(c, "OK", dto.ToTuitionFeeResponse(*m))
}

func (ctl *TuitionFeeController) Create(c *fiber.Ctx) error {
	academyID, ok := authAcademy.AcademyIDFromLocals(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "Academy scope not found")
	}

	var req dto.CreateTuitionFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !billingMonthRe.MatchString(req.BillingMonth) {
		return helper.Error(c, http.StatusBadRequest, "billing_month must look like 2026-03")
	}

	// invoice must point at a live student in this academy
	var cnt int64
	if err := ctl.DB.Model(&studentModel.StudentModel{}).
		Where("student_id = ? AND students_academy_id = ? AND students_deleted_at IS NULL", req.StudentID, academyID).
		Count(&cnt).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Failed to fetch student")
	}
	if cnt == 0 {
		return helper.Error(c, http.StatusBadRequest, "Student not found")
	}

	m := model.TuitionFeeModel{
		TuitionFeesAcademyID:    academyID,
		TuitionFeesStudentID:    req.StudentID,
		TuitionFeesBillingMonth: req.BillingMonth,
		TuitionFeesAmount:       req.Amount,
		TuitionFeesTitle:        req.Title,
		TuitionFeesMemo:         req.Memo,
		TuitionFeesStatus:       model.TuitionStatusUnpaid,
		TuitionFeesDueAt:        req.DueAt,
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.Error(c, http.StatusConflict, "An invoice for this student and month already exists")
		}
		return helper.Error(c, http.StatusInternalServerError, "Failed to save tuition fee")
	}

	return helper.SuccessWithCode(c, http.StatusCreated, "Tuition fee created", dto.ToTuitionFeeResponse(m))
}

func (ctl *TuitionFeeController) Update(c *fiber.Ctx) error {
	academyID, ok := authAcademy.AcademyIDFromLocals(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "Academy scope not found")
	}
	m, err := ctl.fetch(academyID, c.Params("id"))
	if err != nil {
		return ctl.fetchError(c, err)
	}

	var req dto.UpdateTuitionFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.Amount != nil {
		updates["tuition_fees_amount"] = *req.Amount
	}
	if req.Title != nil {
		updates["tuition_fees_title"] = *req.Title
	}
	if req.Memo != nil {
		updates["tuition_fees_memo"] = req.Memo
	}
	if req.DueAt != nil {
		updates["tuition_fees_due_at"] = req.DueAt
	}
	if req.Status != nil {
		updates["tuition_fees_status"] = *req.Status
		if *req.Status == model.TuitionStatusPaid && m.TuitionFeesPaidAt == nil {
			updates["tuition_fees_paid_at"] = time.Now()
		}
	}
	if len(updates) == 0 {
		return helper.Error(c, http.StatusBadRequest, "No fields to update")
	}
	updates["tuition_fees_updated_at"] = time.Now()

	if err := ctl.DB.Model(m).Clauses(clause.Returning{}).Updates(updates).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Failed to update tuition fee")
	}
	return helper.Success(c, "Tuition fee updated", dto.ToTuitionFeeResponse(*m))
}

func (ctl *TuitionFeeController) Delete(c *fiber.Ctx) error {
	academyID, ok := authAcademy.AcademyIDFromLocals(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "Academy scope not found")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid id")
	}

	tx := ctl.DB.Model(&model.TuitionFeeModel{}).
		Where("tuition_fee_id = ? AND tuition_fees_academy_id = ? AND tuition_fees_deleted_at IS NULL", id, academyID).
		Update("tuition_fees_deleted_at", time.Now())
	if tx.Error != nil {
		return helper.Error(c, http.StatusInternalServerError, "Failed to delete tuition fee")
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "Tuition fee not found or already deleted")
	}
	return helper.Success(c, "Tuition fee deleted", fiber.Map{"deleted": true})
}

// SnapToken issues (or refreshes) a midtrans snap token for an unpaid invoice.
func (ctl *TuitionFeeController) SnapToken(c *fiber.Ctx) error {
	academyID, ok := authAcademy.AcademyIDFromLocals(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "Academy scope not found")
	}
	m, err := ctl.fetch(academyID, c.Params("id"))
	if err != nil {
		return ctl.fetchError(c, err)
	}
	if m.TuitionFeesStatus == model.TuitionStatusPaid || m.TuitionFeesStatus == model.TuitionStatusWaived {
		return helper.Error(c, http.StatusConflict, "Invoice is already settled")
	}

	var req dto.SnapTokenRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.Error(c, http.StatusBadRequest, "Invalid payload")
		}
		if err := ctl.Validate.Struct(&req); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	if m.TuitionFeesOrderID == nil {
		orderID := fmt.Sprintf("TF-%s", m.TuitionFeeID)
		m.TuitionFeesOrderID = &orderID
	}

	token, redirectURL, err := service.GenerateSnapToken(*m, service.PayerInput{
		Name:  req.PayerName,
		Email: req.PayerEmail,
		Phone: req.PayerPhone,
	})
	if err != nil {
		return helper.Error(c, http.StatusBadGateway, "Failed to create payment transaction")
	}

	updates := map[string]interface{}{
		"tuition_fees_order_id":     m.TuitionFeesOrderID,
		"tuition_fees_snap_token":   token,
		"tuition_fees_redirect_url": redirectURL,
		"tuition_fees_status":       model.TuitionStatusPending,
		"tuition_fees_updated_at":   time.Now(),
	}
	if err := ctl.DB.Model(m).Updates(updates).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Failed to save payment state")
	}

	return helper.Success(c, "Snap token issued", dto.SnapTokenResponse{
		Token:       token,
		RedirectURL: redirectURL,
		OrderID:     *m.TuitionFeesOrderID,
	})
}

/* ---------- shared fetch ---------- */

var errBadID = errors.New("bad id")

func (ctl *TuitionFeeController) fetch(academyID uuid.UUID, rawID string) (*model.TuitionFeeModel, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, errBadID
	}
	var m model.TuitionFeeModel
	if err := ctl.DB.
		Where("tuition_fee_id = ? AND tuition_fees_academy_id = ? AND tuition_fees_deleted_at IS NULL", id, academyID).
		First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (ctl *TuitionFeeController) fetchError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errBadID):
		return helper.Error(c, http.StatusBadRequest, "Invalid id")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return helper.Error(c, http.StatusNotFound, "Tuition fee not found")
	default:
		return helper.Error(c, http.StatusInternalServerError, "Failed to fetch tuition fee")
	}
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate key value")
}
