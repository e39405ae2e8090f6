// file: internals/features/school/teachers/controller/teacher_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"akademiku_backend/internals/features/school/teachers/dto"
	"akademiku_backend/internals/features/school/teachers/model"
	helper "akademiku_backend/internals/helpers"
	authAcademy "akademiku_backend/internals/middlewares/auth_academy"
)

type TeacherController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTeacherController(db *gorm.DB, v *validator.Validate) *TeacherController {
	return &TeacherController{DB: db, Validate: v}
}

func (ctl *TeacherController) List(c *fiber.Ctx) error {
	academyID, ok := authAcademy.AcademyIDFromLocals(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "Academy scope not found")
	}

	paging := helper.ResolvePaging(c, 20, 100)
	search := strings.TrimSpace(c.Query("search"))

	db := ctl.DB.Model(&model.TeacherModel{}).
		Where("teachers_academy_id = ? AND teachers_deleted_at IS NULL", academyID)
	if search != "" {
		s := "%" + strings.ToLower(search) + "%"
		db = db.Where("(LOWER(teachers_name) LIKE ? OR LOWER(COALESCE(teachers_subject,'')) LIKE ?)", s, s)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Failed to count teachers")
	}

	var rows []model.TeacherModel
	if err := db.Order("teachers_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Failed to fetch teachers")
	}

	out := make([]dto.TeacherResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToTeacherResponse(m))
	}

	return helper.Success(c, "OK", fiber.Map{
		"items":      out,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

func (ctl *TeacherController) GetByID(c *fiber.Ctx) error {
	academyID, ok := authAcademy.AcademyIDFromLocals(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "Academy scope not found")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid id")
	}

	var m model.TeacherModel
	if err := ctl.DB.
		Where("teacher_id = ? AND teachers_academy_id = ? AND teachers_deleted_at IS NULL", id, academyID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Teacher not found")
		}
		return helper.Error(c, http.StatusInternalServerError, "Failed to fetch teacher")
	}

	return helper.Success(c, "OK", dto.ToTeacherResponse(m))
}

func (ctl *TeacherController) Create(c *fiber.Ctx) error {
	academyID, ok := authAcademy.AcademyIDFromLocals(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "Academy scope not found")
	}

	var req dto.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.TeacherModel{
		TeachersAcademyID: academyID,
		TeachersName:      req.TeachersName,
		TeachersPhone:     req.TeachersPhone,
		TeachersSubject:   req.TeachersSubject,
		TeachersIsActive:  true,
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Failed to save teacher")
	}

	return helper.SuccessWithCode(c, http.StatusCreated, "Teacher created", dto.ToTeacherResponse(m))
}

func (ctl *TeacherController) Update(c *fiber.Ctx) error {
	academyID, ok := authAcademy.AcademyIDFromLocals(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "Academy scope not found")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid id")
	}

	var req dto.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.TeacherModel
	if err := ctl.DB.
		Where("teacher_id = ? AND teachers_academy_id = ? AND teachers_deleted_at IS NULL", id, academyID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Teacher not found")
		}
		return helper.Error(c, http.StatusInternalServerError, "Failed to fetch teacher")
	}

	updates := map[string]interface{}{}
	if req.TeachersName != nil {
		updates["teachers_name"] = *req.TeachersName
	}
	if req.TeachersPhone != nil {
		updates["teachers_phone"] = req.TeachersPhone
	}
	if req.TeachersSubject != nil {
		updates["teachers_subject"] = req.TeachersSubject
	}
	if req.TeachersIsActive != nil {
		updates["teachers_is_active"] = *req.TeachersIsActive
	}
	if len(updates) == 0 {
		return helper.Error(c, http.StatusBadRequest, "No fields to update")
	}
	updates["teachers_updated_at"] = time.Now()

	if err := ctl.DB.Model(&m).Clauses(clause.Returning{}).Updates(updates).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Failed to update teacher")
	}

	return helper.Success(c, "Teacher updated", dto.ToTeacherResponse(m))
}

func (ctl *TeacherController) Delete(c *fiber.Ctx) error {
	academyID, ok := authAcademy.AcademyIDFromLocals(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "Academy scope not found")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid id")
	}

	tx := ctl.DB.Model(&model.TeacherModel{}).
		Where("teacher_id = ? AND teachers_academy_id = ? AND teachers_deleted_at IS NULL", id, academyID).
		Update("teachers_deleted_at", time.Now())
	if tx.Error != nil {
		return helper.Error(c, http.StatusInternalServerError, "Failed to delete teacher")
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "Teacher not found or already deleted")
	}
	return helper.Success(c, "Teacher deleted", fiber.Map{"deleted": true})
}
