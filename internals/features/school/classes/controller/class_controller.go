// file: internals/features/school/classes/controller/class_controller.go
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

	"akademiku_backend/internals/features/school/classes/dto"
	"akademiku_backend/internals/features/school/classes/model"
	helper "akademiku_backend/internals/helpers"
	authAcademy "akademiku_backend/internals/middlewares/auth_academy"
)

type ClassController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassController(db *gorm.DB, v *validator.Validate) *ClassController {
	return &ClassController{DB: db, Validate: v}
}

func (ctl *ClassController) List(c *fiber.Ctx) error {
	academyID, ok := authAcademy.AcademyIDFromLocals(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "Academy scope not found")
	}

	paging := helper.ResolvePaging(c, 20, 100)
	search := strings.TrimSpace(c.Query("search"))

	db := ctl.DB.Model(&model.ClassModel{}).
		Where("classes_academy_id = ? AND classes_deleted_at IS NULL", academyID)
	if search != "" {
		db = db.Where("LOWER(classes_name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Failed to count classes")
	}

	var rows []model.ClassModel
	if err := db.Order("classes_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Failed to fetch classes")
	}

	out := make([]dto.ClassResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToClassResponse(m))
	}

	return helper.Success(c, "OK", fiber.Map{
		"items":      out,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

func (ctl *ClassController) GetByID(c *fiber.Ctx) error {
	academyID, ok := authAcademy.AcademyIDFromLocals(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "Academy scope not found")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid id")
	}

	var m model.ClassModel
	if err := ctl.DB.
		Where("class_id = ? AND classes_academy_id = ? AND classes_deleted_at IS NULL", id, academyID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Class not found")
		}
		return helper.Error(c, http.StatusInternalServerError, "Failed to fetch class")
	}

	return helper.Success(c, "OK", dto.ToClassResponse(m))
}

func (ctl *ClassController) Create(c *fiber.Ctx) error {
	academyID, ok := authAcademy.AcademyIDFromLocals(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "Academy scope not found")
	}

	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.ClassModel{
		ClassesAcademyID:   academyID,
		ClassesName:        req.ClassesName,
		ClassesTeacherID:   req.ClassesTeacherID,
		ClassesClassroomID: req.ClassesClassroomID,
		ClassesDayOfWeek:   req.ClassesDayOfWeek,
		ClassesStartTime:   req.ClassesStartTime,
		ClassesEndTime:     req.ClassesEndTime,
		ClassesIsActive:    true,
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Failed to save class")
	}

	return helper.SuccessWithCode(c, http.StatusCreated, "Class created", dto.ToClassResponse(m))
}

func (ctl *ClassController) Update(c *fiber.Ctx) error {
	academyID, ok := authAcademy.AcademyIDFromLocals(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "Academy scope not found")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid id")
	}

	var req dto.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.ClassModel
	if err := ctl.DB.
		Where("class_id = ? AND classes_academy_id = ? AND classes_deleted_at IS NULL", id, academyID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Class not found")
		}
		return helper.Error(c, http.StatusInternalServerError, "Failed to fetch class")
	}

	updates := map[string]interface{}{}
	if req.ClassesName != nil {
		updates["classes_name"] = *req.ClassesName
	}
	if req.ClassesTeacherID != nil {
		updates["classes_teacher_id"] = req.ClassesTeacherID
	}
	if req.ClassesClassroomID != nil {
		updates["classes_classroom_id"] = req.ClassesClassroomID
	}
	if req.ClassesDayOfWeek != nil {
		updates["classes_day_of_week"] = req.ClassesDayOfWeek
	}
	if req.ClassesStartTime != nil {
		updates["classes_start_time"] = req.ClassesStartTime
	}
	if req.ClassesEndTime != nil {
		updates["classes_end_time"] = req.ClassesEndTime
	}
	if req.ClassesIsActive != nil {
		updates["classes_is_active"] = *req.ClassesIsActive
	}
	if len(updates) == 0 {
		return helper.Error(c, http.StatusBadRequest, "No fields to update")
	}
	updates["classes_updated_at"] = time.Now()

	if err := ctl.DB.Model(&m).Clauses(clause.Returning{}).Updates(updates).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Failed to update class")
	}

	return helper.Success(c, "Class updated", dto.ToClassResponse(m))
}

func (ctl *ClassController) Delete(c *fiber.Ctx) error {
	academyID, ok := authAcademy.AcademyIDFromLocals(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "Academy scope not found")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid id")
	}

	tx := ctl.DB.Model(&model.ClassModel{}).
		Where("class_id = ? AND classes_academy_id = ? AND classes_deleted_at IS NULL", id, academyID).
		Update("classes_deleted_at", time.Now())
	if tx.Error != nil {
		return helper.Error(c, http.StatusInternalServerError, "Failed to delete class")
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "Class not found or already deleted")
	}
	return helper.Success(c, "Class deleted", fiber.Map{"deleted": true})
}
