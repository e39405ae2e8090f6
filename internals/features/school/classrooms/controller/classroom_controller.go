// file: internals/features/school/classrooms/controller/classroom_controller.go
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

	"akademiku_backend/internals/features/school/classrooms/dto"
	"akademiku_backend/internals/features/school/classrooms/model"
	helper "akademiku_backend/internals/helpers"
	authAcademy "akademiku_backend/internals/middlewares/auth_academy"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type ClassroomController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassroomController(db *gorm.DB, v *validator.Validate) *ClassroomController {
	return &ClassroomController{DB: db, Validate: v}
}

func (ctl *ClassroomController) List(c *fiber.Ctx) error {
	academyID, ok := authAcademy.AcademyIDFromLocals(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "Academy scope not found")
	}

	var q dto.ListClassroomsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid query")
	}
	q.Normalize()

	db := ctl.DB.Model(&model.ClassroomModel{}).
		Where("classrooms_academy_id = ? AND classrooms_deleted_at IS NULL", academyID)

	// search → ILIKE on name
	if q.Search != "" {
		s := "%" + strings.ToLower(q.Search) + "%"
		db = db.Where("LOWER(classrooms_name) LIKE ?", s)
	}

	switch q.Sort {
	case "name_asc":
		db = db.Order("classrooms_name ASC")
	case "name_desc":
		db = db.Order("classrooms_name DESC")
	case "created_asc":
		db = db.Order("classrooms_created_at ASC")
	default:
		db = db.Order("classrooms_created_at DESC")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Failed to count classrooms")
	}

	var rows []model.ClassroomModel
	if err := db.Limit(q.Limit).Offset(q.Offset).Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Failed to fetch classrooms")
	}

	out := make([]dto.ClassroomResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToClassroomResponse(m))
	}

	return helper.Success(c, "OK", fiber.Map{
		"items":  out,
		"total":  total,
		"limit":  q.Limit,
		"offset": q.Offset,
	})
}

func (ctl *ClassroomController) GetByID(c *fiber.Ctx) error {
	academyID, ok := authAcademy.AcademyIDFromLocals(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "Academy scope not found")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid id")
	}

	var m model.ClassroomModel
	if err := ctl.DB.Where(
		"classroom_id = ? AND classrooms_academy_id = ? AND classrooms_deleted_at IS NULL",
		id, academyID,
	).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Classroom not found")
		}
		return helper.Error(c, http.StatusInternalServerError, "Failed to fetch classroom")
	}

	return helper.Success(c, "OK", dto.ToClassroomResponse(m))
}

func (ctl *ClassroomController) Create(c *fiber.Ctx) error {
	academyID, ok := authAcademy.AcademyIDFromLocals(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "Academy scope not found")
	}

	var req dto.CreateClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()

	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	capacity := 0
	if req.ClassroomsCapacity != nil {
		capacity = *req.ClassroomsCapacity
	}

	m := model.ClassroomModel{
		ClassroomsAcademyID: academyID,
		ClassroomsName:      req.ClassroomsName,
		ClassroomsCapacity:  capacity,
	}

	if err := ctl.DB.Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.Error(c, http.StatusConflict, "Classroom name already in use")
		}
		return helper.Error(c, http.StatusInternalServerError, "Failed to save classroom")
	}

	return helper.SuccessWithCode(c, http.StatusCreated, "Classroom created", dto.ToClassroomResponse(m))
}

func (ctl *ClassroomController) Update(c *fiber.Ctx) error {
	academyID, ok := authAcademy.AcademyIDFromLocals(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "Academy scope not found")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid id")
	}

	var req dto.UpdateClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// fetch the alive, tenant-matched row first
	var m model.ClassroomModel
	if err := ctl.DB.
		Where("classroom_id = ? AND classrooms_academy_id = ? AND classrooms_deleted_at IS NULL", id, academyID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Classroom not found")
		}
		return helper.Error(c, http.StatusInternalServerError, "Failed to fetch classroom")
	}

	updates := map[string]interface{}{}
	if req.ClassroomsName != nil {
		updates["classrooms_name"] = *req.ClassroomsName
	}
	if req.ClassroomsCapacity != nil {
		updates["classrooms_capacity"] = *req.ClassroomsCapacity
	}
	if len(updates) == 0 {
		return helper.Error(c, http.StatusBadRequest, "No fields to update")
	}
	updates["classrooms_updated_at"] = time.Now()

	if err := ctl.DB.Model(&m).Clauses(clause.Returning{}).Updates(updates).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.Error(c, http.StatusConflict, "Classroom name already in use")
		}
		return helper.Error(c, http.StatusInternalServerError, "Failed to update classroom")
	}

	return helper.Success(c, "Classroom updated", dto.ToClassroomResponse(m))
}

func (ctl *ClassroomController) Delete(c *fiber.Ctx) error {
	academyID, ok := authAcademy.AcademyIDFromLocals(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "Academy scope not found")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid id")
	}

	tx := ctl.DB.Model(&model.ClassroomModel{}).
		Where("classroom_id = ? AND classrooms_academy_id = ? AND classrooms_deleted_at IS NULL", id, academyID).
		Update("classrooms_deleted_at", time.Now())
	if tx.Error != nil {
		return helper.Error(c, http.StatusInternalServerError, "Failed to delete classroom")
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "Classroom not found or already deleted")
	}
	return helper.Success(c, "Classroom deleted", fiber.Map{"deleted": true})
}

func (ctl *ClassroomController) Restore(c *fiber.Ctx) error {
	academyID, ok := authAcademy.AcademyIDFromLocals(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "Academy scope not found")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid id")
	}

	tx := ctl.DB.Model(&model.ClassroomModel{}).
		Unscoped().
		Where("classroom_id = ? AND classrooms_academy_id = ? AND classrooms_deleted_at IS NOT NULL", id, academyID).
		Updates(map[string]interface{}{
			"classrooms_deleted_at": nil,
			"classrooms_updated_at": time.Now(),
		})
	if tx.Error != nil {
		if isUniqueViolation(tx.Error) {
			// restore can clash with a partial unique index on alive names
			return helper.Error(c, http.StatusConflict, "Restore failed: name already used by another classroom")
		}
		return helper.Error(c, http.StatusInternalServerError, "Failed to restore classroom")
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "Classroom not found or not deleted")
	}

	var m model.ClassroomModel
	if err := ctl.DB.
		Where("classroom_id = ? AND classrooms_academy_id = ? AND classrooms_deleted_at IS NULL", id, academyID).
		First(&m).Error; err != nil {
		return helper.Success(c, "Classroom restored", fiber.Map{"restored": true})
	}
	return helper.Success(c, "Classroom restored", dto.ToClassroomResponse(m))
}

/* =======================================================
   HELPERS
   ======================================================= */

// Postgres unique violation ("23505") without importing pgconn
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint")
}
