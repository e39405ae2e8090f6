// file: internals/features/school/students/controller/student_controller.go
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

	"akademiku_backend/internals/features/school/students/dto"
	"akademiku_backend/internals/features/school/students/model"
	helper "akademiku_backend/internals/helpers"
	authAcademy "akademiku_backend/internals/middlewares/auth_academy"
)

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentController(db *gorm.DB, v *validator.Validate) *StudentController {
	return &StudentController{DB: db, Validate: v}
}

func (ctl *StudentController) List(c *fiber.Ctx) error {
	academyID, ok := authAcademy.AcademyIDFromLocals(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "Academy scope not found")
	}

	paging := helper.ResolvePaging(c, 20, 100)
	search := strings.TrimSpace(c.Query("search"))

	db := ctl.DB.Model(&model.StudentModel{}).
		Where("students_academy_id = ? AND students_deleted_at IS NULL", academyID)
	if search != "" {
		s := "%" + strings.ToLower(search) + "%"
		db = db.Where("(LOWER(students_name) LIKE ? OR COALESCE(students_phone,'') LIKE ? OR COALESCE(students_parent_phone,'') LIKE ?)", s, search+"%", search+"%")
	}
	if classID := strings.TrimSpace(c.Query("class_id")); classID != "" {
		id, err := uuid.Parse(classID)
		if err != nil {
			return helper.Error(c, http.StatusBadRequest, "Invalid class_id")
		}
		db = db.Where("students_class_id = ?", id)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Failed to count students")
	}

	var rows []model.StudentModel
	if err := db.Order("students_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Failed to fetch students")
	}

	out := make([]dto.StudentResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToStudentResponse(m))
	}

	return helper.Success(c, "OK", fiber.Map{
		"items":      out,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	academyID, ok := authAcademy.AcademyIDFromLocals(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "Academy scope not found")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid id")
	}

	var m model.StudentModel
	if err := ctl.DB.
		Where("student_id = ? AND students_academy_id = ? AND students_deleted_at IS NULL", id, academyID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Student not found")
		}
		return helper.Error(c, http.StatusInternalServerError, "Failed to fetch student")
	}

	return helper.Success(c, "OK", dto.ToStudentResponse(m))
}

func (ctl *StudentController) Create(c *fiber.Ctx) error {
	academyID, ok := authAcademy.AcademyIDFromLocals(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "Academy scope not found")
	}

	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.StudentModel{
		StudentsAcademyID:   academyID,
		StudentsName:        req.StudentsName,
		StudentsGrade:       req.StudentsGrade,
		StudentsPhone:       req.StudentsPhone,
		StudentsParentPhone: req.StudentsParentPhone,
		StudentsClassID:     req.StudentsClassID,
		StudentsIsActive:    true,
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Failed to save student")
	}

	return helper.SuccessWithCode(c, http.StatusCreated, "Student created", dto.ToStudentResponse(m))
}

func (ctl *StudentController) Update(c *fiber.Ctx) error {
	academyID, ok := authAcademy.AcademyIDFromLocals(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "Academy scope not found")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid id")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.StudentModel
	if err := ctl.DB.
		Where("student_id = ? AND students_academy_id = ? AND students_deleted_at IS NULL", id, academyID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Student not found")
		}
		return helper.Error(c, http.StatusInternalServerError, "Failed to fetch student")
	}

	updates := map[string]interface{}{}
	if req.StudentsName != nil {
		updates["students_name"] = *req.StudentsName
	}
	if req.StudentsGrade != nil {
		updates["students_grade"] = req.StudentsGrade
	}
	if req.StudentsPhone != nil {
		updates["students_phone"] = req.StudentsPhone
	}
	if req.StudentsParentPhone != nil {
		updates["students_parent_phone"] = req.StudentsParentPhone
	}
	if req.StudentsClassID != nil {
		updates["students_class_id"] = req.StudentsClassID
	}
	if req.StudentsIsActive != nil {
		updates["students_is_active"] = *req.StudentsIsActive
	}
	if len(updates) == 0 {
		return helper.Error(c, http.StatusBadRequest, "No fields to update")
	}
	updates["students_updated_at"] = time.Now()

	if err := ctl.DB.Model(&m).Clauses(clause.Returning{}).Updates(updates).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Failed to update student")
	}

	return helper.Success(c, "Student updated", dto.ToStudentResponse(m))
}

func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	academyID, ok := authAcademy.AcademyIDFromLocals(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "Academy scope not found")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid id")
	}

	tx := ctl.DB.Model(&model.StudentModel{}).
		Where("student_id = ? AND students_academy_id = ? AND students_deleted_at IS NULL", id, academyID).
		Update("students_deleted_at", time.Now())
	if tx.Error != nil {
		return helper.Error(c, http.StatusInternalServerError, "Failed to delete student")
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "Student not found or already deleted")
	}
	return helper.Success(c, "Student deleted", fiber.Map{"deleted": true})
}
