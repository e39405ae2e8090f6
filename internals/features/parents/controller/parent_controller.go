// file: internals/features/parents/controller/parent_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"akademiku_backend/internals/features/parents/dto"
	"akademiku_backend/internals/features/parents/model"
	"akademiku_backend/internals/features/parents/repository"
	"akademiku_backend/internals/features/parents/service"
	helper "akademiku_backend/internals/helpers"
	authAcademy "akademiku_backend/internals/middlewares/auth_academy"
)

type ParentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Links    *service.LinkService
}

func NewParentController(db *gorm.DB, v *validator.Validate) *ParentController {
	return &ParentController{
		DB:       db,
		Validate: v,
		Links: service.NewLinkService(
			repository.NewGormParentStore(db),
			repository.NewGormStudentStore(db),
		),
	}
}

// Link finds or creates the parent behind a phone number and attaches it to
// the academy and the student in one call.
func (ctl *ParentController) Link(c *fiber.Ctx) error {
	academyID, ok := authAcademy.AcademyIDFromLocals(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "Academy scope not found")
	}

	var req dto.LinkParentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	res, err := ctl.Links.LinkByPhone(c.UserContext(), academyID, service.LinkInput{
		Phone:      req.Phone,
		ParentName: req.ParentName,
		StudentID:  req.StudentID,
	})
	if err != nil {
		var inv *service.InvalidInputError
		if errors.As(err, &inv) {
			return helper.Error(c, http.StatusBadRequest, inv.Msg)
		}
		return helper.Error(c, http.StatusInternalServerError, "Failed to link parent")
	}

	return helper.Success(c, "Parent linked", dto.LinkParentResponse{
		Parent:        dto.ToParentResponse(res.Parent),
		ParentCreated: res.ParentCreated,
		AcademyLinked: res.AcademyLinked,
		StudentLinked: res.StudentLinked,
	})
}

// ListByStudent returns the parents linked to one student.
func (ctl *ParentController) ListByStudent(c *fiber.Ctx) error {
	academyID, ok := authAcademy.AcademyIDFromLocals(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "Academy scope not found")
	}
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid student_id")
	}

	// scope check before following the join
	var cnt int64
	if err := ctl.DB.Table("students").
		Where("student_id = ? AND students_academy_id = ? AND students_deleted_at IS NULL", studentID, academyID).
		Count(&cnt).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Failed to fetch student")
	}
	if cnt == 0 {
		return helper.Error(c, http.StatusNotFound, "Student not found")
	}

	var rows []model.ParentModel
	if err := ctl.DB.
		Joins("JOIN parent_students ps ON ps.parent_students_parent_id = parents.parent_id").
		Where("ps.parent_students_student_id = ? AND parents.parents_deleted_at IS NULL", studentID).
		Order("parents.parents_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Failed to fetch parents")
	}

	out := make([]dto.ParentResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToParentResponse(m))
	}
	return helper.Success(c, "OK", out)
}
