// file: internals/features/academy/academies/controller/academy_controller.go
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"akademiku_backend/internals/features/academy/academies/dto"
	"akademiku_backend/internals/features/academy/academies/model"
	helper "akademiku_backend/internals/helpers"
)

type AcademyController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAcademyController(db *gorm.DB, v *validator.Validate) *AcademyController {
	return &AcademyController{DB: db, Validate: v}
}

func (ctl *AcademyController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid id")
	}

	var m model.AcademyModel
	if err := ctl.DB.Where("academy_id = ? AND academies_deleted_at IS NULL", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Academy not found")
		}
		return helper.Error(c, http.StatusInternalServerError, "Failed to fetch academy")
	}

	return helper.Success(c, "OK", dto.ToAcademyResponse(m))
}

func (ctl *AcademyController) Create(c *fiber.Ctx) error {
	var req dto.CreateAcademyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.AcademyModel{
		AcademiesName:     req.AcademiesName,
		AcademiesPhone:    req.AcademiesPhone,
		AcademiesAddress:  req.AcademiesAddress,
		AcademiesIsActive: true,
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Failed to save academy")
	}

	return helper.SuccessWithCode(c, http.StatusCreated, "Academy created", dto.ToAcademyResponse(m))
}

func (ctl *AcademyController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid id")
	}

	var req dto.UpdateAcademyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.AcademyModel
	if err := ctl.DB.Where("academy_id = ? AND academies_deleted_at IS NULL", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Academy not found")
		}
		return helper.Error(c, http.StatusInternalServerError, "Failed to fetch academy")
	}

	updates := map[string]interface{}{}
	if req.AcademiesName != nil {
		updates["academies_name"] = *req.AcademiesName
	}
	if req.AcademiesPhone != nil {
		updates["academies_phone"] = req.AcademiesPhone
	}
	if req.AcademiesAddress != nil {
		updates["academies_address"] = req.AcademiesAddress
	}
	if req.AcademiesIsActive != nil {
		updates["academies_is_active"] = *req.AcademiesIsActive
	}
	if len(updates) == 0 {
		return helper.Error(c, http.StatusBadRequest, "No fields to update")
	}
	updates["academies_updated_at"] = time.Now()

	if err := ctl.DB.Model(&m).Clauses(clause.Returning{}).Updates(updates).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Failed to update academy")
	}

	return helper.Success(c, "Academy updated", dto.ToAcademyResponse(m))
}
