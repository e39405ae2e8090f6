// file: internals/features/school/timetable_settings/controller/timetable_settings_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"akademiku_backend/internals/features/school/timetable_settings/dto"
	"akademiku_backend/internals/features/school/timetable_settings/repository"
	"akademiku_backend/internals/features/school/timetable_settings/service"
	helper "akademiku_backend/internals/helpers"
	authAcademy "akademiku_backend/internals/middlewares/auth_academy"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type TimetableSettingsController struct {
	Service  *service.Service
	Validate *validator.Validate
}

func NewTimetableSettingsController(db *gorm.DB, v *validator.Validate) *TimetableSettingsController {
	svc := service.NewService(
		repository.NewGormClassroomStore(db),
		repository.NewGormSettingsStore(db),
	)
	return &TimetableSettingsController{Service: svc, Validate: v}
}

// Load returns the saved configuration, data=null when the tenant has never
// saved one (the client presents defaults).
func (ctl *TimetableSettingsController) Load(c *fiber.Ctx) error {
	academyID, ok := authAcademy.AcademyIDFromLocals(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "Academy scope not found")
	}

	row, err := ctl.Service.Load(c.UserContext(), academyID)
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Failed to load timetable settings")
	}
	if row == nil {
		return helper.Success(c, "OK", nil)
	}

	out, err := dto.ToTimetableSettingsResponse(*row)
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Stored settings are malformed")
	}
	return helper.Success(c, "OK", out)
}

// Save reconciles the edited buildings and persists one settings snapshot.
func (ctl *TimetableSettingsController) Save(c *fiber.Ctx) error {
	academyID, ok := authAcademy.AcademyIDFromLocals(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "Academy scope not found")
	}

	var req dto.SaveTimetableSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()

	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	res, err := ctl.Service.Save(c.UserContext(), academyID, req.ToSaveInput())
	if err != nil {
		var invalid *service.InvalidInputError
		if errors.As(err, &invalid) {
			return helper.Error(c, http.StatusBadRequest, invalid.Msg)
		}
		return helper.Error(c, http.StatusInternalServerError, "Failed to save timetable settings")
	}

	out, err := dto.ToSaveTimetableSettingsResponse(res)
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, "Stored settings are malformed")
	}
	return helper.Success(c, "Timetable settings saved", out)
}
