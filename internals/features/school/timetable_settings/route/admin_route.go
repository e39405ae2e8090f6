// file: internals/features/school/timetable_settings/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"akademiku_backend/internals/features/school/timetable_settings/controller"
)

func TimetableSettingsAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewTimetableSettingsController(db, validator.New())
	g := r.Group("/timetable-settings")
	g.Get("/", ctl.Load)
	g.Post("/", ctl.Save)
}
