// file: internals/features/academy/academies/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"akademiku_backend/internals/features/academy/academies/controller"
)

func AcademyAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewAcademyController(db, validator.New())
	g := r.Group("/academies")
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
}
