// file: internals/features/school/students/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"akademiku_backend/internals/features/school/students/controller"
)

func StudentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewStudentController(db, validator.New())
	g := r.Group("/students")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
