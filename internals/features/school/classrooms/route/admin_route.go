// file: internals/features/school/classrooms/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"akademiku_backend/internals/features/school/classrooms/controller"
)

func ClassroomAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewClassroomController(db, validator.New())
	g := r.Group("/classrooms")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete) // soft delete
	g.Post("/:id/restore", ctl.Restore)
}
