// file: internals/features/parents/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"akademiku_backend/internals/features/parents/controller"
)

// ParentAdminRoutes registers the parent linking endpoints under the admin group.
func ParentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewParentController(db, validator.New())

	g := r.Group("/parent-links")
	g.Post("/", ctl.Link)
	g.Get("/students/:student_id", ctl.ListByStudent)
}
