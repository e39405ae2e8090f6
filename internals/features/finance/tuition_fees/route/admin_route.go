// file: internals/features/finance/tuition_fees/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"akademiku_backend/internals/features/finance/tuition_fees/controller"
)

// TuitionFeeAdminRoutes registers invoice CRUD plus snap-token issuance.
func TuitionFeeAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewTuitionFeeController(db, validator.New())

	g := r.Group("/tuition-fees")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
	g.Post("/:id/snap-token", ctl.SnapToken)
}
