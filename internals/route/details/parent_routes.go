// file: internals/route/details/parent_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	parentRoute "akademiku_backend/internals/features/parents/route"
)

func ParentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	parentRoute.ParentAdminRoutes(admin, db)
}
