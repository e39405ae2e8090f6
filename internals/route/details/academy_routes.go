// file: internals/route/details/academy_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	academyRoute "akademiku_backend/internals/features/academy/academies/route"
)

func AcademyAdminRoutes(admin fiber.Router, db *gorm.DB) {
	academyRoute.AcademyAdminRoutes(admin, db)
}
