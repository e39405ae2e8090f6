// file: internals/route/details/finance_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tuitionRoute "akademiku_backend/internals/features/finance/tuition_fees/route"
)

func FinanceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	tuitionRoute.TuitionFeeAdminRoutes(admin, db)
}
