// file: internals/route/index.go
package routes

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"akademiku_backend/internals/constants"
	"akademiku_backend/internals/middlewares"
	authAcademy "akademiku_backend/internals/middlewares/auth_academy"
	routeDetails "akademiku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	log.Println("[INFO] Setting up base routes...")
	BaseRoutes(app, db)

	// ===================== ADMIN (per academy) =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + academy scope + role check)...")
	admin := app.Group("/api/a",
		authAcademy.AuthJWT(authAcademy.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		authAcademy.RequireRole(constants.AdminAndAbove...),
		middlewares.AdminWriteRateLimiter(),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Academy routes...")
	routeDetails.AcademyAdminRoutes(admin, db)

	log.Println("[INFO] Mounting School routes...")
	routeDetails.SchoolAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Parent routes...")
	routeDetails.ParentAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Finance routes...")
	routeDetails.FinanceAdminRoutes(admin, db)
}
