// file: internals/route/details/school_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classRoute "akademiku_backend/internals/features/school/classes/route"
	classroomRoute "akademiku_backend/internals/features/school/classrooms/route"
	studentRoute "akademiku_backend/internals/features/school/students/route"
	teacherRoute "akademiku_backend/internals/features/school/teachers/route"
	timetableRoute "akademiku_backend/internals/features/school/timetable_settings/route"
)

// SchoolAdminRoutes mounts every school-domain feature under the admin group.
func SchoolAdminRoutes(admin fiber.Router, db *gorm.DB) {
	classroomRoute.ClassroomAdminRoutes(admin, db)
	timetableRoute.TimetableSettingsAdminRoutes(admin, db)
	classRoute.ClassAdminRoutes(admin, db)
	studentRoute.StudentAdminRoutes(admin, db)
	teacherRoute.TeacherAdminRoutes(admin, db)
}
