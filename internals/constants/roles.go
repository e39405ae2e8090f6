package constants

// Role names carried in JWT claims.
const (
	RoleUser    = "user"
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleOwner   = "owner"
)

var (
	AdminAndAbove = []string{
		RoleAdmin,
		RoleOwner,
	}

	TeacherAndAbove = []string{
		RoleTeacher,
		RoleAdmin,
		RoleOwner,
	}
)
