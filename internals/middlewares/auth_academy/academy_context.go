// file: internals/middlewares/auth_academy/academy_context.go
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* ==========================
   Locals keys
========================== */

const (
	LocAcademyID = "academy_id"
	LocUserID    = "user_id"
	LocRole      = "role"
)

// AcademyIDFromLocals reads the hydrated tenant scope. Second return is false
// when the scope is missing or malformed.
func AcademyIDFromLocals(c *fiber.Ctx) (uuid.UUID, bool) {
	v := c.Locals(LocAcademyID)
	if v == nil {
		return uuid.Nil, false
	}
	switch t := v.(type) {
	case string:
		id, err := uuid.Parse(strings.TrimSpace(t))
		if err != nil {
			return uuid.Nil, false
		}
		return id, true
	case uuid.UUID:
		return t, true
	default:
		return uuid.Nil, false
	}
}

// RequireRole guards a group behind one of the given roles.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[strings.ToLower(strings.TrimSpace(r))] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocRole).(string)
		role = strings.ToLower(strings.TrimSpace(role))
		if _, ok := allowed[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, "Insufficient role")
		}
		return c.Next()
	}
}
