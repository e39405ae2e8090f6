// file: internals/middlewares/auth_academy/jwt_auth.go
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // use the access_token cookie when no Bearer header
}

// AuthJWT verifies the HMAC access token and hydrates the tenant scope into
// c.Locals. Token issuing/refresh lives outside this service; all we need here
// is a verified academy_id.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret is required")
	}

	return func(c *fiber.Ctx) error {
		// 1) Token from Authorization: Bearer xxx (or cookie when allowed)
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		// 2) Parse + verify algorithm
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}

		c.Locals("jwt_claims", claims)

		if aid := strClaim(claims, "academy_id"); aid != "" {
			c.Locals(LocAcademyID, aid)
		}
		if role := strClaim(claims, "role"); role != "" {
			c.Locals(LocRole, role)
		}

		// user_id: prefer id, then sub, then user_id
		switch {
		case strClaim(claims, "id") != "":
			c.Locals(LocUserID, strClaim(claims, "id"))
		case strClaim(claims, "sub") != "":
			c.Locals(LocUserID, strClaim(claims, "sub"))
		case strClaim(claims, "user_id") != "":
			c.Locals(LocUserID, strClaim(claims, "user_id"))
		}

		return c.Next()
	}
}

func strClaim(m jwt.MapClaims, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
