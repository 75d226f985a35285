package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/KelGut13/backend-crt/config"
	appErrors "github.com/KelGut13/backend-crt/pkg/errors"
	"github.com/KelGut13/backend-crt/pkg/httputil"
	"github.com/KelGut13/backend-crt/pkg/logger"
)

const userIDKey = "userID"

// Auth validates the bearer token and stores the authenticated user id in
// request locals. Everything below the middleware receives the identifier as
// an explicit parameter; no handler reads the token again.
func Auth(cfg *config.Config, log logger.Logger) fiber.Handler {
	secret := []byte(cfg.JWT.Secret)

	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return httputil.Error(c, log, appErrors.Unauthorized("missing authorization header"))
		}

		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			return httputil.Error(c, log, appErrors.Unauthorized("invalid authorization header"))
		}

		token, err := jwt.Parse(header[len(prefix):], func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			return httputil.Error(c, log, appErrors.Unauthorized("invalid or expired token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return httputil.Error(c, log, appErrors.Unauthorized("invalid token claims"))
		}
		id, ok := claims["userId"].(float64)
		if !ok {
			return httputil.Error(c, log, appErrors.Unauthorized("invalid token claims"))
		}

		c.Locals(userIDKey, int64(id))
		return c.Next()
	}
}

// UserID returns the authenticated user id stored by Auth.
func UserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(userIDKey).(int64)
	return id
}
