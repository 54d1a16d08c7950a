package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"chirp/internal/config"
	"chirp/internal/models"
)

var jwtSecret []byte

// InitMiddleware wires runtime configuration into the middleware package.
func InitMiddleware(cfg *config.Config) {
	jwtSecret = []byte(cfg.JWTSecret)
}

// AuthRequired validates the bearer token on the request and stores the
// caller's user id in Locals under "userID". Tokens are issued by the
// identity provider upstream of this service; the subject claim carries
// the opaque user id.
func AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized, models.NewUnauthorizedError("missing authorization header"))
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		if tokenStr == header {
			return models.RespondWithError(c, fiber.StatusUnauthorized, models.NewUnauthorizedError("malformed authorization header"))
		}

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return jwtSecret, nil
		})
		if err != nil || !token.Valid {
			return models.RespondWithError(c, fiber.StatusUnauthorized, models.NewUnauthorizedError("invalid token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized, models.NewUnauthorizedError("invalid token claims"))
		}

		sub, err := claims.GetSubject()
		if err != nil || sub == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized, models.NewUnauthorizedError("token missing subject"))
		}

		c.Locals("userID", sub)
		// Sync to UserContext for logging and downstream services
		c.SetUserContext(context.WithValue(c.UserContext(), UserIDKey, sub))
		return c.Next()
	}
}
