package middleware

import (
	"net/http"
	"strings"

	"finder-service/internal/authz"
	"finder-service/pkg/jwtutil"
	"finder-service/pkg/logger"
	"finder-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AuthMiddleware validates the Bearer JWT and stores the dealer claims
// in the request context
func AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromEcho(c)
		prometheus.AuthAttemptsCounter.Inc()

		// Get the Authorization header
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			log.Warn("Missing Authorization header")
			prometheus.AuthErrorsCounter.Inc()
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing authorization token"})
		}

		// Check if it's a Bearer token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			log.Warn("Invalid Authorization header format")
			prometheus.AuthErrorsCounter.Inc()
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid authorization format, expected Bearer token"})
		}

		// Validate the token
		claims, err := jwtutil.ValidateToken(parts[1])
		if err != nil {
			log.Error("Invalid JWT token", zap.Error(err))
			prometheus.AuthErrorsCounter.Inc()
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
		}

		// Store dealer info in context for later use
		c.Set("claims", claims)
		c.Set("user_id", claims.UserID)
		c.Set("login", claims.Login)

		prometheus.AuthSuccessCounter.Inc()
		return next(c)
	}
}

// Authorize resolves the policy for a resource operation and checks the
// acting dealer's capability set against it
func Authorize(resource, action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log := logger.FromEcho(c)

			claims, ok := c.Get("claims").(*jwtutil.DealerClaims)
			if !ok {
				log.Error("Authorization requested without authenticated claims")
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
			}

			policy, ok := authz.Lookup(resource, action)
			if !ok {
				log.Error("No policy registered for operation",
					zap.String("resource", resource),
					zap.String("action", action))
				return c.JSON(http.StatusForbidden, echo.Map{"error": "access denied"})
			}

			if !authz.Allowed(policy, claims.Capabilities) {
				log.Warn("Capability check failed",
					zap.String("resource", resource),
					zap.String("action", action),
					zap.Uint("user_id", claims.UserID),
					zap.String("required", policy.Capability))
				return c.JSON(http.StatusForbidden, echo.Map{"error": "access denied"})
			}

			return next(c)
		}
	}
}

// DealerIDFromContext retrieves the acting dealer's id from the context.
// Returns 0, false when the request is unauthenticated.
func DealerIDFromContext(c echo.Context) (uint, bool) {
	claims, ok := c.Get("claims").(*jwtutil.DealerClaims)
	if !ok {
		return 0, false
	}
	return claims.UserID, true
}
