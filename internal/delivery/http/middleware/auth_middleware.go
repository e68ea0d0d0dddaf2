package middleware

import (
	"strings"

	"chapel/internal/domain/service"
	"chapel/internal/usecase"

	"github.com/labstack/echo/v4"

	"chapel/internal/delivery/http/response"
)

// AuthMiddleware provides middleware for JWT authentication and the admin gate.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	authUC   usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, authUC: authUC}
}

const userIDKey = "userID"

// Authenticate validates the bearer token and stores the token subject on the
// context. Any verification failure is a 401, never a 403.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_CREDENTIALS", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(userIDKey, claims.UserID)

		return next(c)
	}
}

// RequireAdmin resolves the authenticated user and enforces the admin flag.
// It must be used AFTER the Authenticate middleware. A valid token whose user
// lacks privileges is a 403, distinct from the 401 for bad credentials.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := c.Get(userIDKey).(uint)
		if !ok {
			return response.Unauthorized(c, "MISSING_CREDENTIALS", "Authentication required")
		}

		user, err := m.authUC.GetUser(c.Request().Context(), userID)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Token subject no longer exists")
		}

		if !user.IsActive {
			return response.Forbidden(c, "INACTIVE_USER", "User account is inactive")
		}
		if !user.IsAdmin {
			return response.Forbidden(c, "ADMIN_REQUIRED", "Administrator privileges required")
		}

		return next(c)
	}
}
