package middleware

import (
	"strings"

	"github.com/akademika/campus-api/model"
	"github.com/akademika/campus-api/utils/auth"
	"github.com/akademika/campus-api/utils/response"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthMiddleware handles JWT authentication and role gating
type AuthMiddleware struct {
	jwtManager       *auth.JWTManager
	blacklistService *auth.BlacklistService
	db               *gorm.DB
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(jwtManager *auth.JWTManager, db *gorm.DB) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager:       jwtManager,
		blacklistService: auth.NewBlacklistService(db),
		db:               db,
	}
}

// resolve validates the bearer token and loads the matching user. The role
// stored in the claims is only a hint; the profile row is authoritative, so a
// role change takes effect on the next request without re-issuing tokens.
func (m *AuthMiddleware) resolve(c *fiber.Ctx) (*auth.Claims, *model.User, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, nil, auth.ErrInvalidToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, nil, auth.ErrInvalidToken
	}

	claims, err := m.jwtManager.ValidateToken(parts[1])
	if err != nil {
		return nil, nil, err
	}

	if claims.TokenType != "access" {
		return nil, nil, auth.ErrInvalidToken
	}

	isRevoked, err := m.blacklistService.IsTokenRevoked(c.Context(), claims.ID)
	if err != nil {
		return nil, nil, err
	}
	if isRevoked {
		return nil, nil, auth.ErrInvalidToken
	}

	var user model.User
	if err := m.db.First(&user, claims.UserID).Error; err != nil {
		return nil, nil, auth.ErrInvalidToken
	}

	if user.TokenVersion != claims.TokenVersion {
		return nil, nil, auth.ErrInvalidToken
	}

	return claims, &user, nil
}

func storeIdentity(c *fiber.Ctx, claims *auth.Claims, user *model.User) {
	c.Locals("user_id", claims.UserID)
	c.Locals("user_email", claims.Email)
	c.Locals("user_role", user.Role)
	c.Locals("claims", claims)
	c.Locals("user", user)
	c.Locals("token_jti", claims.ID)
}

// Required is middleware that requires a valid access token
func (m *AuthMiddleware) Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, user, err := m.resolve(c)
		if err != nil {
			if err == auth.ErrExpiredToken {
				return response.Unauthorized(c, "Token has expired")
			}
			return response.Unauthorized(c, "Authentication required")
		}

		storeIdentity(c, claims, user)
		return c.Next()
	}
}

// Optional is middleware that resolves identity when a token is present but
// never rejects the request. Anonymous callers simply carry no identity.
func (m *AuthMiddleware) Optional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, user, err := m.resolve(c)
		if err == nil {
			storeIdentity(c, claims, user)
		}
		return c.Next()
	}
}

// RequireAdmin gates the admin surface. Missing or invalid sessions get 401,
// authenticated callers without an admin role get 403 with a denial notice.
// The check runs on every request; it is not cached across requests.
func (m *AuthMiddleware) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, user, err := m.resolve(c)
		if err != nil {
			if err == auth.ErrExpiredToken {
				return response.Unauthorized(c, "Token has expired")
			}
			return response.Unauthorized(c, "Authentication required")
		}

		if !user.IsAdmin() {
			return response.Forbidden(c, "Admin access required")
		}

		storeIdentity(c, claims, user)
		return c.Next()
	}
}

// RequireRole is middleware that requires one of the given roles. It must run
// after Required or RequireAdmin so the identity is already resolved.
func (m *AuthMiddleware) RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userRole, ok := c.Locals("user_role").(string)
		if !ok {
			return response.Forbidden(c, "Access denied")
		}

		for _, r := range roles {
			if userRole == r {
				return c.Next()
			}
		}

		return response.Forbidden(c, "Insufficient permissions")
	}
}

// GetUserID extracts user ID from context
func GetUserID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals("user_id").(uint)
	return id, ok
}

// GetUserRole extracts user role from context
func GetUserRole(c *fiber.Ctx) (string, bool) {
	r, ok := c.Locals("user_role").(string)
	return r, ok
}

// GetUser extracts the full user object from context
func GetUser(c *fiber.Ctx) (*model.User, bool) {
	u, ok := c.Locals("user").(*model.User)
	return u, ok
}

// GetTokenJTI extracts the token JTI from context
func GetTokenJTI(c *fiber.Ctx) (string, bool) {
	j, ok := c.Locals("token_jti").(string)
	return j, ok
}
