package auth

import (
	"github.com/akademika/campus-api/model"
	authutil "github.com/akademika/campus-api/utils/auth"
	"github.com/akademika/campus-api/utils/middleware"
	"github.com/akademika/campus-api/utils/response"
	"github.com/akademika/campus-api/utils/validation"
	"github.com/gofiber/fiber/v2"
)

// UpdateProfileRequest represents a profile update request
type UpdateProfileRequest struct {
	FullName string `json:"full_name" validate:"omitempty,min=2,max=255"`
	Password string `json:"password" validate:"omitempty,min=8"`
}

// GetProfile retrieves the current user's profile
func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	var user model.User
	if err := h.db.First(&user, userID).Error; err != nil {
		return response.NotFound(c, "User not found")
	}

	res := UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	return response.Success(c, res)
}

// UpdateProfile updates the current user's display name or password
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var user model.User
	if err := h.db.First(&user, userID).Error; err != nil {
		return response.NotFound(c, "User not found")
	}

	if req.FullName != "" {
		user.FullName = validation.SanitizeString(req.FullName)
	}

	if req.Password != "" {
		hash, err := authutil.HashPassword(req.Password)
		if err != nil {
			return response.InternalServerError(c, "Failed to process password")
		}
		user.PasswordHash = hash

		// Invalidate all outstanding tokens after a password change
		if err := h.blacklistService.RevokeAllUserTokens(c.Context(), user.ID); err != nil {
			return response.InternalServerError(c, "Failed to invalidate sessions")
		}
	}

	if err := h.db.Save(&user).Error; err != nil {
		return response.InternalServerError(c, "Failed to update profile")
	}

	res := UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	return response.SuccessWithMessage(c, "Profile updated successfully", res)
}
