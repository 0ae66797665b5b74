package admin

import (
	"strconv"

	"github.com/akademika/campus-api/model"
	authutil "github.com/akademika/campus-api/utils/auth"
	"github.com/akademika/campus-api/utils/middleware"
	"github.com/akademika/campus-api/utils/response"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UpdateRoleRequest represents a role change request
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin super_admin"`
}

// ListUsers retrieves all user profiles
// GET /admin/users
func ListUsers(c *fiber.Ctx, db *gorm.DB) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	search := c.Query("search", "")

	query := db.Model(&model.User{})
	if search != "" {
		query = query.Where("email ILIKE ? OR full_name ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count users")
	}

	pagination := response.CalculatePagination(page, limit, total)
	offset := (pagination.CurrentPage - 1) * pagination.PerPage

	var users []model.User
	if err := query.Order("created_at DESC").
		Limit(pagination.PerPage).
		Offset(offset).
		Find(&users).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch users")
	}

	return response.Paginated(c, users, pagination)
}

// UpdateUserRole changes another user's role. Only a super admin may grant or
// revoke admin roles, and nobody can change their own role.
// PUT /admin/users/:id/role
func UpdateUserRole(c *fiber.Ctx, db *gorm.DB) error {
	caller, ok := middleware.GetUser(c)
	if !ok || caller == nil {
		return response.Unauthorized(c, "Not authenticated")
	}

	if caller.Role != model.RoleSuperAdmin {
		return response.Forbidden(c, "Only a super admin can change user roles")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	if uint(id) == caller.ID {
		return response.BadRequest(c, "You cannot change your own role")
	}

	var req UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if !model.ValidRole(req.Role) {
		return response.BadRequest(c, "Invalid role")
	}

	var user model.User
	if err := db.First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to fetch user")
	}

	user.Role = req.Role
	if err := db.Save(&user).Error; err != nil {
		return response.InternalServerError(c, "Failed to update role")
	}

	// Outstanding tokens carry the old role; force re-authentication
	blacklist := authutil.NewBlacklistService(db)
	if err := blacklist.RevokeAllUserTokens(c.Context(), user.ID); err != nil {
		return response.InternalServerError(c, "Failed to invalidate user sessions")
	}

	return response.SuccessWithMessage(c, "User role updated successfully", user)
}

// DeleteUser removes a user account
// DELETE /admin/users/:id
func DeleteUser(c *fiber.Ctx, db *gorm.DB) error {
	caller, ok := middleware.GetUser(c)
	if !ok || caller == nil {
		return response.Unauthorized(c, "Not authenticated")
	}

	if caller.Role != model.RoleSuperAdmin {
		return response.Forbidden(c, "Only a super admin can delete users")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	if uint(id) == caller.ID {
		return response.BadRequest(c, "You cannot delete your own account")
	}

	result := db.Delete(&model.User{}, id)
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to delete user")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "User not found")
	}

	return response.SuccessWithMessage(c, "User deleted successfully", fiber.Map{"id": id})
}
