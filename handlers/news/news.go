package news

import (
	"strconv"

	"github.com/akademika/campus-api/model"
	"github.com/akademika/campus-api/utils/middleware"
	"github.com/akademika/campus-api/utils/response"
	"github.com/akademika/campus-api/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// NewsHandler handles news article requests
type NewsHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewNewsHandler creates a new news handler
func NewNewsHandler(db *gorm.DB) *NewsHandler {
	return &NewsHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateNewsRequest represents the request body for creating a news article
type CreateNewsRequest struct {
	Title        string `json:"title" validate:"required,min=3,max=255"`
	Category     string `json:"category" validate:"omitempty,max=100"`
	Excerpt      string `json:"excerpt" validate:"omitempty,max=1000"`
	Content      string `json:"content" validate:"required"`
	FullContent  string `json:"full_content" validate:"omitempty"`
	ExternalLink string `json:"external_link" validate:"omitempty,url,max=512"`
	ImageURL     string `json:"image_url" validate:"omitempty,url,max=512"`
	IsPublished  *bool  `json:"is_published" validate:"omitempty"`
}

// UpdateNewsRequest represents the request body for updating a news article
type UpdateNewsRequest struct {
	Title        string `json:"title" validate:"omitempty,min=3,max=255"`
	Category     string `json:"category" validate:"omitempty,max=100"`
	Excerpt      string `json:"excerpt" validate:"omitempty,max=1000"`
	Content      string `json:"content" validate:"omitempty"`
	FullContent  string `json:"full_content" validate:"omitempty"`
	ExternalLink string `json:"external_link" validate:"omitempty,url,max=512"`
	ImageURL     string `json:"image_url" validate:"omitempty,url,max=512"`
	IsPublished  *bool  `json:"is_published" validate:"omitempty"`
}

// ListNews handles GET /api/v1/news
// Anonymous callers only see published articles; admins see everything.
func (h *NewsHandler) ListNews(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	search := c.Query("search", "")
	category := c.Query("category", "")

	query := h.db.Model(&model.News{})

	if search != "" {
		query = query.Where("title ILIKE ? OR excerpt ILIKE ?",
			"%"+search+"%", "%"+search+"%")
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	user, _ := middleware.GetUser(c)
	if user == nil || !user.IsAdmin() {
		query = query.Where("is_published = ?", true)
	} else if published := c.Query("is_published", ""); published != "" {
		query = query.Where("is_published = ?", published == "true")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count news")
	}

	pagination := response.CalculatePagination(page, limit, total)
	offset := (pagination.CurrentPage - 1) * pagination.PerPage

	var articles []model.News
	if err := query.Order("created_at DESC").
		Limit(pagination.PerPage).
		Offset(offset).
		Find(&articles).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch news")
	}

	return response.Paginated(c, articles, pagination)
}

// GetNews handles GET /api/v1/news/:id
func (h *NewsHandler) GetNews(c *fiber.Ctx) error {
	id := c.Params("id")

	var article model.News
	if err := h.db.First(&article, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "News article not found")
		}
		return response.InternalServerError(c, "Failed to fetch news article")
	}

	user, _ := middleware.GetUser(c)
	if !article.IsPublished && (user == nil || !user.IsAdmin()) {
		return response.NotFound(c, "News article not found")
	}

	return response.Success(c, article)
}

// CreateNews handles POST /api/v1/admin/news
func (h *NewsHandler) CreateNews(c *fiber.Ctx) error {
	var req CreateNewsRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var existing model.News
	if err := h.db.Where("title = ?", req.Title).First(&existing).Error; err == nil {
		return response.Conflict(c, "A news article with this title already exists")
	}

	article := model.News{
		Title:        validation.SanitizeString(req.Title),
		Category:     validation.SanitizeString(req.Category),
		Excerpt:      validation.SanitizeString(req.Excerpt),
		Content:      req.Content,
		FullContent:  req.FullContent,
		ExternalLink: req.ExternalLink,
		ImageURL:     req.ImageURL,
	}
	if req.IsPublished != nil {
		article.IsPublished = *req.IsPublished
	}

	if err := h.db.Create(&article).Error; err != nil {
		return response.InternalServerError(c, "Failed to create news article")
	}

	return response.Created(c, "News article created successfully", article)
}

// UpdateNews handles PUT /api/v1/admin/news/:id
func (h *NewsHandler) UpdateNews(c *fiber.Ctx) error {
	id := c.Params("id")

	var article model.News
	if err := h.db.First(&article, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "News article not found")
		}
		return response.InternalServerError(c, "Failed to fetch news article")
	}

	var req UpdateNewsRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	if req.Title != "" {
		article.Title = validation.SanitizeString(req.Title)
	}
	if req.Category != "" {
		article.Category = validation.SanitizeString(req.Category)
	}
	if req.Excerpt != "" {
		article.Excerpt = validation.SanitizeString(req.Excerpt)
	}
	if req.Content != "" {
		article.Content = req.Content
	}
	if req.FullContent != "" {
		article.FullContent = req.FullContent
	}
	if req.ExternalLink != "" {
		article.ExternalLink = req.ExternalLink
	}
	if req.ImageURL != "" {
		article.ImageURL = req.ImageURL
	}
	if req.IsPublished != nil {
		article.IsPublished = *req.IsPublished
	}

	if err := h.db.Save(&article).Error; err != nil {
		return response.InternalServerError(c, "Failed to update news article")
	}

	return response.SuccessWithMessage(c, "News article updated successfully", article)
}

// DeleteNews handles DELETE /api/v1/admin/news/:id
func (h *NewsHandler) DeleteNews(c *fiber.Ctx) error {
	id := c.Params("id")

	result := h.db.Delete(&model.News{}, id)
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to delete news article")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "News article not found")
	}

	return response.SuccessWithMessage(c, "News article deleted successfully", fiber.Map{"id": id})
}

// ToggleNews handles PATCH /api/v1/admin/news/:id/toggle
// Flips the published flag.
func (h *NewsHandler) ToggleNews(c *fiber.Ctx) error {
	id := c.Params("id")

	var article model.News
	if err := h.db.First(&article, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "News article not found")
		}
		return response.InternalServerError(c, "Failed to fetch news article")
	}

	article.IsPublished = !article.IsPublished
	if err := h.db.Save(&article).Error; err != nil {
		return response.InternalServerError(c, "Failed to update news article")
	}

	return response.SuccessWithMessage(c, "News article status updated", article)
}
