package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/radianceacademy/radiance-backend/internal/model"
	"github.com/radianceacademy/radiance-backend/internal/repository"
	"github.com/radianceacademy/radiance-backend/internal/response"
	"github.com/radianceacademy/radiance-backend/internal/service"
	"github.com/radianceacademy/radiance-backend/internal/validator"
)

// AchievementHandler handles achievement endpoints.
type AchievementHandler struct {
	achievements *service.AchievementService
}

// NewAchievementHandler creates a new AchievementHandler.
func NewAchievementHandler(achievements *service.AchievementService) *AchievementHandler {
	return &AchievementHandler{achievements: achievements}
}

// List godoc
// GET /api/achievements
// Public listing with category/featured filters and pagination.
func (h *AchievementHandler) List(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)
	f := repository.AchievementFilter{
		Category: c.Query("category"),
		Featured: queryBool(c, "featured"),
		IsActive: activeFilter(c),
	}

	achievements, total, err := h.achievements.List(c.Request.Context(), f, page, limit)
	if err != nil {
		writeError(c, err, "", "Server error while fetching achievements")
		return
	}

	response.OK(c, gin.H{
		"achievements": achievements,
		"pagination":   response.NewPagination(page, limit, total),
	})
}

// Get godoc
// GET /api/achievements/:id
func (h *AchievementHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "achievement")
	if !ok {
		return
	}

	achievement, err := h.achievements.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "Achievement not found", "Server error while fetching achievement")
		return
	}
	response.OK(c, achievement)
}

// Create godoc
// POST /api/achievements
// Multipart submissions carry relatedStudents as a JSON string.
func (h *AchievementHandler) Create(c *gin.Context) {
	var req model.AchievementRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithErrors(c, response.MsgValidationFailed, fields)
		return
	}
	bindJSONField(c, "relatedStudents", &req.RelatedStudents)

	up, closeUp := formUpload(c, "image")
	defer closeUp()

	achievement, err := h.achievements.Create(c.Request.Context(), &req, up)
	if err != nil {
		writeError(c, err, "", "Server error while creating achievement")
		return
	}
	response.Created(c, "Achievement created successfully", achievement)
}

// Update godoc
// PUT /api/achievements/:id
func (h *AchievementHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "achievement")
	if !ok {
		return
	}

	var req model.AchievementRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithErrors(c, response.MsgValidationFailed, fields)
		return
	}
	bindJSONField(c, "relatedStudents", &req.RelatedStudents)

	up, closeUp := formUpload(c, "image")
	defer closeUp()

	achievement, err := h.achievements.Update(c.Request.Context(), id, &req, up)
	if err != nil {
		writeError(c, err, "Achievement not found", "Server error while updating achievement")
		return
	}
	response.OKWithMessage(c, "Achievement updated successfully", achievement)
}

// Delete godoc
// DELETE /api/achievements/:id
func (h *AchievementHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "achievement")
	if !ok {
		return
	}

	if err := h.achievements.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err, "Achievement not found", "Server error while deleting achievement")
		return
	}
	response.OKWithMessage(c, "Achievement deleted successfully", nil)
}
