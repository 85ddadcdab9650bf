package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/radianceacademy/radiance-backend/internal/model"
	"github.com/radianceacademy/radiance-backend/internal/repository"
	"github.com/radianceacademy/radiance-backend/internal/response"
	"github.com/radianceacademy/radiance-backend/internal/service"
	"github.com/radianceacademy/radiance-backend/internal/validator"
)

// TopperHandler handles topper endpoints.
type TopperHandler struct {
	toppers *service.TopperService
}

// NewTopperHandler creates a new TopperHandler.
func NewTopperHandler(toppers *service.TopperService) *TopperHandler {
	return &TopperHandler{toppers: toppers}
}

// List godoc
// GET /api/toppers
// Public listing with year/exam/featured filters and pagination.
func (h *TopperHandler) List(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)
	f := repository.TopperFilter{
		Year:     queryInt(c, "year", 0),
		Exam:     c.Query("exam"),
		Featured: queryBool(c, "featured"),
		IsActive: activeFilter(c),
	}

	toppers, total, err := h.toppers.List(c.Request.Context(), f, page, limit)
	if err != nil {
		writeError(c, err, "", "Server error while fetching toppers")
		return
	}

	response.OK(c, gin.H{
		"toppers":    toppers,
		"pagination": response.NewPagination(page, limit, total),
	})
}

// Get godoc
// GET /api/toppers/:id
func (h *TopperHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "topper")
	if !ok {
		return
	}

	topper, err := h.toppers.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "Topper not found", "Server error while fetching topper")
		return
	}
	response.OK(c, topper)
}

// Create godoc
// POST /api/toppers
// The student photo arrives under the "photo" multipart field.
func (h *TopperHandler) Create(c *gin.Context) {
	var req model.TopperRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithErrors(c, response.MsgValidationFailed, fields)
		return
	}

	up, closeUp := formUpload(c, "photo")
	defer closeUp()

	topper, err := h.toppers.Create(c.Request.Context(), &req, up)
	if err != nil {
		writeError(c, err, "", "Server error while creating topper")
		return
	}
	response.Created(c, "Topper created successfully", topper)
}

// Update godoc
// PUT /api/toppers/:id
func (h *TopperHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "topper")
	if !ok {
		return
	}

	var req model.TopperRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithErrors(c, response.MsgValidationFailed, fields)
		return
	}

	up, closeUp := formUpload(c, "photo")
	defer closeUp()

	topper, err := h.toppers.Update(c.Request.Context(), id, &req, up)
	if err != nil {
		writeError(c, err, "Topper not found", "Server error while updating topper")
		return
	}
	response.OKWithMessage(c, "Topper updated successfully", topper)
}

// Delete godoc
// DELETE /api/toppers/:id
func (h *TopperHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "topper")
	if !ok {
		return
	}

	if err := h.toppers.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err, "Topper not found", "Server error while deleting topper")
		return
	}
	response.OKWithMessage(c, "Topper deleted successfully", nil)
}
