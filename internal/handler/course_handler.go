package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/radianceacademy/radiance-backend/internal/model"
	"github.com/radianceacademy/radiance-backend/internal/repository"
	"github.com/radianceacademy/radiance-backend/internal/response"
	"github.com/radianceacademy/radiance-backend/internal/service"
	"github.com/radianceacademy/radiance-backend/internal/validator"
)

// CourseHandler handles course endpoints.
type CourseHandler struct {
	courses *service.CourseService
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(courses *service.CourseService) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// List godoc
// GET /api/courses
// Public listing with category/level/search filters and pagination.
func (h *CourseHandler) List(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)
	f := repository.CourseFilter{
		Category: c.Query("category"),
		Level:    c.Query("level"),
		Search:   c.Query("search"),
		IsActive: activeFilter(c),
	}

	courses, total, err := h.courses.List(c.Request.Context(), f, page, limit)
	if err != nil {
		writeError(c, err, "", "Server error while fetching courses")
		return
	}

	response.OK(c, gin.H{
		"courses":    courses,
		"pagination": response.NewPagination(page, limit, total),
	})
}

// Get godoc
// GET /api/courses/:id
func (h *CourseHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "course")
	if !ok {
		return
	}

	course, err := h.courses.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "Course not found", "Server error while fetching course")
		return
	}
	response.OK(c, course)
}

// Create godoc
// POST /api/courses
// Accepts JSON or multipart; the multipart form carries the image file plus
// features/instructor as JSON strings.
func (h *CourseHandler) Create(c *gin.Context) {
	var req model.CourseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithErrors(c, response.MsgValidationFailed, fields)
		return
	}
	bindJSONField(c, "features", &req.Features)
	bindJSONField(c, "instructor", &req.Instructor)

	up, closeUp := formUpload(c, "image")
	defer closeUp()

	course, err := h.courses.Create(c.Request.Context(), &req, up)
	if err != nil {
		writeError(c, err, "", "Server error while creating course")
		return
	}
	response.Created(c, "Course created successfully", course)
}

// Update godoc
// PUT /api/courses/:id
func (h *CourseHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "course")
	if !ok {
		return
	}

	var req model.CourseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithErrors(c, response.MsgValidationFailed, fields)
		return
	}
	bindJSONField(c, "features", &req.Features)
	bindJSONField(c, "instructor", &req.Instructor)

	up, closeUp := formUpload(c, "image")
	defer closeUp()

	course, err := h.courses.Update(c.Request.Context(), id, &req, up)
	if err != nil {
		writeError(c, err, "Course not found", "Server error while updating course")
		return
	}
	response.OKWithMessage(c, "Course updated successfully", course)
}

// Delete godoc
// DELETE /api/courses/:id
func (h *CourseHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "course")
	if !ok {
		return
	}

	if err := h.courses.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err, "Course not found", "Server error while deleting course")
		return
	}
	response.OKWithMessage(c, "Course deleted successfully", nil)
}
