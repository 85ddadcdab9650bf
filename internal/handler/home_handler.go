package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/radianceacademy/radiance-backend/internal/model"
	"github.com/radianceacademy/radiance-backend/internal/repository"
	"github.com/radianceacademy/radiance-backend/internal/response"
	"github.com/radianceacademy/radiance-backend/internal/service"
	"github.com/radianceacademy/radiance-backend/internal/validator"
)

// HomeHandler handles landing-page section endpoints. Sections are addressed
// by name, not id.
type HomeHandler struct {
	home *service.HomeService
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(home *service.HomeService) *HomeHandler {
	return &HomeHandler{home: home}
}

// List godoc
// GET /api/home
// Returns every section in display order; no pagination.
func (h *HomeHandler) List(c *gin.Context) {
	f := repository.HomeFilter{
		Section:  c.Query("section"),
		IsActive: activeFilter(c),
	}

	sections, err := h.home.List(c.Request.Context(), f)
	if err != nil {
		writeError(c, err, "", "Server error while fetching home sections")
		return
	}
	response.OK(c, sections)
}

// Get godoc
// GET /api/home/:section
func (h *HomeHandler) Get(c *gin.Context) {
	section, err := h.home.Get(c.Request.Context(), c.Param("section"))
	if err != nil {
		writeError(c, err, "Home section not found", "Server error while fetching home section")
		return
	}
	response.OK(c, section)
}

// Save godoc
// POST /api/home
// Creates the named section, or overwrites it when one already exists so the
// section name stays unique.
func (h *HomeHandler) Save(c *gin.Context) {
	var req model.HomeSectionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithErrors(c, response.MsgValidationFailed, fields)
		return
	}
	bindJSONField(c, "stats", &req.Stats)
	bindJSONField(c, "testimonials", &req.Testimonials)
	bindJSONField(c, "announcements", &req.Announcements)

	up, closeUp := formUpload(c, "image")
	defer closeUp()

	section, updated, err := h.home.Save(c.Request.Context(), &req, up)
	if err != nil {
		writeError(c, err, "", "Server error while saving home section")
		return
	}
	if updated {
		response.OKWithMessage(c, "Home section updated successfully", section)
		return
	}
	response.Created(c, "Home section created successfully", section)
}

// Update godoc
// PUT /api/home/:section
func (h *HomeHandler) Update(c *gin.Context) {
	var req model.HomeSectionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithErrors(c, response.MsgValidationFailed, fields)
		return
	}
	bindJSONField(c, "stats", &req.Stats)
	bindJSONField(c, "testimonials", &req.Testimonials)
	bindJSONField(c, "announcements", &req.Announcements)

	up, closeUp := formUpload(c, "image")
	defer closeUp()

	section, err := h.home.Update(c.Request.Context(), c.Param("section"), &req, up)
	if err != nil {
		writeError(c, err, "Home section not found", "Server error while updating home section")
		return
	}
	response.OKWithMessage(c, "Home section updated successfully", section)
}

// Delete godoc
// DELETE /api/home/:section
func (h *HomeHandler) Delete(c *gin.Context) {
	if err := h.home.Delete(c.Request.Context(), c.Param("section")); err != nil {
		writeError(c, err, "Home section not found", "Server error while deleting home section")
		return
	}
	response.OKWithMessage(c, "Home section deleted successfully", nil)
}
