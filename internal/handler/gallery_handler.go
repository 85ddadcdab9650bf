package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/radianceacademy/radiance-backend/internal/model"
	"github.com/radianceacademy/radiance-backend/internal/repository"
	"github.com/radianceacademy/radiance-backend/internal/response"
	"github.com/radianceacademy/radiance-backend/internal/service"
	"github.com/radianceacademy/radiance-backend/internal/validator"
)

// GalleryHandler handles gallery endpoints.
type GalleryHandler struct {
	gallery *service.GalleryService
}

// NewGalleryHandler creates a new GalleryHandler.
func NewGalleryHandler(gallery *service.GalleryService) *GalleryHandler {
	return &GalleryHandler{gallery: gallery}
}

// List godoc
// GET /api/gallery
// Public grid listing; the larger default page size fills a photo grid.
func (h *GalleryHandler) List(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 12)
	f := repository.GalleryFilter{
		Category: c.Query("category"),
		Featured: queryBool(c, "featured"),
		IsActive: activeFilter(c),
	}

	images, total, err := h.gallery.List(c.Request.Context(), f, page, limit)
	if err != nil {
		writeError(c, err, "", "Server error while fetching gallery")
		return
	}

	response.OK(c, gin.H{
		"images":     images,
		"pagination": response.NewPagination(page, limit, total),
	})
}

// Get godoc
// GET /api/gallery/:id
func (h *GalleryHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "gallery item")
	if !ok {
		return
	}

	item, err := h.gallery.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "Gallery item not found", "Server error while fetching gallery item")
		return
	}
	response.OK(c, item)
}

// Create godoc
// POST /api/gallery
// Multipart submissions carry tags as a JSON string.
func (h *GalleryHandler) Create(c *gin.Context) {
	var req model.GalleryRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithErrors(c, response.MsgValidationFailed, fields)
		return
	}
	bindJSONField(c, "tags", &req.Tags)

	up, closeUp := formUpload(c, "image")
	defer closeUp()

	item, err := h.gallery.Create(c.Request.Context(), &req, up)
	if err != nil {
		writeError(c, err, "", "Server error while creating gallery item")
		return
	}
	response.Created(c, "Gallery item created successfully", item)
}

// Update godoc
// PUT /api/gallery/:id
func (h *GalleryHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "gallery item")
	if !ok {
		return
	}

	var req model.GalleryRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithErrors(c, response.MsgValidationFailed, fields)
		return
	}
	bindJSONField(c, "tags", &req.Tags)

	up, closeUp := formUpload(c, "image")
	defer closeUp()

	item, err := h.gallery.Update(c.Request.Context(), id, &req, up)
	if err != nil {
		writeError(c, err, "Gallery item not found", "Server error while updating gallery item")
		return
	}
	response.OKWithMessage(c, "Gallery item updated successfully", item)
}

// Delete godoc
// DELETE /api/gallery/:id
func (h *GalleryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "gallery item")
	if !ok {
		return
	}

	if err := h.gallery.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err, "Gallery item not found", "Server error while deleting gallery item")
		return
	}
	response.OKWithMessage(c, "Gallery item deleted successfully", nil)
}
