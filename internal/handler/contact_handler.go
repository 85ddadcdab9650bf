package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/radianceacademy/radiance-backend/internal/model"
	"github.com/radianceacademy/radiance-backend/internal/repository"
	"github.com/radianceacademy/radiance-backend/internal/response"
	"github.com/radianceacademy/radiance-backend/internal/service"
	"github.com/radianceacademy/radiance-backend/internal/validator"
)

// ContactHandler handles public enquiries and their admin-side triage.
type ContactHandler struct {
	contacts *service.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contacts *service.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// Create godoc
// POST /api/contact
// Public contact-form submission.
func (h *ContactHandler) Create(c *gin.Context) {
	var req model.ContactRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithErrors(c, response.MsgValidationFailed, fields)
		return
	}

	contact, err := h.contacts.Create(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err, "", "Server error while submitting contact form")
		return
	}
	response.Created(c, "Contact form submitted successfully. We will get back to you soon!", contact)
}

// List godoc
// GET /api/contact
// Admin listing with status/priority/isRead filters and pagination.
func (h *ContactHandler) List(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)
	f := repository.ContactFilter{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		IsRead:   queryBool(c, "isRead"),
	}

	contacts, total, err := h.contacts.List(c.Request.Context(), f, page, limit)
	if err != nil {
		writeError(c, err, "", "Server error while fetching contacts")
		return
	}

	response.OK(c, gin.H{
		"contacts":   contacts,
		"pagination": response.NewPagination(page, limit, total),
	})
}

// Stats godoc
// GET /api/contact/stats
// By-status counts plus totals for the admin dashboard.
func (h *ContactHandler) Stats(c *gin.Context) {
	stats, err := h.contacts.Stats(c.Request.Context())
	if err != nil {
		writeError(c, err, "", "Server error while fetching contact stats")
		return
	}
	response.OK(c, stats)
}

// Get godoc
// GET /api/contact/:id
// The first admin view marks the enquiry read.
func (h *ContactHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "contact")
	if !ok {
		return
	}

	contact, err := h.contacts.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "Contact not found", "Server error while fetching contact")
		return
	}
	response.OK(c, contact)
}

// Update godoc
// PUT /api/contact/:id
// Applies only the triage fields present in the request.
func (h *ContactHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "contact")
	if !ok {
		return
	}

	var req model.ContactUpdateRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithErrors(c, response.MsgValidationFailed, fields)
		return
	}

	contact, err := h.contacts.Update(c.Request.Context(), id, &req)
	if err != nil {
		writeError(c, err, "Contact not found", "Server error while updating contact")
		return
	}
	response.OKWithMessage(c, "Contact updated successfully", contact)
}

// Delete godoc
// DELETE /api/contact/:id
func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "contact")
	if !ok {
		return
	}

	if err := h.contacts.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err, "Contact not found", "Server error while deleting contact")
		return
	}
	response.OKWithMessage(c, "Contact deleted successfully", nil)
}
