package model

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact statuses.
const (
	ContactStatusNew        = "New"
	ContactStatusInProgress = "In Progress"
	ContactStatusResolved   = "Resolved"
	ContactStatusClosed     = "Closed"
)

// Contact priorities (also used by home announcements).
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// Contact is an enquiry submitted through the public contact form.
type Contact struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Phone      string             `bson:"phone" json:"phone"`
	Subject    string             `bson:"subject" json:"subject"`
	Message    string             `bson:"message" json:"message"`
	Course     string             `bson:"course,omitempty" json:"course,omitempty"`
	Status     string             `bson:"status" json:"status"`
	Priority   string             `bson:"priority" json:"priority"`
	AdminNotes string             `bson:"adminNotes,omitempty" json:"adminNotes,omitempty"`
	IsRead     bool               `bson:"isRead" json:"isRead"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ContactRequest is the public contact-form payload.
type ContactRequest struct {
	Name    string `json:"name" binding:"required,max=50"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required,len=10,numeric"`
	Subject string `json:"subject" binding:"required,max=100"`
	Message string `json:"message" binding:"required,max=1000"`
	Course  string `json:"course"`
}

// Document converts the validated request into a Contact ready for storage.
// New enquiries start unread with status New and medium priority.
func (r *ContactRequest) Document() *Contact {
	return &Contact{
		Name:     r.Name,
		Email:    strings.ToLower(r.Email),
		Phone:    r.Phone,
		Subject:  r.Subject,
		Message:  r.Message,
		Course:   r.Course,
		Status:   ContactStatusNew,
		Priority: PriorityMedium,
		IsRead:   false,
	}
}

// ContactUpdateRequest is the admin payload for triaging an enquiry.
type ContactUpdateRequest struct {
	Status     string `json:"status" binding:"omitempty,oneof=New 'In Progress' Resolved Closed"`
	Priority   string `json:"priority" binding:"omitempty,oneof=Low Medium High"`
	AdminNotes string `json:"adminNotes" binding:"omitempty,max=500"`
	IsRead     *bool  `json:"isRead"`
}

// ContactStats aggregates enquiries for the admin dashboard.
type ContactStats struct {
	StatusStats    []StatusCount `json:"statusStats"`
	TotalContacts  int64         `json:"totalContacts"`
	UnreadContacts int64         `json:"unreadContacts"`
}

// StatusCount is one bucket of the by-status aggregation.
type StatusCount struct {
	Status string `bson:"_id" json:"_id"`
	Count  int64  `bson:"count" json:"count"`
}
