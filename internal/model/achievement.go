package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RelatedStudent ties a student mention to an institute achievement.
type RelatedStudent struct {
	Name        string `bson:"name,omitempty" json:"name,omitempty"`
	Class       string `bson:"class" json:"class"`
	Achievement string `bson:"achievement" json:"achievement"`
}

// Achievement is an institute milestone shown on the public site.
type Achievement struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title           string             `bson:"title" json:"title"`
	Description     string             `bson:"description" json:"description"`
	Image           string             `bson:"image" json:"image"`
	Date            time.Time          `bson:"date" json:"date"`
	Category        string             `bson:"category" json:"category"`
	Details         string             `bson:"details,omitempty" json:"details,omitempty"`
	RelatedStudents []RelatedStudent   `bson:"relatedStudents" json:"relatedStudents"`
	IsActive        bool               `bson:"isActive" json:"isActive"`
	Featured        bool               `bson:"featured" json:"featured"`
	Priority        int                `bson:"priority" json:"priority"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// AchievementRequest is the payload for creating or updating an achievement.
type AchievementRequest struct {
	Title           string           `json:"title" form:"title" binding:"required,max=100"`
	Description     string           `json:"description" form:"description" binding:"required,max=500"`
	Image           string           `json:"image" form:"image"`
	Date            time.Time        `json:"date" form:"date" time_format:"2006-01-02" binding:"required"`
	Category        string           `json:"category" form:"category" binding:"required,oneof='Academic Excellence' 'Student Achievement' 'Institute Recognition' Awards Certifications Other"`
	Details         string           `json:"details" form:"details" binding:"omitempty,max=1000"`
	RelatedStudents []RelatedStudent `json:"relatedStudents" form:"-"`
	IsActive        *bool            `json:"isActive" form:"isActive"`
	Featured        bool             `json:"featured" form:"featured"`
	Priority        int              `json:"priority" form:"priority"`
}

// Document converts the validated request into an Achievement ready for storage.
func (r *AchievementRequest) Document() *Achievement {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	students := r.RelatedStudents
	if students == nil {
		students = []RelatedStudent{}
	}
	return &Achievement{
		Title:           r.Title,
		Description:     r.Description,
		Image:           r.Image,
		Date:            r.Date,
		Category:        r.Category,
		Details:         r.Details,
		RelatedStudents: students,
		IsActive:        isActive,
		Featured:        r.Featured,
		Priority:        r.Priority,
	}
}
