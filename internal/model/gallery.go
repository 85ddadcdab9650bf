package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GalleryItem is a photo in the public gallery.
type GalleryItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Image       string             `bson:"image" json:"image"`
	Category    string             `bson:"category" json:"category"`
	Date        time.Time          `bson:"date" json:"date"`
	Tags        []string           `bson:"tags" json:"tags"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	Featured    bool               `bson:"featured" json:"featured"`
	Order       int                `bson:"order" json:"order"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// GalleryRequest is the payload for creating or updating a gallery item.
type GalleryRequest struct {
	Title       string    `json:"title" form:"title" binding:"required,max=100"`
	Description string    `json:"description" form:"description" binding:"omitempty,max=300"`
	Image       string    `json:"image" form:"image"`
	Category    string    `json:"category" form:"category" binding:"required,oneof=Events 'Campus Life' Functions Achievements Sports Cultural Academic Other"`
	Date        time.Time `json:"date" form:"date" time_format:"2006-01-02" binding:"required"`
	Tags        []string  `json:"tags" form:"-"`
	IsActive    *bool     `json:"isActive" form:"isActive"`
	Featured    bool      `json:"featured" form:"featured"`
	Order       int       `json:"order" form:"order"`
}

// Document converts the validated request into a GalleryItem ready for storage.
func (r *GalleryRequest) Document() *GalleryItem {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return &GalleryItem{
		Title:       r.Title,
		Description: r.Description,
		Image:       r.Image,
		Category:    r.Category,
		Date:        r.Date,
		Tags:        tags,
		IsActive:    isActive,
		Featured:    r.Featured,
		Order:       r.Order,
	}
}
