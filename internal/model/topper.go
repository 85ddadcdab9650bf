package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Topper is a top-scoring student showcased on the public site.
type Topper struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Photo       string             `bson:"photo" json:"photo"`
	Achievement string             `bson:"achievement" json:"achievement"`
	Exam        string             `bson:"exam" json:"exam"`
	Year        int                `bson:"year" json:"year"`
	Score       string             `bson:"score" json:"score"`
	Rank        string             `bson:"rank,omitempty" json:"rank,omitempty"`
	Course      string             `bson:"course" json:"course"`
	Testimonial string             `bson:"testimonial,omitempty" json:"testimonial,omitempty"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	Featured    bool               `bson:"featured" json:"featured"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// TopperRequest is the payload for creating or updating a topper. The
// "maxyear" rule caps the year at the next calendar year.
type TopperRequest struct {
	Name        string `json:"name" form:"name" binding:"required,max=50"`
	Photo       string `json:"photo" form:"photo"`
	Achievement string `json:"achievement" form:"achievement" binding:"required,max=200"`
	Exam        string `json:"exam" form:"exam" binding:"required,max=100"`
	Year        int    `json:"year" form:"year" binding:"required,gte=2000,maxyear"`
	Score       string `json:"score" form:"score" binding:"required,max=50"`
	Rank        string `json:"rank" form:"rank" binding:"omitempty,max=50"`
	Course      string `json:"course" form:"course" binding:"required,max=100"`
	Testimonial string `json:"testimonial" form:"testimonial" binding:"omitempty,max=500"`
	IsActive    *bool  `json:"isActive" form:"isActive"`
	Featured    bool   `json:"featured" form:"featured"`
}

// Document converts the validated request into a Topper ready for storage.
func (r *TopperRequest) Document() *Topper {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	return &Topper{
		Name:        r.Name,
		Photo:       r.Photo,
		Achievement: r.Achievement,
		Exam:        r.Exam,
		Year:        r.Year,
		Score:       r.Score,
		Rank:        r.Rank,
		Course:      r.Course,
		Testimonial: r.Testimonial,
		IsActive:    isActive,
		Featured:    r.Featured,
	}
}
