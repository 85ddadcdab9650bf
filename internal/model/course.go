package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Course levels.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// Instructor describes who teaches a course.
type Instructor struct {
	Name          string `bson:"name,omitempty" json:"name,omitempty"`
	Qualification string `bson:"qualification,omitempty" json:"qualification,omitempty"`
	Experience    string `bson:"experience,omitempty" json:"experience,omitempty"`
}

// Course is an offered program shown on the public site.
type Course struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title            string             `bson:"title" json:"title"`
	Description      string             `bson:"description" json:"description"`
	ShortDescription string             `bson:"shortDescription" json:"shortDescription"`
	Image            string             `bson:"image" json:"image"`
	Duration         string             `bson:"duration" json:"duration"`
	Level            string             `bson:"level" json:"level"`
	Category         string             `bson:"category" json:"category"`
	Features         []string           `bson:"features" json:"features"`
	Price            float64            `bson:"price" json:"price"`
	DiscountPrice    float64            `bson:"discountPrice,omitempty" json:"discountPrice,omitempty"`
	IsActive         bool               `bson:"isActive" json:"isActive"`
	EnrollmentCount  int                `bson:"enrollmentCount" json:"enrollmentCount"`
	Rating           float64            `bson:"rating" json:"rating"`
	Instructor       Instructor         `bson:"instructor,omitempty" json:"instructor,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CourseRequest is the payload for creating or updating a course. Structured
// fields (features, instructor) bind from JSON bodies directly; multipart
// submissions carry them as serialized JSON strings parsed by the handler.
type CourseRequest struct {
	Title            string     `json:"title" form:"title" binding:"required,max=100"`
	Description      string     `json:"description" form:"description" binding:"required,max=1000"`
	ShortDescription string     `json:"shortDescription" form:"shortDescription" binding:"required,max=200"`
	Image            string     `json:"image" form:"image"`
	Duration         string     `json:"duration" form:"duration" binding:"required"`
	Level            string     `json:"level" form:"level" binding:"required,oneof=Beginner Intermediate Advanced"`
	Category         string     `json:"category" form:"category" binding:"required,oneof=Academic Competitive 'Skill Development' Language Other"`
	Features         []string   `json:"features" form:"-"`
	Price            *float64   `json:"price" form:"price" binding:"required,gte=0"`
	DiscountPrice    float64    `json:"discountPrice" form:"discountPrice" binding:"omitempty,gte=0"`
	IsActive         *bool      `json:"isActive" form:"isActive"`
	EnrollmentCount  int        `json:"enrollmentCount" form:"enrollmentCount" binding:"omitempty,gte=0"`
	Rating           float64    `json:"rating" form:"rating" binding:"omitempty,gte=0,lte=5"`
	Instructor       Instructor `json:"instructor" form:"-"`
}

// Document converts the validated request into a Course ready for storage.
func (r *CourseRequest) Document() *Course {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	features := r.Features
	if features == nil {
		features = []string{}
	}
	return &Course{
		Title:            r.Title,
		Description:      r.Description,
		ShortDescription: r.ShortDescription,
		Image:            r.Image,
		Duration:         r.Duration,
		Level:            r.Level,
		Category:         r.Category,
		Features:         features,
		Price:            *r.Price,
		DiscountPrice:    r.DiscountPrice,
		IsActive:         isActive,
		EnrollmentCount:  r.EnrollmentCount,
		Rating:           r.Rating,
		Instructor:       r.Instructor,
	}
}
