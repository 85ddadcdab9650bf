package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Home section names. Each section exists at most once.
const (
	SectionHero          = "hero"
	SectionAbout         = "about"
	SectionVision        = "vision"
	SectionMission       = "mission"
	SectionStats         = "stats"
	SectionTestimonials  = "testimonials"
	SectionAnnouncements = "announcements"
)

// Stat is one headline number in the stats section.
type Stat struct {
	Label string `bson:"label,omitempty" json:"label,omitempty"`
	Value string `bson:"value,omitempty" json:"value,omitempty"`
	Icon  string `bson:"icon,omitempty" json:"icon,omitempty"`
}

// Testimonial is one quote in the testimonials section.
type Testimonial struct {
	Name        string  `bson:"name,omitempty" json:"name,omitempty"`
	Designation string  `bson:"designation,omitempty" json:"designation,omitempty"`
	Content     string  `bson:"content,omitempty" json:"content,omitempty"`
	Image       string  `bson:"image,omitempty" json:"image,omitempty"`
	Rating      float64 `bson:"rating" json:"rating"`
}

// Announcement is one notice in the announcements section.
type Announcement struct {
	Title    string    `bson:"title,omitempty" json:"title,omitempty"`
	Content  string    `bson:"content,omitempty" json:"content,omitempty"`
	Date     time.Time `bson:"date,omitempty" json:"date,omitempty"`
	Priority string    `bson:"priority" json:"priority"`
	IsActive bool      `bson:"isActive" json:"isActive"`
}

// HomeSection is one block of the public landing page, keyed by its unique
// section name rather than by id.
type HomeSection struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Section       string             `bson:"section" json:"section"`
	Title         string             `bson:"title" json:"title"`
	Subtitle      string             `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	Content       string             `bson:"content" json:"content"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
	ButtonText    string             `bson:"buttonText,omitempty" json:"buttonText,omitempty"`
	ButtonLink    string             `bson:"buttonLink,omitempty" json:"buttonLink,omitempty"`
	Stats         []Stat             `bson:"stats" json:"stats"`
	Testimonials  []Testimonial      `bson:"testimonials" json:"testimonials"`
	Announcements []Announcement     `bson:"announcements" json:"announcements"`
	IsActive      bool               `bson:"isActive" json:"isActive"`
	Order         int                `bson:"order" json:"order"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// HomeSectionRequest is the payload for creating or updating a home section.
type HomeSectionRequest struct {
	Section       string         `json:"section" form:"section" binding:"required,oneof=hero about vision mission stats testimonials announcements"`
	Title         string         `json:"title" form:"title" binding:"required"`
	Subtitle      string         `json:"subtitle" form:"subtitle"`
	Content       string         `json:"content" form:"content" binding:"required"`
	Image         string         `json:"image" form:"image"`
	ButtonText    string         `json:"buttonText" form:"buttonText"`
	ButtonLink    string         `json:"buttonLink" form:"buttonLink"`
	Stats         []Stat         `json:"stats" form:"-"`
	Testimonials  []Testimonial  `json:"testimonials" form:"-"`
	Announcements []Announcement `json:"announcements" form:"-"`
	IsActive      *bool          `json:"isActive" form:"isActive"`
	Order         int            `json:"order" form:"order"`
}

// Document converts the validated request into a HomeSection ready for storage.
func (r *HomeSectionRequest) Document() *HomeSection {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	stats := r.Stats
	if stats == nil {
		stats = []Stat{}
	}
	testimonials := r.Testimonials
	if testimonials == nil {
		testimonials = []Testimonial{}
	}
	announcements := r.Announcements
	if announcements == nil {
		announcements = []Announcement{}
	}
	return &HomeSection{
		Section:       r.Section,
		Title:         r.Title,
		Subtitle:      r.Subtitle,
		Content:       r.Content,
		Image:         r.Image,
		ButtonText:    r.ButtonText,
		ButtonLink:    r.ButtonLink,
		Stats:         stats,
		Testimonials:  testimonials,
		Announcements: announcements,
		IsActive:      isActive,
		Order:         r.Order,
	}
}
