package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/radianceacademy/radiance-backend/internal/config"
	"github.com/radianceacademy/radiance-backend/internal/model"
	"github.com/radianceacademy/radiance-backend/internal/repository"
)

// CourseStore is the slice of course persistence the service needs.
type CourseStore interface {
	List(ctx context.Context, f repository.CourseFilter, page, limit int) ([]model.Course, int64, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Course, error)
	Create(ctx context.Context, course *model.Course) error
	Update(ctx context.Context, id primitive.ObjectID, course *model.Course) (*model.Course, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// CourseService coordinates course writes with image storage on the media
// host.
type CourseService struct {
	store CourseStore
	media MediaStore
	cfg   *config.Config
	log   zerolog.Logger
}

func NewCourseService(store CourseStore, media MediaStore, cfg *config.Config, log zerolog.Logger) *CourseService {
	return &CourseService{
		store: store,
		media: media,
		cfg:   cfg,
		log:   log.With().Str("component", "course_service").Logger(),
	}
}

func (s *CourseService) List(ctx context.Context, f repository.CourseFilter, page, limit int) ([]model.Course, int64, error) {
	return s.store.List(ctx, f, page, limit)
}

func (s *CourseService) Get(ctx context.Context, id primitive.ObjectID) (*model.Course, error) {
	return s.store.GetByID(ctx, id)
}

// Create stores an uploaded image (when present) and persists the course.
func (s *CourseService) Create(ctx context.Context, req *model.CourseRequest, up *Upload) (*model.Course, error) {
	if up != nil {
		if err := up.Validate(s.cfg.MaxUploadBytes); err != nil {
			return nil, err
		}
		url, err := s.media.Upload(ctx, up)
		if err != nil {
			return nil, fmt.Errorf("store image: %w", err)
		}
		req.Image = url
	}
	if req.Image == "" {
		return nil, ErrImageRequired
	}

	course := req.Document()
	if err := s.store.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// Update overwrites the course. A newly uploaded image replaces the stored
// one, whose deletion from the media host is best-effort.
func (s *CourseService) Update(ctx context.Context, id primitive.ObjectID, req *model.CourseRequest, up *Upload) (*model.Course, error) {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if up != nil {
		if err := up.Validate(s.cfg.MaxUploadBytes); err != nil {
			return nil, err
		}
		url, err := s.media.Upload(ctx, up)
		if err != nil {
			return nil, fmt.Errorf("store image: %w", err)
		}
		cleanupImage(ctx, s.media, existing.Image, s.log)
		req.Image = url
	} else if req.Image == "" {
		req.Image = existing.Image
	}

	return s.store.Update(ctx, id, req.Document())
}

// Delete removes the course and best-effort deletes its image.
func (s *CourseService) Delete(ctx context.Context, id primitive.ObjectID) error {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}

	cleanupImage(ctx, s.media, existing.Image, s.log)
	return s.store.Delete(ctx, id)
}
