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

// GalleryStore is the slice of gallery persistence the service needs.
type GalleryStore interface {
	List(ctx context.Context, f repository.GalleryFilter, page, limit int) ([]model.GalleryItem, int64, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.GalleryItem, error)
	Create(ctx context.Context, item *model.GalleryItem) error
	Update(ctx context.Context, id primitive.ObjectID, item *model.GalleryItem) (*model.GalleryItem, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// GalleryService coordinates gallery writes with image storage on the media
// host.
type GalleryService struct {
	store GalleryStore
	media MediaStore
	cfg   *config.Config
	log   zerolog.Logger
}

func NewGalleryService(store GalleryStore, media MediaStore, cfg *config.Config, log zerolog.Logger) *GalleryService {
	return &GalleryService{
		store: store,
		media: media,
		cfg:   cfg,
		log:   log.With().Str("component", "gallery_service").Logger(),
	}
}

func (s *GalleryService) List(ctx context.Context, f repository.GalleryFilter, page, limit int) ([]model.GalleryItem, int64, error) {
	return s.store.List(ctx, f, page, limit)
}

func (s *GalleryService) Get(ctx context.Context, id primitive.ObjectID) (*model.GalleryItem, error) {
	return s.store.GetByID(ctx, id)
}

func (s *GalleryService) Create(ctx context.Context, req *model.GalleryRequest, up *Upload) (*model.GalleryItem, error) {
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

	item := req.Document()
	if err := s.store.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *GalleryService) Update(ctx context.Context, id primitive.ObjectID, req *model.GalleryRequest, up *Upload) (*model.GalleryItem, error) {
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

func (s *GalleryService) Delete(ctx context.Context, id primitive.ObjectID) error {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}

	cleanupImage(ctx, s.media, existing.Image, s.log)
	return s.store.Delete(ctx, id)
}
