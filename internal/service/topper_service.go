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

// TopperStore is the slice of topper persistence the service needs.
type TopperStore interface {
	List(ctx context.Context, f repository.TopperFilter, page, limit int) ([]model.Topper, int64, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Topper, error)
	Create(ctx context.Context, topper *model.Topper) error
	Update(ctx context.Context, id primitive.ObjectID, topper *model.Topper) (*model.Topper, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// TopperService coordinates topper writes with photo storage on the media
// host.
type TopperService struct {
	store TopperStore
	media MediaStore
	cfg   *config.Config
	log   zerolog.Logger
}

func NewTopperService(store TopperStore, media MediaStore, cfg *config.Config, log zerolog.Logger) *TopperService {
	return &TopperService{
		store: store,
		media: media,
		cfg:   cfg,
		log:   log.With().Str("component", "topper_service").Logger(),
	}
}

func (s *TopperService) List(ctx context.Context, f repository.TopperFilter, page, limit int) ([]model.Topper, int64, error) {
	return s.store.List(ctx, f, page, limit)
}

func (s *TopperService) Get(ctx context.Context, id primitive.ObjectID) (*model.Topper, error) {
	return s.store.GetByID(ctx, id)
}

func (s *TopperService) Create(ctx context.Context, req *model.TopperRequest, up *Upload) (*model.Topper, error) {
	if up != nil {
		if err := up.Validate(s.cfg.MaxUploadBytes); err != nil {
			return nil, err
		}
		url, err := s.media.Upload(ctx, up)
		if err != nil {
			return nil, fmt.Errorf("store photo: %w", err)
		}
		req.Photo = url
	}
	if req.Photo == "" {
		return nil, ErrImageRequired
	}

	topper := req.Document()
	if err := s.store.Create(ctx, topper); err != nil {
		return nil, err
	}
	return topper, nil
}

func (s *TopperService) Update(ctx context.Context, id primitive.ObjectID, req *model.TopperRequest, up *Upload) (*model.Topper, error) {
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
			return nil, fmt.Errorf("store photo: %w", err)
		}
		cleanupImage(ctx, s.media, existing.Photo, s.log)
		req.Photo = url
	} else if req.Photo == "" {
		req.Photo = existing.Photo
	}

	return s.store.Update(ctx, id, req.Document())
}

func (s *TopperService) Delete(ctx context.Context, id primitive.ObjectID) error {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}

	cleanupImage(ctx, s.media, existing.Photo, s.log)
	return s.store.Delete(ctx, id)
}
