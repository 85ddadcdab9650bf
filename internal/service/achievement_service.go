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

// AchievementStore is the slice of achievement persistence the service needs.
type AchievementStore interface {
	List(ctx context.Context, f repository.AchievementFilter, page, limit int) ([]model.Achievement, int64, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Achievement, error)
	Create(ctx context.Context, achievement *model.Achievement) error
	Update(ctx context.Context, id primitive.ObjectID, achievement *model.Achievement) (*model.Achievement, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// AchievementService coordinates achievement writes with image storage on
// the media host.
type AchievementService struct {
	store AchievementStore
	media MediaStore
	cfg   *config.Config
	log   zerolog.Logger
}

func NewAchievementService(store AchievementStore, media MediaStore, cfg *config.Config, log zerolog.Logger) *AchievementService {
	return &AchievementService{
		store: store,
		media: media,
		cfg:   cfg,
		log:   log.With().Str("component", "achievement_service").Logger(),
	}
}

func (s *AchievementService) List(ctx context.Context, f repository.AchievementFilter, page, limit int) ([]model.Achievement, int64, error) {
	return s.store.List(ctx, f, page, limit)
}

func (s *AchievementService) Get(ctx context.Context, id primitive.ObjectID) (*model.Achievement, error) {
	return s.store.GetByID(ctx, id)
}

func (s *AchievementService) Create(ctx context.Context, req *model.AchievementRequest, up *Upload) (*model.Achievement, error) {
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

	achievement := req.Document()
	if err := s.store.Create(ctx, achievement); err != nil {
		return nil, err
	}
	return achievement, nil
}

func (s *AchievementService) Update(ctx context.Context, id primitive.ObjectID, req *model.AchievementRequest, up *Upload) (*model.Achievement, error) {
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

func (s *AchievementService) Delete(ctx context.Context, id primitive.ObjectID) error {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}

	cleanupImage(ctx, s.media, existing.Image, s.log)
	return s.store.Delete(ctx, id)
}
