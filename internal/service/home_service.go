package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/radianceacademy/radiance-backend/internal/config"
	"github.com/radianceacademy/radiance-backend/internal/model"
	"github.com/radianceacademy/radiance-backend/internal/repository"
)

// HomeStore is the slice of home-section persistence the service needs.
// Sections are addressed by their unique name, never by id.
type HomeStore interface {
	List(ctx context.Context, f repository.HomeFilter) ([]model.HomeSection, error)
	GetBySection(ctx context.Context, section string) (*model.HomeSection, error)
	Create(ctx context.Context, sec *model.HomeSection) error
	UpdateBySection(ctx context.Context, section string, sec *model.HomeSection) (*model.HomeSection, error)
	DeleteBySection(ctx context.Context, section string) error
}

// HomeService manages the singleton-per-name landing page sections.
type HomeService struct {
	store HomeStore
	media MediaStore
	cfg   *config.Config
	log   zerolog.Logger
}

func NewHomeService(store HomeStore, media MediaStore, cfg *config.Config, log zerolog.Logger) *HomeService {
	return &HomeService{
		store: store,
		media: media,
		cfg:   cfg,
		log:   log.With().Str("component", "home_service").Logger(),
	}
}

func (s *HomeService) List(ctx context.Context, f repository.HomeFilter) ([]model.HomeSection, error) {
	return s.store.List(ctx, f)
}

func (s *HomeService) Get(ctx context.Context, section string) (*model.HomeSection, error) {
	return s.store.GetBySection(ctx, section)
}

// Save creates the named section, or overwrites it when it already exists so
// each section name stays unique. The returned flag reports whether an
// existing section was updated rather than a new one created. The image is
// optional; sections like stats never carry one.
func (s *HomeService) Save(ctx context.Context, req *model.HomeSectionRequest, up *Upload) (*model.HomeSection, bool, error) {
	existing, err := s.store.GetBySection(ctx, req.Section)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, false, err
	}

	if up != nil {
		if err := up.Validate(s.cfg.MaxUploadBytes); err != nil {
			return nil, false, err
		}
		url, err := s.media.Upload(ctx, up)
		if err != nil {
			return nil, false, fmt.Errorf("store image: %w", err)
		}
		if existing != nil {
			cleanupImage(ctx, s.media, existing.Image, s.log)
		}
		req.Image = url
	} else if req.Image == "" && existing != nil {
		req.Image = existing.Image
	}

	if existing != nil {
		updated, err := s.store.UpdateBySection(ctx, req.Section, req.Document())
		if err != nil {
			return nil, false, err
		}
		return updated, true, nil
	}

	sec := req.Document()
	if err := s.store.Create(ctx, sec); err != nil {
		return nil, false, err
	}
	return sec, false, nil
}

// Update overwrites the named section, replacing its image when a new one is
// uploaded.
func (s *HomeService) Update(ctx context.Context, section string, req *model.HomeSectionRequest, up *Upload) (*model.HomeSection, error) {
	existing, err := s.store.GetBySection(ctx, section)
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

	// The section name identifies the document and cannot move.
	req.Section = section
	return s.store.UpdateBySection(ctx, section, req.Document())
}

func (s *HomeService) Delete(ctx context.Context, section string) error {
	existing, err := s.store.GetBySection(ctx, section)
	if err != nil {
		return err
	}

	cleanupImage(ctx, s.media, existing.Image, s.log)
	return s.store.DeleteBySection(ctx, section)
}
