package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/radianceacademy/radiance-backend/internal/config"
	"github.com/radianceacademy/radiance-backend/internal/model"
	"github.com/radianceacademy/radiance-backend/internal/repository"
)

type homeStoreMock struct {
	sections map[string]*model.HomeSection
}

func newHomeStoreMock() *homeStoreMock {
	return &homeStoreMock{sections: map[string]*model.HomeSection{}}
}

func (m *homeStoreMock) List(_ context.Context, _ repository.HomeFilter) ([]model.HomeSection, error) {
	out := make([]model.HomeSection, 0, len(m.sections))
	for _, s := range m.sections {
		out = append(out, *s)
	}
	return out, nil
}

func (m *homeStoreMock) GetBySection(_ context.Context, section string) (*model.HomeSection, error) {
	if s, ok := m.sections[section]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (m *homeStoreMock) Create(_ context.Context, sec *model.HomeSection) error {
	sec.ID = primitive.NewObjectID()
	m.sections[sec.Section] = sec
	return nil
}

func (m *homeStoreMock) UpdateBySection(_ context.Context, section string, sec *model.HomeSection) (*model.HomeSection, error) {
	existing, ok := m.sections[section]
	if !ok {
		return nil, repository.ErrNotFound
	}
	sec.ID = existing.ID
	m.sections[section] = sec
	return sec, nil
}

func (m *homeStoreMock) DeleteBySection(_ context.Context, section string) error {
	if _, ok := m.sections[section]; !ok {
		return repository.ErrNotFound
	}
	delete(m.sections, section)
	return nil
}

func heroRequest() *model.HomeSectionRequest {
	return &model.HomeSectionRequest{
		Section: model.SectionHero,
		Title:   "Welcome",
		Content: "Premier coaching institute",
		Order:   1,
	}
}

func newHomeService(store *homeStoreMock, media *mediaStoreMock) *HomeService {
	cfg := &config.Config{MaxUploadBytes: 1024}
	return NewHomeService(store, media, cfg, zerolog.Nop())
}

func TestHomeSaveCreatesSection(t *testing.T) {
	store := newHomeStoreMock()
	svc := newHomeService(store, &mediaStoreMock{})

	sec, updated, err := svc.Save(context.Background(), heroRequest(), nil)
	require.NoError(t, err)
	assert.False(t, updated)
	assert.Equal(t, model.SectionHero, sec.Section)
	assert.Len(t, store.sections, 1)
}

func TestHomeSaveUpsertsExistingSection(t *testing.T) {
	store := newHomeStoreMock()
	svc := newHomeService(store, &mediaStoreMock{})

	_, _, err := svc.Save(context.Background(), heroRequest(), nil)
	require.NoError(t, err)

	req := heroRequest()
	req.Title = "Welcome Back"
	sec, updated, err := svc.Save(context.Background(), req, nil)
	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, "Welcome Back", sec.Title)

	// Still exactly one hero section.
	assert.Len(t, store.sections, 1)
}

func TestHomeSaveWithoutImageIsAllowed(t *testing.T) {
	svc := newHomeService(newHomeStoreMock(), &mediaStoreMock{})

	req := heroRequest()
	sec, _, err := svc.Save(context.Background(), req, nil)
	require.NoError(t, err)
	assert.Empty(t, sec.Image)
}

func TestHomeSaveReplacesImageOnUpsert(t *testing.T) {
	store := newHomeStoreMock()
	media := &mediaStoreMock{uploadURL: "https://res.cloudinary.com/demo/image/upload/v1/x/hero.jpg"}
	svc := newHomeService(store, media)

	first, _, err := svc.Save(context.Background(), heroRequest(), jpegUpload())
	require.NoError(t, err)

	media.uploadURL = "https://res.cloudinary.com/demo/image/upload/v2/x/hero.jpg"
	second, updated, err := svc.Save(context.Background(), heroRequest(), jpegUpload())
	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, media.uploadURL, second.Image)
	assert.Equal(t, []string{first.Image}, media.deletes)
}

func TestHomeUpdatePinsSectionName(t *testing.T) {
	store := newHomeStoreMock()
	svc := newHomeService(store, &mediaStoreMock{})

	_, _, err := svc.Save(context.Background(), heroRequest(), nil)
	require.NoError(t, err)

	// The route param wins over whatever the payload claims.
	req := heroRequest()
	req.Section = model.SectionAbout
	sec, err := svc.Update(context.Background(), model.SectionHero, req, nil)
	require.NoError(t, err)
	assert.Equal(t, model.SectionHero, sec.Section)
}

func TestHomeDeleteCleansImage(t *testing.T) {
	store := newHomeStoreMock()
	media := &mediaStoreMock{uploadURL: "https://res.cloudinary.com/demo/image/upload/v1/x/hero.jpg"}
	svc := newHomeService(store, media)

	sec, _, err := svc.Save(context.Background(), heroRequest(), jpegUpload())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), model.SectionHero))
	assert.Equal(t, []string{sec.Image}, media.deletes)
	assert.Empty(t, store.sections)
}
