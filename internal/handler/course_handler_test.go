package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/radianceacademy/radiance-backend/internal/config"
	"github.com/radianceacademy/radiance-backend/internal/model"
	"github.com/radianceacademy/radiance-backend/internal/repository"
	"github.com/radianceacademy/radiance-backend/internal/service"
	"github.com/radianceacademy/radiance-backend/internal/validator"
)

type courseStoreStub struct {
	courses map[primitive.ObjectID]*model.Course
}

func newCourseStoreStub() *courseStoreStub {
	return &courseStoreStub{courses: map[primitive.ObjectID]*model.Course{}}
}

func (s *courseStoreStub) List(_ context.Context, _ repository.CourseFilter, _, _ int) ([]model.Course, int64, error) {
	out := make([]model.Course, 0, len(s.courses))
	for _, c := range s.courses {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (s *courseStoreStub) GetByID(_ context.Context, id primitive.ObjectID) (*model.Course, error) {
	if c, ok := s.courses[id]; ok {
		return c, nil
	}
	return nil, repository.ErrNotFound
}

func (s *courseStoreStub) Create(_ context.Context, course *model.Course) error {
	course.ID = primitive.NewObjectID()
	s.courses[course.ID] = course
	return nil
}

func (s *courseStoreStub) Update(_ context.Context, id primitive.ObjectID, course *model.Course) (*model.Course, error) {
	if _, ok := s.courses[id]; !ok {
		return nil, repository.ErrNotFound
	}
	course.ID = id
	s.courses[id] = course
	return course, nil
}

func (s *courseStoreStub) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := s.courses[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.courses, id)
	return nil
}

type mediaStoreStub struct{}

func (mediaStoreStub) Upload(_ context.Context, _ *service.Upload) (string, error) {
	return "https://res.cloudinary.com/demo/image/upload/v1/radiance-academy/test.jpg", nil
}

func (mediaStoreStub) Delete(_ context.Context, _ string) error { return nil }

func courseTestRouter(store *courseStoreStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	setupValidatorOnce.Do(validator.Setup)

	cfg := &config.Config{MaxUploadBytes: 1 << 20}
	svc := service.NewCourseService(store, mediaStoreStub{}, cfg, zerolog.Nop())
	h := NewCourseHandler(svc)

	router := gin.New()
	router.GET("/api/courses", h.List)
	router.GET("/api/courses/:id", h.Get)
	router.POST("/api/courses", h.Create)
	return router
}

// writeJPEGPart attaches an image part with an explicit JPEG content type;
// CreateFormFile would mark it application/octet-stream and fail validation.
func writeJPEGPart(t *testing.T, mw *multipart.Writer) {
	t.Helper()
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="course.jpg"`)
	header.Set("Content-Type", "image/jpeg")
	fw, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = fw.Write([]byte{0xFF, 0xD8, 0xFF, 0xE0})
	require.NoError(t, err)
}

func TestCourseGetInvalidID(t *testing.T) {
	router := courseTestRouter(newCourseStoreStub())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/courses/not-an-id", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid course ID")
}

func TestCourseGetNotFound(t *testing.T) {
	router := courseTestRouter(newCourseStoreStub())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/courses/"+primitive.NewObjectID().Hex(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Course not found")
}

func TestCourseListEnvelope(t *testing.T) {
	store := newCourseStoreStub()
	store.courses[primitive.NewObjectID()] = &model.Course{Title: "Algebra Basics"}
	router := courseTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Courses    []model.Course `json:"courses"`
			Pagination struct {
				Current int   `json:"current"`
				Pages   int   `json:"pages"`
				Total   int64 `json:"total"`
			} `json:"pagination"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Len(t, body.Data.Courses, 1)
	assert.Equal(t, 1, body.Data.Pagination.Current)
	assert.Equal(t, int64(1), body.Data.Pagination.Total)
}

func TestCourseCreateMultipart(t *testing.T) {
	store := newCourseStoreStub()
	router := courseTestRouter(store)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fields := map[string]string{
		"title":            "Algebra Basics",
		"description":      "Foundation algebra course",
		"shortDescription": "Algebra for beginners",
		"duration":         "3 months",
		"level":            "Beginner",
		"category":         "Academic",
		"price":            "1500",
		"features":         `["Weekly tests","Doubt sessions"]`,
		"instructor":       `{"name":"R. Sharma","qualification":"M.Sc.","experience":"12 years"}`,
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	writeJPEGPart(t, mw)
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/courses", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, store.courses, 1)
	for _, c := range store.courses {
		assert.Equal(t, []string{"Weekly tests", "Doubt sessions"}, c.Features)
		assert.Equal(t, "R. Sharma", c.Instructor.Name)
		assert.NotEmpty(t, c.Image)
	}
}

func TestCourseCreateMalformedFeaturesIgnored(t *testing.T) {
	store := newCourseStoreStub()
	router := courseTestRouter(store)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fields := map[string]string{
		"title":            "Algebra Basics",
		"description":      "Foundation algebra course",
		"shortDescription": "Algebra for beginners",
		"duration":         "3 months",
		"level":            "Beginner",
		"category":         "Academic",
		"price":            "1500",
		"features":         `not-json`,
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	writeJPEGPart(t, mw)
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/courses", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	router.ServeHTTP(w, req)

	// A malformed structured field degrades to empty rather than failing.
	assert.Equal(t, http.StatusCreated, w.Code)
	for _, c := range store.courses {
		assert.Empty(t, c.Features)
	}
}
