package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/radianceacademy/radiance-backend/internal/model"
	"github.com/radianceacademy/radiance-backend/internal/repository"
	"github.com/radianceacademy/radiance-backend/internal/service"
	"github.com/radianceacademy/radiance-backend/internal/validator"
)

var setupValidatorOnce sync.Once

type contactStoreStub struct {
	contacts []*model.Contact
}

func (s *contactStoreStub) List(_ context.Context, _ repository.ContactFilter, _, _ int) ([]model.Contact, int64, error) {
	out := make([]model.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (s *contactStoreStub) GetByID(_ context.Context, id primitive.ObjectID) (*model.Contact, error) {
	for _, c := range s.contacts {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *contactStoreStub) Create(_ context.Context, contact *model.Contact) error {
	contact.ID = primitive.NewObjectID()
	s.contacts = append(s.contacts, contact)
	return nil
}

func (s *contactStoreStub) Update(_ context.Context, _ primitive.ObjectID, _ bson.M) (*model.Contact, error) {
	return nil, repository.ErrNotFound
}

func (s *contactStoreStub) MarkRead(_ context.Context, _ primitive.ObjectID) error { return nil }

func (s *contactStoreStub) Delete(_ context.Context, _ primitive.ObjectID) error {
	return repository.ErrNotFound
}

func (s *contactStoreStub) StatusStats(_ context.Context) (*model.ContactStats, error) {
	return &model.ContactStats{}, nil
}

func contactTestRouter(store *contactStoreStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	setupValidatorOnce.Do(validator.Setup)

	h := NewContactHandler(service.NewContactService(store, zerolog.Nop()))
	router := gin.New()
	router.POST("/api/contact", h.Create)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestContactCreateSuccess(t *testing.T) {
	store := &contactStoreStub{}
	router := contactTestRouter(store)

	w := postJSON(t, router, "/api/contact", gin.H{
		"name":    "Ravi Kumar",
		"email":   "ravi@example.com",
		"phone":   "9876543210",
		"subject": "Admission enquiry",
		"message": "Please share the fee structure.",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Contact form submitted successfully")
	require.Len(t, store.contacts, 1)
	assert.Equal(t, model.ContactStatusNew, store.contacts[0].Status)
}

func TestContactCreateMissingPhone(t *testing.T) {
	router := contactTestRouter(&contactStoreStub{})

	w := postJSON(t, router, "/api/contact", gin.H{
		"name":    "Ravi Kumar",
		"email":   "ravi@example.com",
		"subject": "Admission enquiry",
		"message": "Please share the fee structure.",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Success bool `json:"success"`
		Errors  []struct {
			Field string `json:"field"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	require.NotEmpty(t, body.Errors)
	assert.Equal(t, "phone", body.Errors[0].Field)
}

func TestContactCreateInvalidPhone(t *testing.T) {
	router := contactTestRouter(&contactStoreStub{})

	w := postJSON(t, router, "/api/contact", gin.H{
		"name":    "Ravi Kumar",
		"email":   "ravi@example.com",
		"phone":   "12345",
		"subject": "Admission enquiry",
		"message": "Please share the fee structure.",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "phone")
}
