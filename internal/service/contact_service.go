package service

import (
	"context"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/radianceacademy/radiance-backend/internal/model"
	"github.com/radianceacademy/radiance-backend/internal/repository"
)

// ContactStore is the slice of contact persistence the service needs.
type ContactStore interface {
	List(ctx context.Context, f repository.ContactFilter, page, limit int) ([]model.Contact, int64, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Contact, error)
	Create(ctx context.Context, contact *model.Contact) error
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*model.Contact, error)
	MarkRead(ctx context.Context, id primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	StatusStats(ctx context.Context) (*model.ContactStats, error)
}

// ContactService handles public enquiries and their admin-side triage.
type ContactService struct {
	store ContactStore
	log   zerolog.Logger
}

func NewContactService(store ContactStore, log zerolog.Logger) *ContactService {
	return &ContactService{
		store: store,
		log:   log.With().Str("component", "contact_service").Logger(),
	}
}

func (s *ContactService) Create(ctx context.Context, req *model.ContactRequest) (*model.Contact, error) {
	contact := req.Document()
	if err := s.store.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *ContactService) List(ctx context.Context, f repository.ContactFilter, page, limit int) ([]model.Contact, int64, error) {
	return s.store.List(ctx, f, page, limit)
}

// Get returns one enquiry. The first admin view marks it read; the flip is
// best-effort and the returned document already reflects it.
func (s *ContactService) Get(ctx context.Context, id primitive.ObjectID) (*model.Contact, error) {
	contact, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !contact.IsRead {
		if err := s.store.MarkRead(ctx, id); err != nil {
			s.log.Warn().Err(err).Str("contact", id.Hex()).Msg("Failed to mark contact as read")
		} else {
			contact.IsRead = true
		}
	}
	return contact, nil
}

// Update applies only the triage fields present in the request.
func (s *ContactService) Update(ctx context.Context, id primitive.ObjectID, req *model.ContactUpdateRequest) (*model.Contact, error) {
	fields := bson.M{}
	if req.Status != "" {
		fields["status"] = req.Status
	}
	if req.Priority != "" {
		fields["priority"] = req.Priority
	}
	if req.AdminNotes != "" {
		fields["adminNotes"] = req.AdminNotes
	}
	if req.IsRead != nil {
		fields["isRead"] = *req.IsRead
	}
	return s.store.Update(ctx, id, fields)
}

func (s *ContactService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.store.Delete(ctx, id)
}

func (s *ContactService) Stats(ctx context.Context) (*model.ContactStats, error) {
	return s.store.StatusStats(ctx)
}
