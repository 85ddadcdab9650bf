package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/radianceacademy/radiance-backend/internal/database"
	"github.com/radianceacademy/radiance-backend/internal/model"
)

// ContactFilter narrows a contact listing.
type ContactFilter struct {
	Status   string
	Priority string
	IsRead   *bool
}

type ContactRepository struct {
	coll *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{coll: db.Collection(database.CollContacts)}
}

// List returns one page of contacts, newest first, plus the total match count.
func (r *ContactRepository) List(ctx context.Context, f ContactFilter, page, limit int) ([]model.Contact, int64, error) {
	query := bson.M{}
	if f.Status != "" {
		query["status"] = f.Status
	}
	if f.Priority != "" {
		query["priority"] = f.Priority
	}
	if f.IsRead != nil {
		query["isRead"] = *f.IsRead
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	skip, lim := pageOpts(page, limit)
	cursor, err := r.coll.Find(ctx, query, options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(lim))
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	contacts := []model.Contact{}
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, 0, err
	}
	return contacts, total, nil
}

func (r *ContactRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Contact, error) {
	var contact model.Contact
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&contact)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *ContactRepository) Create(ctx context.Context, contact *model.Contact) error {
	now := time.Now().UTC()
	contact.ID = primitive.NewObjectID()
	contact.CreatedAt = now
	contact.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, contact)
	return err
}

// Update applies the provided triage fields and returns the updated document.
func (r *ContactRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*model.Contact, error) {
	fields["updatedAt"] = time.Now().UTC()

	var updated model.Contact
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// MarkRead flips isRead without touching updatedAt; reading an enquiry is not
// an edit.
func (r *ContactRepository) MarkRead(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"isRead": true}})
	return err
}

func (r *ContactRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// StatusStats groups contacts by status and reports totals for the admin
// dashboard.
func (r *ContactRepository) StatusStats(ctx context.Context) (*model.ContactStats, error) {
	cursor, err := r.coll.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	statusStats := []model.StatusCount{}
	if err := cursor.All(ctx, &statusStats); err != nil {
		return nil, err
	}

	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	unread, err := r.coll.CountDocuments(ctx, bson.M{"isRead": false})
	if err != nil {
		return nil, err
	}

	return &model.ContactStats{
		StatusStats:    statusStats,
		TotalContacts:  total,
		UnreadContacts: unread,
	}, nil
}
