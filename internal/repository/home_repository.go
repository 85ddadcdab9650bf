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

// HomeFilter narrows a home-section listing. Home sections are few and never
// paginated.
type HomeFilter struct {
	Section  string
	IsActive *bool
}

type HomeRepository struct {
	coll *mongo.Collection
}

func NewHomeRepository(db *mongo.Database) *HomeRepository {
	return &HomeRepository{coll: db.Collection(database.CollHome)}
}

// List returns home sections sorted by order asc, then creation time.
func (r *HomeRepository) List(ctx context.Context, f HomeFilter) ([]model.HomeSection, error) {
	query := bson.M{}
	if f.IsActive != nil {
		query["isActive"] = *f.IsActive
	}
	if f.Section != "" {
		query["section"] = f.Section
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().
		SetSort(bson.D{
			{Key: "order", Value: 1},
			{Key: "createdAt", Value: 1},
		}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	sections := []model.HomeSection{}
	if err := cursor.All(ctx, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

func (r *HomeRepository) GetBySection(ctx context.Context, section string) (*model.HomeSection, error) {
	var sec model.HomeSection
	err := r.coll.FindOne(ctx, bson.M{"section": section}).Decode(&sec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sec, nil
}

func (r *HomeRepository) Create(ctx context.Context, sec *model.HomeSection) error {
	now := time.Now().UTC()
	sec.ID = primitive.NewObjectID()
	sec.CreatedAt = now
	sec.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, sec)
	return err
}

// UpdateBySection overwrites every stored field of the named section and
// returns the updated document.
func (r *HomeRepository) UpdateBySection(ctx context.Context, section string, sec *model.HomeSection) (*model.HomeSection, error) {
	fields, err := updateFields(sec)
	if err != nil {
		return nil, err
	}

	var updated model.HomeSection
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"section": section},
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

func (r *HomeRepository) DeleteBySection(ctx context.Context, section string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"section": section})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
