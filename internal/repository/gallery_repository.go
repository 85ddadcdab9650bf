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

// GalleryFilter narrows a gallery listing.
type GalleryFilter struct {
	Category string
	Featured *bool
	IsActive *bool
}

type GalleryRepository struct {
	coll *mongo.Collection
}

func NewGalleryRepository(db *mongo.Database) *GalleryRepository {
	return &GalleryRepository{coll: db.Collection(database.CollGallery)}
}

// List returns one page of gallery items sorted by order asc, date desc,
// featured desc, plus the total match count.
func (r *GalleryRepository) List(ctx context.Context, f GalleryFilter, page, limit int) ([]model.GalleryItem, int64, error) {
	query := bson.M{}
	if f.IsActive != nil {
		query["isActive"] = *f.IsActive
	}
	if f.Category != "" {
		query["category"] = f.Category
	}
	if f.Featured != nil {
		query["featured"] = *f.Featured
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	skip, lim := pageOpts(page, limit)
	cursor, err := r.coll.Find(ctx, query, options.Find().
		SetSort(bson.D{
			{Key: "order", Value: 1},
			{Key: "date", Value: -1},
			{Key: "featured", Value: -1},
		}).
		SetSkip(skip).
		SetLimit(lim))
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	items := []model.GalleryItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *GalleryRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.GalleryItem, error) {
	var item model.GalleryItem
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GalleryRepository) Create(ctx context.Context, item *model.GalleryItem) error {
	now := time.Now().UTC()
	item.ID = primitive.NewObjectID()
	item.CreatedAt = now
	item.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, item)
	return err
}

func (r *GalleryRepository) Update(ctx context.Context, id primitive.ObjectID, item *model.GalleryItem) (*model.GalleryItem, error) {
	fields, err := updateFields(item)
	if err != nil {
		return nil, err
	}

	var updated model.GalleryItem
	err = r.coll.FindOneAndUpdate(ctx,
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

func (r *GalleryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
