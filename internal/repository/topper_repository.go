package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/radianceacademy/radiance-backend/internal/database"
	"github.com/radianceacademy/radiance-backend/internal/model"
)

// TopperFilter narrows a topper listing. Exam matches as a case-insensitive
// substring.
type TopperFilter struct {
	Year     int
	Exam     string
	Featured *bool
	IsActive *bool
}

type TopperRepository struct {
	coll *mongo.Collection
}

func NewTopperRepository(db *mongo.Database) *TopperRepository {
	return &TopperRepository{coll: db.Collection(database.CollToppers)}
}

// List returns one page of toppers sorted by year desc, featured desc,
// newest-created first, plus the total match count.
func (r *TopperRepository) List(ctx context.Context, f TopperFilter, page, limit int) ([]model.Topper, int64, error) {
	query := bson.M{}
	if f.IsActive != nil {
		query["isActive"] = *f.IsActive
	}
	if f.Year != 0 {
		query["year"] = f.Year
	}
	if f.Exam != "" {
		query["exam"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Exam), Options: "i"}
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
			{Key: "year", Value: -1},
			{Key: "featured", Value: -1},
			{Key: "createdAt", Value: -1},
		}).
		SetSkip(skip).
		SetLimit(lim))
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	toppers := []model.Topper{}
	if err := cursor.All(ctx, &toppers); err != nil {
		return nil, 0, err
	}
	return toppers, total, nil
}

func (r *TopperRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Topper, error) {
	var topper model.Topper
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&topper)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &topper, nil
}

func (r *TopperRepository) Create(ctx context.Context, topper *model.Topper) error {
	now := time.Now().UTC()
	topper.ID = primitive.NewObjectID()
	topper.CreatedAt = now
	topper.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, topper)
	return err
}

func (r *TopperRepository) Update(ctx context.Context, id primitive.ObjectID, topper *model.Topper) (*model.Topper, error) {
	fields, err := updateFields(topper)
	if err != nil {
		return nil, err
	}

	var updated model.Topper
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

func (r *TopperRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
