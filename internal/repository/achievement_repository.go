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

// AchievementFilter narrows an achievement listing.
type AchievementFilter struct {
	Category string
	Featured *bool
	IsActive *bool
}

type AchievementRepository struct {
	coll *mongo.Collection
}

func NewAchievementRepository(db *mongo.Database) *AchievementRepository {
	return &AchievementRepository{coll: db.Collection(database.CollAchievements)}
}

// List returns one page of achievements sorted by priority desc, date desc,
// featured desc, plus the total match count.
func (r *AchievementRepository) List(ctx context.Context, f AchievementFilter, page, limit int) ([]model.Achievement, int64, error) {
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
			{Key: "priority", Value: -1},
			{Key: "date", Value: -1},
			{Key: "featured", Value: -1},
		}).
		SetSkip(skip).
		SetLimit(lim))
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	achievements := []model.Achievement{}
	if err := cursor.All(ctx, &achievements); err != nil {
		return nil, 0, err
	}
	return achievements, total, nil
}

func (r *AchievementRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Achievement, error) {
	var achievement model.Achievement
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&achievement)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &achievement, nil
}

func (r *AchievementRepository) Create(ctx context.Context, achievement *model.Achievement) error {
	now := time.Now().UTC()
	achievement.ID = primitive.NewObjectID()
	achievement.CreatedAt = now
	achievement.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, achievement)
	return err
}

func (r *AchievementRepository) Update(ctx context.Context, id primitive.ObjectID, achievement *model.Achievement) (*model.Achievement, error) {
	fields, err := updateFields(achievement)
	if err != nil {
		return nil, err
	}

	var updated model.Achievement
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

func (r *AchievementRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
