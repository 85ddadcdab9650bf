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

// CourseFilter narrows a course listing. Zero-valued fields are unconstrained.
type CourseFilter struct {
	Category string
	Level    string
	Search   string
	IsActive *bool
}

type CourseRepository struct {
	coll *mongo.Collection
}

func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{coll: db.Collection(database.CollCourses)}
}

// List returns one page of courses, newest-created first, plus the total
// match count.
func (r *CourseRepository) List(ctx context.Context, f CourseFilter, page, limit int) ([]model.Course, int64, error) {
	query := bson.M{}
	if f.IsActive != nil {
		query["isActive"] = *f.IsActive
	}
	if f.Category != "" {
		query["category"] = f.Category
	}
	if f.Level != "" {
		query["level"] = f.Level
	}
	if f.Search != "" {
		query["$text"] = bson.M{"$search": f.Search}
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

	courses := []model.Course{}
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, 0, err
	}
	return courses, total, nil
}

func (r *CourseRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Course, error) {
	var course model.Course
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&course)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) Create(ctx context.Context, course *model.Course) error {
	now := time.Now().UTC()
	course.ID = primitive.NewObjectID()
	course.CreatedAt = now
	course.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, course)
	return err
}

// Update overwrites every stored field of the course and returns the updated
// document.
func (r *CourseRepository) Update(ctx context.Context, id primitive.ObjectID, course *model.Course) (*model.Course, error) {
	fields, err := updateFields(course)
	if err != nil {
		return nil, err
	}

	var updated model.Course
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

func (r *CourseRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
