package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/radianceacademy/radiance-backend/internal/config"
)

// Collection names for the seven application collections.
const (
	CollAdmins       = "admins"
	CollCourses      = "courses"
	CollToppers      = "toppers"
	CollAchievements = "achievements"
	CollGallery      = "gallery"
	CollHome         = "home"
	CollContacts     = "contacts"
)

// Connect creates and validates a MongoDB client connection and returns the
// application database handle.
func Connect(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*mongo.Client, *mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongodb: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongodb: %w", err)
	}

	log.Info().
		Str("database", cfg.DatabaseName).
		Msg("MongoDB connected")

	return client, client.Database(cfg.DatabaseName), nil
}

// EnsureIndexes creates the indexes every collection relies on. Safe to call
// repeatedly; Mongo treats identical index specs as a no-op.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	specs := map[string][]mongo.IndexModel{
		CollAdmins: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		CollCourses: {
			// Free-text search over title, description, and category.
			{Keys: bson.D{
				{Key: "title", Value: "text"},
				{Key: "description", Value: "text"},
				{Key: "category", Value: "text"},
			}},
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		},
		CollToppers: {
			{Keys: bson.D{{Key: "year", Value: -1}, {Key: "featured", Value: -1}}},
		},
		CollAchievements: {
			{Keys: bson.D{
				{Key: "date", Value: -1},
				{Key: "featured", Value: -1},
				{Key: "category", Value: 1},
			}},
		},
		CollGallery: {
			{Keys: bson.D{
				{Key: "category", Value: 1},
				{Key: "date", Value: -1},
				{Key: "featured", Value: -1},
			}},
		},
		CollHome: {
			{
				Keys:    bson.D{{Key: "section", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		CollContacts: {
			{Keys: bson.D{
				{Key: "createdAt", Value: -1},
				{Key: "status", Value: 1},
				{Key: "isRead", Value: 1},
			}},
		},
	}

	for coll, models := range specs {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", coll, err)
		}
	}
	return nil
}
