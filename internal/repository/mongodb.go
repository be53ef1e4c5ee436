// Package repository provides the data access layer for MongoDB.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConfig holds connection pool and timeout settings.
type MongoConfig struct {
	MaxPoolSize            uint64
	MinPoolSize            uint64
	MaxConnIdleTime        time.Duration
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
	SocketTimeout          time.Duration
	// EnableCompression turns on wire protocol compression.
	EnableCompression bool
}

// DefaultMongoConfig returns the pool settings used in production.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            50,
		MinPoolSize:            10,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          30 * time.Second,
		EnableCompression:      true,
	}
}

// MongoDB bundles the client with handles to every collection the service
// touches, so repositories never construct collection names themselves.
type MongoDB struct {
	Client           *mongo.Client
	Database         *mongo.Database
	Projects         *mongo.Collection
	ProjectLanguages *mongo.Collection
	Languages        *mongo.Collection
	TranslationKeys  *mongo.Collection
	Translations     *mongo.Collection
	Users            *mongo.Collection
	Tokens           *mongo.Collection
}

// NewMongoDB connects using the default pool configuration.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig connects, pings, and ensures indexes. A failed ping
// fails construction so callers never hold a dead handle.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout).
		SetRetryWrites(true).
		SetRetryReads(true)

	if cfg.EnableCompression {
		opts.SetCompressors([]string{"zstd", "snappy", "zlib"})
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(databaseName)
	mongoDB := &MongoDB{
		Client:           client,
		Database:         db,
		Projects:         db.Collection("projects"),
		ProjectLanguages: db.Collection("project_languages"),
		Languages:        db.Collection("languages"),
		TranslationKeys:  db.Collection("translation_keys"),
		Translations:     db.Collection("translations"),
		Users:            db.Collection("users"),
		Tokens:           db.Collection("tokens"),
	}

	if err := mongoDB.createIndexes(ctx); err != nil {
		return nil, err
	}

	return mongoDB, nil
}

// createIndexes creates necessary indexes for collections.
func (m *MongoDB) createIndexes(ctx context.Context) error {
	// Translations: one row per (translation_key_id, language_code). The
	// upsert path relies on this; without it, concurrent upserts that both
	// miss could insert duplicate rows.
	pairIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "translation_key_id", Value: 1}, {Key: "language_code", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := m.Translations.Indexes().CreateOne(ctx, pairIndex); err != nil {
		return err
	}

	// The key lookup and cascade delete both scan by translation_key_id alone.
	keyIDIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "translation_key_id", Value: 1}},
		Options: options.Index().SetUnique(false),
	}
	_, _ = m.Translations.Indexes().CreateOne(ctx, keyIDIndex)

	// Translation keys: unique key name within a project, list scans by project.
	projectKeyIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "project_id", Value: 1}, {Key: "key", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := m.TranslationKeys.Indexes().CreateOne(ctx, projectKeyIndex); err != nil {
		return err
	}

	// Project language associations.
	projectLanguageIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "project_id", Value: 1}, {Key: "language_code", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, _ = m.ProjectLanguages.Indexes().CreateOne(ctx, projectLanguageIndex)

	// Languages are looked up by code when hydrating projects.
	languageCodeIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "code", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, _ = m.Languages.Indexes().CreateOne(ctx, languageCodeIndex)

	// Unique identity lookups for login and registration.
	_, _ = m.Users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	_, _ = m.Users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	// Refresh tokens and blacklist entries are looked up by token string,
	// revoked per user, and auto-expired by Mongo once expires_at passes.
	_, _ = m.Tokens.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "token", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	_, _ = m.Tokens.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "type", Value: 1}},
	})
	_, _ = m.Tokens.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})

	return nil
}

// Close closes the MongoDB connection.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck verifies the MongoDB connection is healthy.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}
