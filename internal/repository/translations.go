// Package repository provides data access for translation rows.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TranslationsRepository implements TranslationsRepositoryInterface using MongoDB.
type TranslationsRepository struct {
	collection *mongo.Collection
}

// NewTranslationsRepository creates a new translations repository.
func NewTranslationsRepository(db *MongoDB) *TranslationsRepository {
	return &TranslationsRepository{
		collection: db.Translations,
	}
}

// InsertMany persists a batch of translation rows, generating ids and
// timestamps for rows that lack them.
func (r *TranslationsRepository) InsertMany(ctx context.Context, rows []TranslationRow) error {
	if len(rows) == 0 {
		return nil
	}

	now := time.Now().UTC().Format(time.RFC3339)
	docs := make([]interface{}, 0, len(rows))
	for _, row := range rows {
		if row.ID == "" {
			row.ID = uuid.New().String()
		}
		if row.UpdatedAt == "" {
			row.UpdatedAt = now
		}
		docs = append(docs, bson.M{
			"_id":                row.ID,
			"translation_key_id": row.TranslationKeyID,
			"language_code":      row.LanguageCode,
			"value":              row.Value,
			"updated_at":         row.UpdatedAt,
			"updated_by":         row.UpdatedBy,
		})
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// Exists reports whether a translation row exists for (keyID, languageCode).
func (r *TranslationsRepository) Exists(ctx context.Context, keyID, languageCode string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"translation_key_id": keyID,
		"language_code":      languageCode,
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Upsert sets the value for (keyID, languageCode) in a single atomic write:
// updates the existing row, or inserts a new one with a generated id. The
// unique (translation_key_id, language_code) index guarantees concurrent
// upserts cannot produce duplicate rows.
func (r *TranslationsRepository) Upsert(ctx context.Context, keyID, languageCode, value, updatedBy string) error {
	filter := bson.M{
		"translation_key_id": keyID,
		"language_code":      languageCode,
	}
	update := bson.M{
		"$set": bson.M{
			"value":      value,
			"updated_at": time.Now().UTC().Format(time.RFC3339),
			"updated_by": updatedBy,
		},
		"$setOnInsert": bson.M{
			"_id": uuid.New().String(),
		},
	}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// DeleteForKey removes all translation rows belonging to a key.
func (r *TranslationsRepository) DeleteForKey(ctx context.Context, keyID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"translation_key_id": keyID})
	return err
}

// CountForLanguage counts a project's completed translations for one
// language. Completed means the value contains a non-whitespace character,
// the same rule the service applies. Translation rows carry no project_id,
// so scoping goes through a translation_keys lookup.
func (r *TranslationsRepository) CountForLanguage(ctx context.Context, projectID, languageCode string) (int64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"language_code": languageCode,
			"value":         bson.M{"$regex": primitive.Regex{Pattern: `\S`}},
		}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "translation_keys"},
			{Key: "localField", Value: "translation_key_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "key"},
		}}},
		bson.D{{Key: "$match", Value: bson.M{"key.project_id": projectID}}},
		bson.D{{Key: "$count", Value: "completed"}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var results []struct {
		Completed int64 `bson:"completed"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Completed, nil
}
