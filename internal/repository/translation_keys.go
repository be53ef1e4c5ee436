// Package repository provides data access for translation keys.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// TranslationKeysRepository implements TranslationKeysRepositoryInterface
// using MongoDB.
type TranslationKeysRepository struct {
	collection *mongo.Collection
}

// NewTranslationKeysRepository creates a new translation keys repository.
func NewTranslationKeysRepository(db *MongoDB) *TranslationKeysRepository {
	return &TranslationKeysRepository{
		collection: db.TranslationKeys,
	}
}

// translationsLookup embeds translation rows under each key row.
var translationsLookup = bson.D{{Key: "$lookup", Value: bson.D{
	{Key: "from", Value: "translations"},
	{Key: "localField", Value: "_id"},
	{Key: "foreignField", Value: "translation_key_id"},
	{Key: "as", Value: "translations"},
}}}

// FetchKeysForProject returns all key rows of a project with their nested
// translations. Search and category predicates are applied in the match
// stage; missing-translation filtering happens downstream because it needs
// the project's language set.
func (r *TranslationKeysRepository) FetchKeysForProject(ctx context.Context, projectID, search, category string) ([]KeyRow, error) {
	match := bson.M{"project_id": projectID}
	if search != "" {
		match["key"] = bson.M{"$regex": primitive.Regex{Pattern: escapeRegex(search), Options: "i"}}
	}
	if category != "" {
		match["category"] = category
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		translationsLookup,
		bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: 1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var rows []KeyRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID returns a single key row with nested translations, or nil if absent.
func (r *TranslationKeysRepository) FindByID(ctx context.Context, keyID string) (*KeyRow, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": keyID}}},
		translationsLookup,
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var rows []KeyRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// Insert persists a new key row.
func (r *TranslationKeysRepository) Insert(ctx context.Context, row *KeyRow) error {
	doc := bson.M{
		"_id":        row.ID,
		"key":        row.Key,
		"category":   row.Category,
		"project_id": row.ProjectID,
		"created_at": row.CreatedAt,
		"updated_at": row.UpdatedAt,
	}
	if row.Description != "" {
		doc["description"] = row.Description
	}
	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

// Delete removes a key row. Returns true only if a row was actually removed.
func (r *TranslationKeysRepository) Delete(ctx context.Context, keyID string) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": keyID})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

// Count returns the number of keys in a project, unfiltered.
func (r *TranslationKeysRepository) Count(ctx context.Context, projectID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"project_id": projectID})
}

// escapeRegex quotes regex metacharacters so user search input is treated as
// a literal substring.
func escapeRegex(s string) string {
	const meta = `\.+*?()|[]{}^$`
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		for j := 0; j < len(meta); j++ {
			if s[i] == meta[j] {
				out = append(out, '\\')
				break
			}
		}
		out = append(out, s[i])
	}
	return string(out)
}
