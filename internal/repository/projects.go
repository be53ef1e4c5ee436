// Package repository provides data access for projects and their language sets.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProjectsRepository implements ProjectsRepositoryInterface using MongoDB.
type ProjectsRepository struct {
	projects         *mongo.Collection
	projectLanguages *mongo.Collection
}

// NewProjectsRepository creates a new projects repository.
func NewProjectsRepository(db *MongoDB) *ProjectsRepository {
	return &ProjectsRepository{
		projects:         db.Projects,
		projectLanguages: db.ProjectLanguages,
	}
}

// FetchAll returns all project rows with their configured languages, resolved
// through the project_languages association.
func (r *ProjectsRepository) FetchAll(ctx context.Context) ([]ProjectRow, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "project_languages"},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "project_id"},
			{Key: "as", Value: "language_links"},
		}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "languages"},
			{Key: "localField", Value: "language_links.language_code"},
			{Key: "foreignField", Value: "code"},
			{Key: "as", Value: "languages"},
		}}},
		bson.D{{Key: "$project", Value: bson.D{{Key: "language_links", Value: 0}}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: 1}}}},
	}

	cursor, err := r.projects.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var rows []ProjectRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// EnsureLanguages inserts the given languages into the catalog if absent.
// Existing entries are left untouched.
func (r *ProjectsRepository) EnsureLanguages(ctx context.Context, languages []LanguageRow) error {
	catalog := r.projects.Database().Collection("languages")
	for _, lang := range languages {
		filter := bson.M{"code": lang.Code}
		update := bson.M{"$setOnInsert": bson.M{
			"code": lang.Code,
			"name": lang.Name,
			"flag": lang.Flag,
		}}
		opts := options.Update().SetUpsert(true)
		if _, err := catalog.UpdateOne(ctx, filter, update, opts); err != nil {
			return err
		}
	}
	return nil
}

// FetchLanguageCodes returns the language codes configured for a project.
func (r *ProjectsRepository) FetchLanguageCodes(ctx context.Context, projectID string) ([]string, error) {
	cursor, err := r.projectLanguages.Find(ctx, bson.M{"project_id": projectID})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var links []struct {
		LanguageCode string `bson:"language_code"`
	}
	if err := cursor.All(ctx, &links); err != nil {
		return nil, err
	}

	codes := make([]string, 0, len(links))
	for _, link := range links {
		codes = append(codes, link.LanguageCode)
	}
	return codes, nil
}
