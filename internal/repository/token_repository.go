// Package repository provides token data access layer.
package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/guttosm/localization-service/internal/domain/model"
)

// TokenRepositoryInterface persists refresh tokens and the access-token
// blacklist. Both kinds share one collection, distinguished by the type field.
type TokenRepositoryInterface interface {
	Create(ctx context.Context, token *model.Token) error
	FindByToken(ctx context.Context, tokenString string) (*model.Token, error)
	DeleteByToken(ctx context.Context, tokenString string) error
	DeleteByUserID(ctx context.Context, userID primitive.ObjectID, tokenType string) error
	IsBlacklisted(ctx context.Context, tokenString string) (bool, error)
	CleanupExpired(ctx context.Context) error
}

// TokenRepository implements TokenRepositoryInterface on the tokens collection.
type TokenRepository struct {
	tokens *mongo.Collection
}

// NewTokenRepository creates a token repository.
func NewTokenRepository(db *MongoDB) *TokenRepository {
	return &TokenRepository{tokens: db.Tokens}
}

// Create inserts a token record, assigning an ID and creation timestamp.
func (r *TokenRepository) Create(ctx context.Context, token *model.Token) error {
	token.CreatedAt = time.Now()
	if token.ID.IsZero() {
		token.ID = primitive.NewObjectID()
	}

	_, err := r.tokens.InsertOne(ctx, token)
	return err
}

// FindByToken looks up a token record by its string value, nil when absent.
func (r *TokenRepository) FindByToken(ctx context.Context, tokenString string) (*model.Token, error) {
	var token model.Token
	err := r.tokens.FindOne(ctx, bson.M{"token": tokenString}).Decode(&token)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// DeleteByToken removes one token record by its string value.
func (r *TokenRepository) DeleteByToken(ctx context.Context, tokenString string) error {
	_, err := r.tokens.DeleteOne(ctx, bson.M{"token": tokenString})
	return err
}

// DeleteByUserID removes all of a user's tokens of the given type.
func (r *TokenRepository) DeleteByUserID(ctx context.Context, userID primitive.ObjectID, tokenType string) error {
	_, err := r.tokens.DeleteMany(ctx, bson.M{"user_id": userID, "type": tokenType})
	return err
}

// IsBlacklisted reports whether a blacklist entry exists for the token.
func (r *TokenRepository) IsBlacklisted(ctx context.Context, tokenString string) (bool, error) {
	count, err := r.tokens.CountDocuments(ctx, bson.M{
		"token": tokenString,
		"type":  "blacklist",
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CleanupExpired removes every token record past its expiry.
func (r *TokenRepository) CleanupExpired(ctx context.Context) error {
	_, err := r.tokens.DeleteMany(ctx, bson.M{
		"expires_at": bson.M{"$lt": time.Now()},
	})
	return err
}
