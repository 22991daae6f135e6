package accounts

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/models"
)

type MongoStore struct {
	collection *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{collection: db.Collection("users")}
}

func (s *MongoStore) Create(ctx context.Context, user models.User) error {
	count, err := s.collection.CountDocuments(ctx, bson.M{"email": user.Email})
	if err != nil {
		return fmt.Errorf("accounts: failed to check email: %w", err)
	}
	if count > 0 {
		return ErrEmailTaken
	}
	_, err = s.collection.InsertOne(ctx, user)
	return err
}

func (s *MongoStore) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("accounts: failed to fetch user: %w", err)
	}
	return user, nil
}

func (s *MongoStore) GetByID(ctx context.Context, id string) (models.User, error) {
	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("accounts: failed to fetch user: %w", err)
	}
	return user, nil
}
