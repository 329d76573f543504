package storage

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/RiteshJha912/epoch/config"
	"github.com/RiteshJha912/epoch/models"
)

type MongoHabitStore struct {
	coll *mongo.Collection
}

func NewMongoHabitStore() *MongoHabitStore {
	return &MongoHabitStore{coll: config.OpenCollection("habits")}
}

func (s *MongoHabitStore) Create(ctx context.Context, habit models.Habit) (models.Habit, error) {
	habit.ID = primitive.NewObjectID()
	if _, err := s.coll.InsertOne(ctx, habit); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

func (s *MongoHabitStore) ByOwner(ctx context.Context, userID string) ([]models.Habit, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var out []models.Habit
	err = cursor.All(ctx, &out)
	return out, err
}

func (s *MongoHabitStore) ByID(ctx context.Context, id string, userID string) (models.Habit, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Habit{}, ErrNotFound
	}
	var habit models.Habit
	err = s.coll.FindOne(ctx, bson.M{"_id": oid, "user_id": userID}).Decode(&habit)
	if err == mongo.ErrNoDocuments {
		return models.Habit{}, ErrNotFound
	}
	return habit, err
}

func (s *MongoHabitStore) UpdateDays(ctx context.Context, id string, days []models.Day, completionDate *time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	set := bson.D{{Key: "days", Value: days}}
	if completionDate != nil {
		set = append(set, bson.E{Key: "completion_date", Value: completionDate})
	}
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoHabitStore) Delete(ctx context.Context, id string, userID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
