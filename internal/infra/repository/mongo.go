package repository

import (
	"context"
	"errors"

	"support-widget/internal/domain/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no document carries the requested id.
var ErrNotFound = errors.New("document not found")

type MongoRepository[T any] struct {
	mongo *mongo.Database
}

func NewMongoRepository[T any](mongo *mongo.Database) *MongoRepository[T] {
	return &MongoRepository[T]{mongo: mongo}
}

func (r *MongoRepository[T]) Create(ctx context.Context, collectionName string, entity T) (T, error) {
	collection := r.mongo.Collection(collectionName)
	_, err := collection.InsertOne(ctx, entity)
	return entity, err
}

// Update sets the fields in patch on the document with the given id and returns
// the stored version. Fields absent from patch are left alone. It never upserts.
func (r *MongoRepository[T]) Update(ctx context.Context, collectionName string, id string, patch entities.Document) (T, error) {
	var updated T
	if len(patch) == 0 {
		return r.FindByID(ctx, collectionName, id)
	}

	collection := r.mongo.Collection(collectionName)
	filter := bson.M{"_id": id}

	result, err := collection.UpdateOne(ctx, filter, bson.M{"$set": bson.M(patch)})
	if err != nil {
		return updated, err
	}
	if result.MatchedCount == 0 {
		return updated, ErrNotFound
	}
	return r.FindByID(ctx, collectionName, id)
}

func (r *MongoRepository[T]) Delete(ctx context.Context, collectionName string, id string) error {
	collection := r.mongo.Collection(collectionName)
	filter := bson.M{"_id": id}
	result, err := collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepository[T]) FindByID(ctx context.Context, collectionName string, id string) (T, error) {
	var entity T
	collection := r.mongo.Collection(collectionName)
	filter := bson.M{"_id": id}
	err := collection.FindOne(ctx, filter).Decode(&entity)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entity, ErrNotFound
	}
	return entity, err
}

func (r *MongoRepository[T]) FindAll(ctx context.Context, collectionName string) ([]T, error) {
	collection := r.mongo.Collection(collectionName)
	cursor, err := collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []T{}
	for cursor.Next(ctx) {
		var entity T
		if err := cursor.Decode(&entity); err != nil {
			return nil, err
		}
		items = append(items, entity)
	}
	return items, cursor.Err()
}

func (r *MongoRepository[T]) Count(ctx context.Context, collectionName string) (int64, error) {
	return r.mongo.Collection(collectionName).CountDocuments(ctx, bson.D{})
}
