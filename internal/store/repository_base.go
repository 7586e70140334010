// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MKhiriev/ecostats/models"
)

// baseRepository implements the collection operations shared by every typed
// repository. T is the document type decoded from the collection.
type baseRepository[T any] struct {
	collection *mongo.Collection
}

func newBaseRepository[T any](collection *mongo.Collection) baseRepository[T] {
	return baseRepository[T]{collection: collection}
}

// insert stores doc and returns the generated ObjectID.
func (r baseRepository[T]) insert(ctx context.Context, doc any) (primitive.ObjectID, error) {
	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, err
		}
		return primitive.NilObjectID, fmt.Errorf("%w: %w", ErrInsertingDoc, err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r baseRepository[T]) findOne(ctx context.Context, filter any) (T, error) {
	var doc T
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return doc, ErrNotFound
	}
	if err != nil {
		return doc, fmt.Errorf("%w: %w", ErrFindingDocs, err)
	}
	return doc, nil
}

func (r baseRepository[T]) findByID(ctx context.Context, id primitive.ObjectID) (T, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// find returns all documents matching filter, sorted by sortField descending
// and windowed by page. A zero page returns every match, a window past any
// representable offset returns none without querying.
func (r baseRepository[T]) find(ctx context.Context, filter any, sortField string, page models.PageRequest) ([]T, error) {
	if page.OutOfRange() {
		return make([]T, 0), nil
	}

	opts := options.Find()
	if sortField != "" {
		opts.SetSort(bson.D{{Key: sortField, Value: -1}, {Key: "_id", Value: -1}})
	}
	if page.PageSize > 0 {
		opts.SetSkip(page.Skip()).SetLimit(page.Limit())
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFindingDocs, err)
	}

	docs := make([]T, 0)
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocs, err)
	}
	return docs, nil
}

func (r baseRepository[T]) count(ctx context.Context, filter any) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCountingDocs, err)
	}
	return n, nil
}

// list returns one page of documents together with the total number of
// documents matching filter.
func (r baseRepository[T]) list(ctx context.Context, filter any, sortField string, page models.PageRequest) ([]T, int64, error) {
	total, err := r.count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	docs, err := r.find(ctx, filter, sortField, page)
	if err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}

// updateByID applies set with $set and returns the updated document.
func (r baseRepository[T]) updateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (T, error) {
	var doc T
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return doc, ErrNotFound
	}
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return doc, err
		}
		return doc, fmt.Errorf("%w: %w", ErrUpdatingDoc, err)
	}
	return doc, nil
}

func (r baseRepository[T]) deleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeletingDoc, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// groupCount runs a $group on field and returns the number of documents per
// distinct value.
func (r baseRepository[T]) groupCount(ctx context.Context, field string) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + field},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAggregating, err)
	}

	var rows []struct {
		Key   any   `bson:"_id"`
		Count int64 `bson:"count"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocs, err)
	}

	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		key := "null"
		if row.Key != nil {
			key = fmt.Sprint(row.Key)
		}
		result[key] += row.Count
	}
	return result, nil
}
