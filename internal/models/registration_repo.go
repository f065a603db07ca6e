package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (mdb *MongodbRepo) CreateRegistration(ctx context.Context, reg *Registration) (*Registration, error) {
	col, err := mdb.GetCollection(ctx, DatabaseName, RegistrationColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.InsertOne(ctx, reg)
	if err != nil {
		return nil, fmt.Errorf("error inserting registration: %v", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		reg.ID = oid
	}

	return reg, nil
}

func (mdb *MongodbRepo) ListRegistrations(ctx context.Context) ([]Registration, error) {
	col, err := mdb.GetCollection(ctx, DatabaseName, RegistrationColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding registrations: %v", err)
	}
	defer cursor.Close(ctx)

	regs := []Registration{}
	for cursor.Next(ctx) {
		var reg Registration
		if err := cursor.Decode(&reg); err != nil {
			return nil, fmt.Errorf("error decoding registration: %v", err)
		}
		regs = append(regs, reg)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return regs, nil
}

func (mdb *MongodbRepo) SetRegistrationActive(ctx context.Context, id primitive.ObjectID, active bool) (*Registration, error) {
	col, err := mdb.GetCollection(ctx, DatabaseName, RegistrationColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"isActive": active}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Registration
	err = col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrRegistrationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error updating registration: %v", err)
	}

	return &updated, nil
}
