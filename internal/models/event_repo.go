package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

func (mdb *MongodbRepo) ListEvents(ctx context.Context) ([]Event, error) {
	col, err := mdb.GetCollection(ctx, DatabaseName, EventColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error finding events: %v", err)
	}
	defer cursor.Close(ctx)

	events := []Event{}
	for cursor.Next(ctx) {
		var event Event
		if err := cursor.Decode(&event); err != nil {
			return nil, fmt.Errorf("error decoding event: %v", err)
		}
		events = append(events, event)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return events, nil
}

func (mdb *MongodbRepo) ReplaceEvents(ctx context.Context, events []Event) error {
	docs := make([]interface{}, len(events))
	for i := range events {
		docs[i] = events[i]
	}
	return mdb.replaceAll(ctx, DatabaseName, EventColName, docs)
}
