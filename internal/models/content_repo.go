package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (mdb *MongodbRepo) GetContent(ctx context.Context) (*Content, error) {
	col, err := mdb.GetCollection(ctx, DatabaseName, ContentColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var content Content
	err = col.FindOne(ctx, bson.M{"_id": ContentID}).Decode(&content)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding content: %v", err)
	}

	return &content, nil
}

// ReplaceContent swaps the singleton in place with an upsert keyed by the
// fixed document id, so there is no window in which no content exists.
func (mdb *MongodbRepo) ReplaceContent(ctx context.Context, content *Content) error {
	col, err := mdb.GetCollection(ctx, DatabaseName, ContentColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	content.ID = ContentID
	opts := options.Replace().SetUpsert(true)
	if _, err := col.ReplaceOne(ctx, bson.M{"_id": ContentID}, content, opts); err != nil {
		return fmt.Errorf("error replacing content: %v", err)
	}
	return nil
}
