package models

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var Validate = validator.New()

const DatabaseName = "espranza"

type MongodbRepo struct {
	mongodbClient *mongo.Client
}

func MongodbNewRepo(mongodbClient *mongo.Client) *MongodbRepo {
	return &MongodbRepo{
		mongodbClient: mongodbClient,
	}
}

func (mdb *MongodbRepo) GetCollection(ctx context.Context, dbName, colName string) (*mongo.Collection, error) {
	if mdb.mongodbClient == nil {
		return nil, fmt.Errorf("mongodb client is not initialised")
	}
	return mdb.mongodbClient.Database(dbName).Collection(colName), nil
}

// replaceAll swaps the full contents of a collection inside a session
// transaction so readers never observe the empty window between the
// delete and the insert.
func (mdb *MongodbRepo) replaceAll(ctx context.Context, dbName, colName string, docs []interface{}) error {
	col, err := mdb.GetCollection(ctx, dbName, colName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	session, err := mdb.mongodbClient.StartSession()
	if err != nil {
		return fmt.Errorf("error starting session: %v", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := col.DeleteMany(sc, bson.M{}); err != nil {
			return nil, fmt.Errorf("error clearing collection: %v", err)
		}
		if len(docs) > 0 {
			if _, err := col.InsertMany(sc, docs); err != nil {
				return nil, fmt.Errorf("error inserting documents: %v", err)
			}
		}
		return nil, nil
	})
	return err
}
