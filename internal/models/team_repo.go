package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

func (mdb *MongodbRepo) ListTeamMembers(ctx context.Context) ([]TeamMember, error) {
	col, err := mdb.GetCollection(ctx, DatabaseName, TeamColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error finding team members: %v", err)
	}
	defer cursor.Close(ctx)

	members := []TeamMember{}
	for cursor.Next(ctx) {
		var member TeamMember
		if err := cursor.Decode(&member); err != nil {
			return nil, fmt.Errorf("error decoding team member: %v", err)
		}
		members = append(members, member)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return members, nil
}

func (mdb *MongodbRepo) ReplaceTeamMembers(ctx context.Context, members []TeamMember) error {
	docs := make([]interface{}, len(members))
	for i := range members {
		docs[i] = members[i]
	}
	return mdb.replaceAll(ctx, DatabaseName, TeamColName, docs)
}
