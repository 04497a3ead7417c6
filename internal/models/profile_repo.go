package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (mdb *MongodbRepo) CreateProfile(ctx context.Context, profile *Profile) error {
	col, err := mdb.GetCollection(ctx, ProfilesColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	if _, err := col.InsertOne(ctx, profile); err != nil {
		return fmt.Errorf("error inserting profile: %v", err)
	}
	return nil
}

// GetProfileByUserID returns a single matching document. Repeated selections
// accumulate documents for the same userId; which one a point lookup returns
// is left to the store, matching the accumulate-don't-update lifecycle.
func (mdb *MongodbRepo) GetProfileByUserID(ctx context.Context, userID string) (*Profile, error) {
	col, err := mdb.GetCollection(ctx, ProfilesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var profile Profile
	err = col.FindOne(ctx, bson.M{"userId": userID}).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding profile: %v", err)
	}
	return &profile, nil
}
