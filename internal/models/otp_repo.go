package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (mdb *MongodbRepo) UpsertOtp(ctx context.Context, record *OtpRecord) error {
	col, err := mdb.GetCollection(ctx, OtpsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	filter := bson.M{"identifier": record.Identifier}
	set := bson.M{
		"otp":       record.Otp,
		"createdAt": record.CreatedAt,
	}
	if record.Phone != "" {
		set["phone"] = record.Phone
	}

	opts := options.Update().SetUpsert(true)
	if _, err := col.UpdateOne(ctx, filter, bson.M{"$set": set}, opts); err != nil {
		return fmt.Errorf("error upserting otp: %v", err)
	}
	return nil
}

func (mdb *MongodbRepo) FindOtp(ctx context.Context, identifier string) (*OtpRecord, error) {
	col, err := mdb.GetCollection(ctx, OtpsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var record OtpRecord
	err = col.FindOne(ctx, bson.M{"identifier": identifier}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding otp: %v", err)
	}
	return &record, nil
}

// Delete is idempotent: removing an absent record is not an error.
func (mdb *MongodbRepo) DeleteOtp(ctx context.Context, identifier string) error {
	col, err := mdb.GetCollection(ctx, OtpsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	if _, err := col.DeleteOne(ctx, bson.M{"identifier": identifier}); err != nil {
		return fmt.Errorf("error deleting otp: %v", err)
	}
	return nil
}
