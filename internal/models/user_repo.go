package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (mdb *MongodbRepo) GetCollection(ctx context.Context, colName string) (*mongo.Collection, error) {
	if mdb.mongodbClient == nil {
		return nil, fmt.Errorf("mongodb client is not initialized")
	}
	return mdb.mongodbClient.Database(mdb.dbName).Collection(colName), nil
}

func (mdb *MongodbRepo) ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error) {
	col, err := mdb.GetCollection(ctx, UsersColName)
	if err != nil {
		return false, fmt.Errorf("error getting collection: %v", err)
	}

	filter := bson.M{"$or": bson.A{
		bson.M{"email": email},
		bson.M{"phone": phone},
	}}

	count, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("error counting users: %v", err)
	}
	return count > 0, nil
}

func (mdb *MongodbRepo) FindByChannel(ctx context.Context, channel, identifier string) (*User, error) {
	col, err := mdb.GetCollection(ctx, UsersColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	field := "email"
	if channel == ChannelPhone {
		field = "phone"
	}

	var user User
	err = col.FindOne(ctx, bson.M{field: identifier}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding user: %v", err)
	}
	return &user, nil
}

func (mdb *MongodbRepo) CreateUser(ctx context.Context, user *User) error {
	col, err := mdb.GetCollection(ctx, UsersColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	if _, err := col.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("error inserting user: %v", err)
	}
	return nil
}

func (mdb *MongodbRepo) SetToken(ctx context.Context, userID, token string) error {
	col, err := mdb.GetCollection(ctx, UsersColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	update := bson.M{"$set": bson.M{"token": token}}
	if _, err := col.UpdateOne(ctx, bson.M{"id": userID}, update); err != nil {
		return fmt.Errorf("error updating user token: %v", err)
	}
	return nil
}

// SetUserType overwrites the user's declared profile types wholesale. A
// missing userID matches nothing and the update silently does nothing.
func (mdb *MongodbRepo) SetUserType(ctx context.Context, userID string, userType []string) error {
	col, err := mdb.GetCollection(ctx, UsersColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	update := bson.M{"$set": bson.M{"userType": userType}}
	if _, err := col.UpdateOne(ctx, bson.M{"id": userID}, update); err != nil {
		return fmt.Errorf("error updating user type: %v", err)
	}
	return nil
}
