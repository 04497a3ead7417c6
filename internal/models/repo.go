package models

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

var Validate = validator.New()

const (
	UsersColName    = "users"
	OtpsColName     = "otps"
	ProfilesColName = "profiles"
)

// Finders return (nil, nil) when nothing matches; mapping absence onto the
// error taxonomy is the service's job.

type UserRepo interface {
	ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error)
	FindByChannel(ctx context.Context, channel, identifier string) (*User, error)
	CreateUser(ctx context.Context, user *User) error
	SetToken(ctx context.Context, userID, token string) error
	SetUserType(ctx context.Context, userID string, userType []string) error
}

type OtpRepo interface {
	UpsertOtp(ctx context.Context, record *OtpRecord) error
	FindOtp(ctx context.Context, identifier string) (*OtpRecord, error)
	DeleteOtp(ctx context.Context, identifier string) error
}

type ProfileRepo interface {
	CreateProfile(ctx context.Context, profile *Profile) error
	GetProfileByUserID(ctx context.Context, userID string) (*Profile, error)
}

type MongodbRepo struct {
	mongodbClient *mongo.Client
	dbName        string
}

func MongodbNewRepo(mongodbClient *mongo.Client, dbName string) *MongodbRepo {
	return &MongodbRepo{
		mongodbClient: mongodbClient,
		dbName:        dbName,
	}
}
