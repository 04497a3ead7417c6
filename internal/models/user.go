package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Channel types accepted by the OTP and login endpoints.
const (
	ChannelEmail = "email"
	ChannelPhone = "phone"
)

type User struct {
	ObjectID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID               string             `bson:"id" json:"id"`
	FullName         string             `bson:"fullName" json:"fullName"`
	Phone            string             `bson:"phone" json:"phone"`
	Email            string             `bson:"email" json:"email"`
	Password         string             `bson:"password" json:"-"` // bcrypt hash, never plaintext
	ReferenceID      string             `bson:"referenceId,omitempty" json:"referenceId,omitempty"`
	ProfileCompleted bool               `bson:"profileCompleted" json:"profileCompleted"`
	UserType         []string           `bson:"userType" json:"userType"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	Token            string             `bson:"token,omitempty" json:"token,omitempty"`
}

// PublicUser is the view of a User returned from login. It never carries
// the password hash.
type PublicUser struct {
	ID               string   `json:"id"`
	FullName         string   `json:"fullName"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	ProfileCompleted bool     `json:"profileCompleted"`
	UserType         []string `json:"userType"`
	Token            string   `json:"token"`
}

func (u *User) Public() *PublicUser {
	userType := u.UserType
	if userType == nil {
		userType = []string{}
	}
	return &PublicUser{
		ID:               u.ID,
		FullName:         u.FullName,
		Email:            u.Email,
		Phone:            u.Phone,
		ProfileCompleted: u.ProfileCompleted,
		UserType:         userType,
		Token:            u.Token,
	}
}
