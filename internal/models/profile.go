package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile is a record of a user's declared service offering. Every
// initial-selection call appends a fresh document; nothing merges or
// deduplicates earlier ones.
type Profile struct {
	ObjectID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID             string             `bson:"userId" json:"userId"`
	ProfileType        []string           `bson:"profileType" json:"profileType"`
	FreelancerServices []string           `bson:"freelancerServices" json:"freelancerServices"`
	BusinessServices   []string           `bson:"businessServices" json:"businessServices"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
}
