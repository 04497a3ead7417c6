package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OtpRecord is an ephemeral verification code keyed by the email or phone it
// was issued for. One live record per identifier: a new request overwrites the
// prior code. CreatedAt is the issuance time; the 10-minute expiry window it
// was meant to bound is not enforced anywhere yet.
type OtpRecord struct {
	ObjectID   primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Identifier string             `bson:"identifier" json:"identifier"`
	Otp        string             `bson:"otp" json:"otp"`
	Phone      string             `bson:"phone,omitempty" json:"phone,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
