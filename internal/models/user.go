package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account roles. Role is an authorization tag consumed by middleware,
// not by the status machine.
const (
	RolePersonal = "personal"
	RoleCompany  = "company"
	RoleAdmin    = "admin"
)

// User struct matches the document in MongoDB.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email       string             `bson:"email" json:"email"`
	Password    string             `bson:"password" json:"-"`
	Role        string             `bson:"role" json:"role"`
	DisplayName string             `bson:"displayName" json:"displayName"`
	RFC         string             `bson:"rfc,omitempty" json:"rfc,omitempty"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
