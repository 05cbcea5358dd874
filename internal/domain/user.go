package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleUser   = "user"
	RoleAdmin  = "admin"
	RoleSeller = "seller"
)

type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Role        string             `bson:"role" json:"role"`
	IsVerified  bool               `bson:"isVerified" json:"isVerified"`
	UserCreated int64              `bson:"userCreated" json:"userCreated"`
}

// IsValidRole reports whether role is one of the three recognised roles.
func IsValidRole(role string) bool {
	switch role {
	case RoleUser, RoleAdmin, RoleSeller:
		return true
	}
	return false
}
