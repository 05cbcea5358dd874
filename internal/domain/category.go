package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type Category struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	CategoryName    string             `bson:"categoryName" json:"categoryName"`
	CategoryImage   string             `bson:"categoryImage,omitempty" json:"categoryImage,omitempty"`
	CategoryCreated int64              `bson:"categoryCreated" json:"categoryCreated"`
}
