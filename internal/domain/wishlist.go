package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// WishList is one saved product of one user. ProductID is not checked
// against the products collection and duplicates are allowed.
type WishList struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ProductID       string             `bson:"productId" json:"productId"`
	ProductName     string             `bson:"productName,omitempty" json:"productName,omitempty"`
	ProductImage    string             `bson:"productImage,omitempty" json:"productImage,omitempty"`
	Price           float64            `bson:"price,omitempty" json:"price,omitempty"`
	UserName        string             `bson:"userName,omitempty" json:"userName,omitempty"`
	UserEmail       string             `bson:"userEmail" json:"userEmail"`
	WishListCreated int64              `bson:"wishListCreated" json:"wishListCreated"`
}
