package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type Product struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ProductName        string             `bson:"productName" json:"productName"`
	ProductCategory    string             `bson:"productCategory" json:"productCategory"`
	ProductImage       string             `bson:"productImage,omitempty" json:"productImage,omitempty"`
	ProductDescription string             `bson:"productDescription,omitempty" json:"productDescription,omitempty"`
	Condition          string             `bson:"condition,omitempty" json:"condition,omitempty"`
	Location           string             `bson:"location,omitempty" json:"location,omitempty"`
	OriginalPrice      float64            `bson:"originalPrice" json:"originalPrice"`
	Price              float64            `bson:"price" json:"price"`
	SaveAmount         float64            `bson:"saveAmount" json:"saveAmount"`
	YearsOfUse         float64            `bson:"yearsOfUse,omitempty" json:"yearsOfUse,omitempty"`
	SellerName         string             `bson:"sellerName,omitempty" json:"sellerName,omitempty"`
	SellerEmail        string             `bson:"sellerEmail" json:"sellerEmail"`
	SellerPhone        string             `bson:"sellerPhone,omitempty" json:"sellerPhone,omitempty"`
	IsAdvertised       bool               `bson:"isAdvertised" json:"isAdvertised"`
	CreatedAdvertised  int64              `bson:"createdAdvertised,omitempty" json:"createdAdvertised,omitempty"`
	ProductCreated     int64              `bson:"productCreated" json:"productCreated"`
}
