package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type Booking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ProductID       string             `bson:"productId" json:"productId"`
	ProductName     string             `bson:"productName,omitempty" json:"productName,omitempty"`
	ProductImage    string             `bson:"productImage,omitempty" json:"productImage,omitempty"`
	Price           float64            `bson:"price,omitempty" json:"price,omitempty"`
	UserName        string             `bson:"userName,omitempty" json:"userName,omitempty"`
	UserEmail       string             `bson:"userEmail" json:"userEmail"`
	Phone           string             `bson:"phone,omitempty" json:"phone,omitempty"`
	MeetingLocation string             `bson:"meetingLocation,omitempty" json:"meetingLocation,omitempty"`
	SellerEmail     string             `bson:"sellerEmail,omitempty" json:"sellerEmail,omitempty"`
	BookingCreated  int64              `bson:"bookingCreated" json:"bookingCreated"`
}
