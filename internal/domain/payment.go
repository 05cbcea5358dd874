package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type Payment struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Price          float64            `bson:"price" json:"price"`
	TransactionID  string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	BookingID      string             `bson:"bookingId,omitempty" json:"bookingId,omitempty"`
	ProductID      string             `bson:"productId,omitempty" json:"productId,omitempty"`
	UserEmail      string             `bson:"userEmail,omitempty" json:"userEmail,omitempty"`
	PaymentCreated int64              `bson:"paymentCreated" json:"paymentCreated"`
}
