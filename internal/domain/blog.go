package domain

import "go.mongodb.org/mongo-driver/bson"

// Blog documents have no fixed schema and are served as stored.
type Blog bson.M
