package service

import (
	"context"

	"github.com/alimikegami/bdseller-service/internal/dto"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func insertResponse(id primitive.ObjectID) dto.InsertResponse {
	return dto.InsertResponse{Acknowledged: true, InsertedID: id.Hex()}
}

// publishEvent runs after the store write has succeeded, so a broker failure
// is logged rather than returned to the caller.
func publishEvent(ctx context.Context, publisher EventPublisher, key string, eventType string, data interface{}) {
	err := publisher.Publish(ctx, key, dto.KafkaMessage{
		EventType: eventType,
		Data:      data,
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publishEvent").Str("event_type", eventType).Msg("")
	}
}
