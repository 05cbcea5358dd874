package dto

type KafkaMessage struct {
	EventType string      `json:"eventType"`
	Data      interface{} `json:"data"`
}
