package services

import (
	"strconv"

	"farm_manager/internal/events"

	"go.uber.org/zap"
)

// publish emits a domain event. Publishing is best effort: the write it
// describes is already committed, so a failure is only logged.
func publish(pub events.Publisher, log *zap.Logger, eventType string, id uint, payload interface{}) {
	if pub == nil {
		return
	}
	if err := pub.Publish(eventType, strconv.FormatUint(uint64(id), 10), payload); err != nil {
		log.Warn("Failed to publish event",
			zap.String("type", eventType),
			zap.Uint("id", id),
			zap.Error(err))
	}
}
