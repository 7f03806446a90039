package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/internhub/internship-service/internal/events"
)

// publish never fails the calling operation; the write has already committed.
func publish(ctx context.Context, dispatcher events.Dispatcher, logger *zap.Logger, event events.Event) {
	if dispatcher == nil {
		return
	}
	if err := dispatcher.Publish(ctx, event); err != nil {
		logger.Warn("event handler failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}
