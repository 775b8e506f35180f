package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"playtube.com/pkg/mq"
)

// ApplyLikeEvent fans a completed like out to the owner's notification log.
// Dislikes and retractions are consumed silently.
func ApplyLikeEvent(ctx context.Context, event *mq.LikeEvent) error {
	if !event.Liked {
		return nil
	}
	logrus.WithFields(logrus.Fields{
		"event_id":    event.EventID,
		"owner_id":    event.OwnerId,
		"user_id":     event.UserId,
		"target_kind": event.TargetKind,
		"target_id":   event.TargetId,
	}).Info("like notification")
	return nil
}
