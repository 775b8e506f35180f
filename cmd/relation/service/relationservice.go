package service

import (
	"context"

	"playtube.com/cmd/model"
	"playtube.com/cmd/relation/dal/db"
	userdb "playtube.com/cmd/user/dal/db"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/utils"
)

type RelationService struct {
	ctx context.Context
}

func NewRelationService(ctx context.Context) *RelationService {
	return &RelationService{ctx: ctx}
}

// ToggleSubscription subscribes or unsubscribes the viewer and reports the
// resulting state. Subscribing to your own channel is not rejected.
func (s *RelationService) ToggleSubscription(ctx context.Context, viewerId, channelId int64) (bool, error) {
	if viewerId == 0 {
		return false, errno.TokenInvailedErr
	}
	channel, err := userdb.GetUserById(ctx, channelId)
	if err != nil {
		return false, err
	}
	if channel == nil {
		return false, errno.NotFoundErr.WithMessage("Channel does not exist")
	}

	existing, err := db.GetSubscription(ctx, viewerId, channelId)
	if err != nil {
		return false, err
	}
	if existing != nil {
		if err := db.DeleteSubscription(ctx, viewerId, channelId); err != nil {
			return false, err
		}
		return false, nil
	}
	err = db.CreateSubscription(ctx, &model.Subscription{
		SubscriptionId: utils.GenID(),
		ChannelId:      channelId,
		SubscriberId:   viewerId,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
