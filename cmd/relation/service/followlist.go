package service

import (
	"context"

	"playtube.com/cmd/model"
	"playtube.com/cmd/relation/dal/db"
	userdb "playtube.com/cmd/user/dal/db"
	"playtube.com/pkg/errno"
)

// ChannelCard is one row in a subscriber or subscription listing: the user's
// public projection, their own subscriber count, and whether the viewer
// currently subscribes to them.
type ChannelCard struct {
	model.UserBrief
	SubscribersCount int64 `json:"subscribers_count"`
	IsSubscribed     bool  `json:"is_subscribed"`
}

func (s *RelationService) buildCards(ctx context.Context, viewerId int64, userIds []int64) ([]*ChannelCard, error) {
	briefs, err := userdb.GetUserBriefs(ctx, userIds)
	if err != nil {
		return nil, err
	}
	counts, err := db.CountSubscribersBatch(ctx, userIds)
	if err != nil {
		return nil, err
	}
	viewerFlags, err := db.SubscribedAmong(ctx, viewerId, userIds)
	if err != nil {
		return nil, err
	}

	cards := make([]*ChannelCard, 0, len(userIds))
	for _, userId := range userIds {
		brief, ok := briefs[userId]
		if !ok {
			continue
		}
		cards = append(cards, &ChannelCard{
			UserBrief:        brief,
			SubscribersCount: counts[userId],
			IsSubscribed:     viewerFlags[userId],
		})
	}
	return cards, nil
}

// Subscribers lists who subscribes to the channel, newest first.
func (s *RelationService) Subscribers(ctx context.Context, viewerId, channelId int64) ([]*ChannelCard, error) {
	channel, err := userdb.GetUserById(ctx, channelId)
	if err != nil {
		return nil, err
	}
	if channel == nil {
		return nil, errno.NotFoundErr.WithMessage("Channel does not exist")
	}
	subscriberIds, err := db.ListSubscriberIds(ctx, channelId)
	if err != nil {
		return nil, err
	}
	return s.buildCards(ctx, viewerId, subscriberIds)
}

// SubscribedChannels lists the channels the user subscribes to.
func (s *RelationService) SubscribedChannels(ctx context.Context, viewerId, subscriberId int64) ([]*ChannelCard, error) {
	subscriber, err := userdb.GetUserById(ctx, subscriberId)
	if err != nil {
		return nil, err
	}
	if subscriber == nil {
		return nil, errno.NotFoundErr.WithMessage("User does not exist")
	}
	channelIds, err := db.ListSubscribedChannelIds(ctx, subscriberId)
	if err != nil {
		return nil, err
	}
	return s.buildCards(ctx, viewerId, channelIds)
}
