package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"playtube.com/cmd/api/handlers/common"
	"playtube.com/cmd/relation/service"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/jwt"
)

func ToggleSubscription(ctx context.Context, c *app.RequestContext) {
	channelId, err := common.PathInt64(c, "channelId")
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	viewerId, _ := jwt.CurrentUserId(c)
	isSubscribed, err := service.NewRelationService(ctx).ToggleSubscription(ctx, viewerId, channelId)
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendResponse(c, errno.Success, map[string]bool{"is_subscribed": isSubscribed})
}

func Subscribers(ctx context.Context, c *app.RequestContext) {
	channelId, err := common.PathInt64(c, "channelId")
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	viewerId, _ := jwt.CurrentUserId(c)
	cards, err := service.NewRelationService(ctx).Subscribers(ctx, viewerId, channelId)
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendResponse(c, errno.Success, cards)
}

func SubscribedChannels(ctx context.Context, c *app.RequestContext) {
	subscriberId, err := common.PathInt64(c, "subscriberId")
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	viewerId, _ := jwt.CurrentUserId(c)
	cards, err := service.NewRelationService(ctx).SubscribedChannels(ctx, viewerId, subscriberId)
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendResponse(c, errno.Success, cards)
}
