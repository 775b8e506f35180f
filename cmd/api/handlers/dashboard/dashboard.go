package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"playtube.com/cmd/api/handlers/common"
	"playtube.com/cmd/dashboard/service"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/jwt"
)

func ChannelStats(ctx context.Context, c *app.RequestContext) {
	viewerId, _ := jwt.CurrentUserId(c)
	stats, err := service.NewDashboardService(ctx).Stats(ctx, viewerId)
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendResponse(c, errno.Success, stats)
}

func ChannelVideos(ctx context.Context, c *app.RequestContext) {
	var param common.PageParam
	if err := c.BindAndValidate(&param); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	viewerId, _ := jwt.CurrentUserId(c)
	list, err := service.NewDashboardService(ctx).Videos(ctx, viewerId, param.PageNum, param.PageSize)
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendResponse(c, errno.Success, list)
}
