package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"playtube.com/cmd/api/handlers/common"
	"playtube.com/cmd/post/service"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/jwt"
)

type PostParam struct {
	Content string `form:"content" json:"content"`
}

func CreatePost(ctx context.Context, c *app.RequestContext) {
	var param PostParam
	if err := c.BindAndValidate(&param); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	viewerId, _ := jwt.CurrentUserId(c)
	post, err := service.NewPostService(ctx).Create(ctx, viewerId, param.Content)
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendResponse(c, errno.Success, post)
}

func UserPosts(ctx context.Context, c *app.RequestContext) {
	userId, err := common.PathInt64(c, "userId")
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	var param common.PageParam
	if err := c.BindAndValidate(&param); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	viewerId, _ := jwt.CurrentUserId(c)
	list, err := service.NewPostService(ctx).UserPosts(ctx, userId, viewerId, param.PageNum, param.PageSize)
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendResponse(c, errno.Success, list)
}

func PostFeed(ctx context.Context, c *app.RequestContext) {
	var param common.PageParam
	if err := c.BindAndValidate(&param); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	viewerId, _ := jwt.CurrentUserId(c)
	list, err := service.NewPostService(ctx).Feed(ctx, viewerId, param.PageNum, param.PageSize)
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendResponse(c, errno.Success, list)
}

func UpdatePost(ctx context.Context, c *app.RequestContext) {
	postId, err := common.PathInt64(c, "id")
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	var param PostParam
	if err := c.BindAndValidate(&param); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	viewerId, _ := jwt.CurrentUserId(c)
	post, err := service.NewPostService(ctx).Update(ctx, viewerId, postId, param.Content)
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendResponse(c, errno.Success, post)
}

func DeletePost(ctx context.Context, c *app.RequestContext) {
	postId, err := common.PathInt64(c, "id")
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	viewerId, _ := jwt.CurrentUserId(c)
	if err := service.NewPostService(ctx).Delete(ctx, viewerId, postId); err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendMessage(c, "Post deleted successfully")
}
