package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"playtube.com/cmd/api/handlers/common"
	"playtube.com/cmd/interaction/service"
	"playtube.com/pkg/constants"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/jwt"
	"playtube.com/pkg/mq"
)

// Producer carries like notifications to the queue; main wires it before the
// server starts serving.
var Producer *mq.Producer

type CommentParam struct {
	Content string `form:"content" json:"content"`
}

type ListCommentsParam struct {
	common.PageParam
}

func ListComments(ctx context.Context, c *app.RequestContext) {
	videoId, err := common.PathInt64(c, "videoId")
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	var param ListCommentsParam
	if err := c.BindAndValidate(&param); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	viewerId, _ := jwt.CurrentUserId(c)
	list, err := service.NewCommentService(ctx).ListComments(ctx, viewerId, videoId, param.PageNum, param.PageSize)
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendResponse(c, errno.Success, list)
}

func AddComment(ctx context.Context, c *app.RequestContext) {
	videoId, err := common.PathInt64(c, "videoId")
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	var param CommentParam
	if err := c.BindAndValidate(&param); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	viewerId, _ := jwt.CurrentUserId(c)
	comment, err := service.NewCommentService(ctx).AddComment(ctx, viewerId, videoId, param.Content)
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendResponse(c, errno.Success, comment)
}

func UpdateComment(ctx context.Context, c *app.RequestContext) {
	commentId, err := common.PathInt64(c, "id")
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	var param CommentParam
	if err := c.BindAndValidate(&param); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	viewerId, _ := jwt.CurrentUserId(c)
	comment, err := service.NewCommentService(ctx).UpdateComment(ctx, viewerId, commentId, param.Content)
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendResponse(c, errno.Success, comment)
}

func DeleteComment(ctx context.Context, c *app.RequestContext) {
	commentId, err := common.PathInt64(c, "id")
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	viewerId, _ := jwt.CurrentUserId(c)
	if err := service.NewCommentService(ctx).DeleteComment(ctx, viewerId, commentId); err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendMessage(c, "Comment deleted successfully")
}

// parseToggleLike admits only the literal true/false values; anything else,
// including an absent parameter, is a client error.
func parseToggleLike(raw string) (bool, error) {
	switch raw {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, errno.RequestErr.WithMessage("Invalid query string")
}

// toggleLike is the shared body behind the three like routes; kind selects
// the target table slice.
func toggleLike(ctx context.Context, c *app.RequestContext, kind string) {
	targetId, err := common.PathInt64(c, "id")
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	wantLike, err := parseToggleLike(c.Query("toggleLike"))
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	viewerId, _ := jwt.CurrentUserId(c)
	result, err := service.NewLikeService(ctx, Producer).Toggle(ctx, viewerId, kind, targetId, wantLike)
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendResponse(c, errno.Success, result)
}

func ToggleVideoLike(ctx context.Context, c *app.RequestContext) {
	toggleLike(ctx, c, constants.TargetVideo)
}

func ToggleCommentLike(ctx context.Context, c *app.RequestContext) {
	toggleLike(ctx, c, constants.TargetComment)
}

func TogglePostLike(ctx context.Context, c *app.RequestContext) {
	toggleLike(ctx, c, constants.TargetPost)
}

func LikedVideos(ctx context.Context, c *app.RequestContext) {
	viewerId, _ := jwt.CurrentUserId(c)
	videos, err := service.NewLikeService(ctx, Producer).LikedVideos(ctx, viewerId)
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendResponse(c, errno.Success, videos)
}
