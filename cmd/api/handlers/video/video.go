package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"playtube.com/cmd/api/handlers/common"
	"playtube.com/cmd/video/service"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/jwt"
	"playtube.com/pkg/mq"
)

// Producer carries view events to the queue; main wires it before the server
// starts serving.
var Producer *mq.Producer

type ListVideosParam struct {
	common.PageParam
	Query  string `query:"query"`
	SortBy string `query:"sortBy"`
	Order  string `query:"sortType"`
	UserId int64  `query:"userId"`
}

type PublishVideoParam struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

type UpdateVideoParam struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

func ListVideos(ctx context.Context, c *app.RequestContext) {
	var param ListVideosParam
	if err := c.BindAndValidate(&param); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	list, err := service.NewVideoListService(ctx).List(ctx, &service.ListVideosParam{
		UserId:   param.UserId,
		Query:    param.Query,
		SortBy:   param.SortBy,
		Order:    param.Order,
		PageNum:  param.PageNum,
		PageSize: param.PageSize,
	})
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendResponse(c, errno.Success, list)
}

// ListVideosByOption is the sort-only feed: no query, just ordering.
func ListVideosByOption(ctx context.Context, c *app.RequestContext) {
	var param ListVideosParam
	if err := c.BindAndValidate(&param); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	list, err := service.NewVideoListService(ctx).List(ctx, &service.ListVideosParam{
		SortBy:   param.SortBy,
		Order:    param.Order,
		PageNum:  param.PageNum,
		PageSize: param.PageSize,
	})
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendResponse(c, errno.Success, list)
}

func PublishVideo(ctx context.Context, c *app.RequestContext) {
	var param PublishVideoParam
	if err := c.BindAndValidate(&param); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	videoPath, err := common.SaveUpload(c, "video_file")
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	if videoPath == "" {
		common.SendResponse(c, errno.RequestErr.WithMessage("Video file is required"), nil)
		return
	}
	thumbnailPath, err := common.SaveUpload(c, "thumbnail")
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}

	viewerId, _ := jwt.CurrentUserId(c)
	video, err := service.NewVideoUploadService(ctx).Publish(ctx, &service.PublishVideoParam{
		UserId:        viewerId,
		Title:         param.Title,
		Description:   param.Description,
		VideoPath:     videoPath,
		ThumbnailPath: thumbnailPath,
	})
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendResponse(c, errno.Success, video)
}

func VideoDetail(ctx context.Context, c *app.RequestContext) {
	videoId, err := common.PathInt64(c, "id")
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	viewerId, _ := jwt.CurrentUserId(c)
	detail, err := service.NewVideoDetailService(ctx).Detail(ctx, viewerId, videoId)
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendResponse(c, errno.Success, detail)
}

func UpdateVideo(ctx context.Context, c *app.RequestContext) {
	videoId, err := common.PathInt64(c, "id")
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	var param UpdateVideoParam
	if err := c.BindAndValidate(&param); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	thumbnailPath, err := common.SaveUpload(c, "thumbnail")
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}

	viewerId, _ := jwt.CurrentUserId(c)
	video, err := service.NewVideoManageService(ctx).Update(ctx, &service.UpdateVideoParam{
		ViewerId:      viewerId,
		VideoId:       videoId,
		Title:         param.Title,
		Description:   param.Description,
		ThumbnailPath: thumbnailPath,
	})
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendResponse(c, errno.Success, video)
}

func DeleteVideo(ctx context.Context, c *app.RequestContext) {
	videoId, err := common.PathInt64(c, "id")
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	viewerId, _ := jwt.CurrentUserId(c)
	if err := service.NewVideoManageService(ctx).Delete(ctx, viewerId, videoId); err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendMessage(c, "Video deleted successfully")
}

func TogglePublish(ctx context.Context, c *app.RequestContext) {
	videoId, err := common.PathInt64(c, "id")
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	viewerId, _ := jwt.CurrentUserId(c)
	isPublished, err := service.NewVideoManageService(ctx).TogglePublish(ctx, viewerId, videoId)
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendResponse(c, errno.Success, map[string]bool{"is_published": isPublished})
}

// VisitVideo records a view: the counter moves and the video lands at the
// front of the viewer's watch history.
func VisitVideo(ctx context.Context, c *app.RequestContext) {
	videoId, err := common.PathInt64(c, "id")
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	viewerId, _ := jwt.CurrentUserId(c)
	count, err := service.NewVideoVisitService(ctx, Producer).Visit(ctx, viewerId, videoId)
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendResponse(c, errno.Success, map[string]int64{"visit_count": count})
}
