package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"playtube.com/cmd/api/handlers/common"
	"playtube.com/cmd/playlist/service"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/jwt"
)

type PlaylistParam struct {
	Name        string `form:"name" json:"name"`
	Description string `form:"description" json:"description"`
}

func CreatePlaylist(ctx context.Context, c *app.RequestContext) {
	var param PlaylistParam
	if err := c.BindAndValidate(&param); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	viewerId, _ := jwt.CurrentUserId(c)
	playlist, err := service.NewPlaylistService(ctx).Create(ctx, viewerId, param.Name, param.Description)
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendResponse(c, errno.Success, playlist)
}

func UserPlaylists(ctx context.Context, c *app.RequestContext) {
	userId, err := common.PathInt64(c, "userId")
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	summaries, err := service.NewPlaylistService(ctx).UserPlaylists(ctx, userId)
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendResponse(c, errno.Success, summaries)
}

func PlaylistDetail(ctx context.Context, c *app.RequestContext) {
	playlistId, err := common.PathInt64(c, "id")
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	detail, err := service.NewPlaylistService(ctx).Detail(ctx, playlistId)
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendResponse(c, errno.Success, detail)
}

func UpdatePlaylist(ctx context.Context, c *app.RequestContext) {
	playlistId, err := common.PathInt64(c, "id")
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	var param PlaylistParam
	if err := c.BindAndValidate(&param); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	viewerId, _ := jwt.CurrentUserId(c)
	playlist, err := service.NewPlaylistService(ctx).Update(ctx, viewerId, playlistId, param.Name, param.Description)
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendResponse(c, errno.Success, playlist)
}

func DeletePlaylist(ctx context.Context, c *app.RequestContext) {
	playlistId, err := common.PathInt64(c, "id")
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	viewerId, _ := jwt.CurrentUserId(c)
	if err := service.NewPlaylistService(ctx).Delete(ctx, viewerId, playlistId); err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendMessage(c, "Playlist deleted successfully")
}

func membershipIds(c *app.RequestContext) (videoId, playlistId int64, err error) {
	videoId, err = common.PathInt64(c, "videoId")
	if err != nil {
		return 0, 0, err
	}
	playlistId, err = common.PathInt64(c, "playlistId")
	if err != nil {
		return 0, 0, err
	}
	return videoId, playlistId, nil
}

func AddVideoToPlaylist(ctx context.Context, c *app.RequestContext) {
	videoId, playlistId, err := membershipIds(c)
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	viewerId, _ := jwt.CurrentUserId(c)
	if err := service.NewPlaylistService(ctx).AddVideo(ctx, viewerId, playlistId, videoId); err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendMessage(c, "Video added to playlist")
}

func RemoveVideoFromPlaylist(ctx context.Context, c *app.RequestContext) {
	videoId, playlistId, err := membershipIds(c)
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	viewerId, _ := jwt.CurrentUserId(c)
	if err := service.NewPlaylistService(ctx).RemoveVideo(ctx, viewerId, playlistId, videoId); err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendMessage(c, "Video removed from playlist")
}

// SavePlaylists tells the save dialog which of the viewer's playlists
// already hold the video.
func SavePlaylists(ctx context.Context, c *app.RequestContext) {
	videoId, err := common.PathInt64(c, "videoId")
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	viewerId, _ := jwt.CurrentUserId(c)
	playlists, err := service.NewPlaylistService(ctx).ContainingVideo(ctx, viewerId, videoId)
	if err != nil {
		common.SendResponse(c, err, nil)
		return
	}
	common.SendResponse(c, errno.Success, playlists)
}
