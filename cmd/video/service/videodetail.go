package service

import (
	"context"

	interaction "playtube.com/cmd/interaction/service"
	"playtube.com/cmd/model"
	userdb "playtube.com/cmd/user/dal/db"
	"playtube.com/cmd/video/dal/db"
	"playtube.com/pkg/constants"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/guard"
)

type VideoDetailService struct {
	ctx context.Context
}

func NewVideoDetailService(ctx context.Context) *VideoDetailService {
	return &VideoDetailService{ctx: ctx}
}

type VideoDetail struct {
	*model.Video
	Owner model.UserBrief `json:"owner"`
	interaction.Engagement
	IsOwner bool `json:"is_owner"`
}

// Detail returns one video with its engagement summary. Unpublished videos
// are visible to their owner only.
func (s *VideoDetailService) Detail(ctx context.Context, viewerId, videoId int64) (*VideoDetail, error) {
	video, err := db.FindVideo(ctx, videoId)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, errno.NotFoundErr.WithMessage("Video is not found")
	}
	isOwner := guard.IsOwner(video.UserId, viewerId)
	if !video.IsPublished && !isOwner {
		return nil, errno.NotFoundErr.WithMessage("Video is not found")
	}

	summary, err := interaction.Summary(ctx, constants.TargetVideo, videoId, viewerId)
	if err != nil {
		return nil, err
	}
	briefs, err := userdb.GetUserBriefs(ctx, []int64{video.UserId})
	if err != nil {
		return nil, err
	}

	return &VideoDetail{
		Video:      video,
		Owner:      briefs[video.UserId],
		Engagement: summary,
		IsOwner:    isOwner,
	}, nil
}
