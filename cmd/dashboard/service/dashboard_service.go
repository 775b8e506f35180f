package service

import (
	"context"

	interactiondb "playtube.com/cmd/interaction/dal/db"
	"playtube.com/cmd/model"
	relationdb "playtube.com/cmd/relation/dal/db"
	videodb "playtube.com/cmd/video/dal/db"
	"playtube.com/pkg/constants"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/utils"
)

type DashboardService struct {
	ctx context.Context
}

func NewDashboardService(ctx context.Context) *DashboardService {
	return &DashboardService{ctx: ctx}
}

// ChannelStats are the channel-wide totals on the studio page. Drafts count
// toward videos and views.
type ChannelStats struct {
	TotalVideos      int64 `json:"total_videos"`
	TotalViews       int64 `json:"total_views"`
	TotalSubscribers int64 `json:"total_subscribers"`
	TotalLikes       int64 `json:"total_likes"`
}

func (s *DashboardService) Stats(ctx context.Context, viewerId int64) (*ChannelStats, error) {
	if viewerId == 0 {
		return nil, errno.TokenInvailedErr
	}

	totalVideos, totalViews, err := videodb.OwnerVideoStats(ctx, viewerId)
	if err != nil {
		return nil, err
	}
	totalSubscribers, err := relationdb.CountSubscribers(ctx, viewerId)
	if err != nil {
		return nil, err
	}
	totalLikes, err := interactiondb.CountVideoLikes(ctx, viewerId)
	if err != nil {
		return nil, err
	}

	return &ChannelStats{
		TotalVideos:      totalVideos,
		TotalViews:       totalViews,
		TotalSubscribers: totalSubscribers,
		TotalLikes:       totalLikes,
	}, nil
}

// ChannelVideo is a studio row: the video plus its like split.
type ChannelVideo struct {
	*model.Video
	LikesCount    int64 `json:"likes_count"`
	DislikesCount int64 `json:"dislikes_count"`
}

type ChannelVideoList struct {
	Videos   []*ChannelVideo `json:"videos"`
	PageInfo utils.PageInfo  `json:"paging_info"`
}

// Videos pages over the caller's own uploads, drafts included.
func (s *DashboardService) Videos(ctx context.Context, viewerId, pageNum, pageSize int64) (*ChannelVideoList, error) {
	if viewerId == 0 {
		return nil, errno.TokenInvailedErr
	}

	pageNum, pageSize = utils.NormalizePage(pageNum, pageSize)
	videos, total, err := videodb.ListOwnerVideos(ctx, viewerId, pageNum, pageSize)
	if err != nil {
		return nil, err
	}

	videoIds := make([]int64, 0, len(videos))
	for _, video := range videos {
		videoIds = append(videoIds, video.VideoId)
	}
	counts, err := interactiondb.CountEngagement(ctx, constants.TargetVideo, videoIds)
	if err != nil {
		return nil, err
	}

	rows := make([]*ChannelVideo, 0, len(videos))
	for _, video := range videos {
		row := &ChannelVideo{Video: video}
		if count, ok := counts[video.VideoId]; ok {
			row.LikesCount = count.Likes
			row.DislikesCount = count.Dislikes
		}
		rows = append(rows, row)
	}
	return &ChannelVideoList{Videos: rows, PageInfo: utils.NewPageInfo(pageNum, pageSize, total)}, nil
}
