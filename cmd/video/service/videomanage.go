package service

import (
	"context"
	"strings"

	"playtube.com/cmd/model"
	"playtube.com/cmd/video/dal/db"
	"playtube.com/pkg/cache"
	"playtube.com/pkg/constants"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/guard"
	"playtube.com/pkg/oss"
)

type VideoManageService struct {
	ctx context.Context
}

func NewVideoManageService(ctx context.Context) *VideoManageService {
	return &VideoManageService{ctx: ctx}
}

type UpdateVideoParam struct {
	ViewerId      int64
	VideoId       int64
	Title         string
	Description   string
	ThumbnailPath string // optional replacement
}

func (s *VideoManageService) ownedVideo(ctx context.Context, viewerId, videoId int64) (*model.Video, error) {
	video, err := db.FindVideo(ctx, videoId)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, errno.NotFoundErr.WithMessage("Video is not found")
	}
	if err := guard.Mutation(video.UserId, viewerId); err != nil {
		return nil, err
	}
	return video, nil
}

// Update edits title/description and optionally replaces the thumbnail. The
// new thumbnail overwrites the stored object under the same key, so there is
// no stale object to clean up.
func (s *VideoManageService) Update(ctx context.Context, param *UpdateVideoParam) (*model.Video, error) {
	video, err := s.ownedVideo(ctx, param.ViewerId, param.VideoId)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(param.Title)
	description := strings.TrimSpace(param.Description)
	if title == "" || description == "" {
		return nil, errno.RequestErr.WithMessage("Title and Description fields are required")
	}

	updates := map[string]interface{}{
		"title":       title,
		"description": description,
	}
	if param.ThumbnailPath != "" {
		defer cleanupTemp(ctx, param.ThumbnailPath)
		coverUrl, err := oss.UploadThumbnail(ctx, param.ThumbnailPath, video.VideoId)
		if err != nil {
			return nil, errno.UpstreamErr.WithMessage("Error while uploading thumbnail file")
		}
		updates["cover_url"] = coverUrl
		video.CoverUrl = coverUrl
	}
	if err := db.UpdateVideo(ctx, video.VideoId, updates); err != nil {
		return nil, err
	}
	video.Title = title
	video.Description = description
	return video, nil
}

// Delete runs the full cascade (likes, comments, comment likes, playlist
// memberships, watch records) in one transaction, then clears the stored
// media objects best effort.
func (s *VideoManageService) Delete(ctx context.Context, viewerId, videoId int64) error {
	video, err := s.ownedVideo(ctx, viewerId, videoId)
	if err != nil {
		return err
	}
	if err := db.DeleteVideoCascade(ctx, video.VideoId); err != nil {
		return err
	}
	cache.InvalidateEngagementCounts(ctx, constants.TargetVideo, video.VideoId)
	oss.DeleteVideoObjects(ctx, video.VideoId)
	return nil
}

// TogglePublish flips the publish flag and returns the new state.
func (s *VideoManageService) TogglePublish(ctx context.Context, viewerId, videoId int64) (bool, error) {
	video, err := s.ownedVideo(ctx, viewerId, videoId)
	if err != nil {
		return false, err
	}
	next := !video.IsPublished
	if err := db.UpdatePublishStatus(ctx, video.VideoId, next); err != nil {
		return false, err
	}
	return next, nil
}
