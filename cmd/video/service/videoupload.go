package service

import (
	"context"
	"os"
	"strings"

	"github.com/cloudwego/hertz/pkg/common/hlog"

	"playtube.com/cmd/model"
	"playtube.com/cmd/video/dal/db"
	"playtube.com/pkg/constants"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/oss"
	"playtube.com/pkg/utils"
)

type VideoUploadService struct {
	ctx context.Context
}

func NewVideoUploadService(ctx context.Context) *VideoUploadService {
	return &VideoUploadService{ctx: ctx}
}

type PublishVideoParam struct {
	UserId        int64
	Title         string
	Description   string
	VideoPath     string // local temp file from the multipart upload
	ThumbnailPath string // optional, one is extracted when absent
}

// Publish uploads the media pair to object storage, probes the duration and
// writes the video row. The video starts published. Temp files are removed
// best effort afterwards; upload failures surface as upstream errors and
// nothing is persisted.
func (s *VideoUploadService) Publish(ctx context.Context, param *PublishVideoParam) (*model.Video, error) {
	if param.UserId == 0 {
		return nil, errno.TokenInvailedErr
	}
	title := strings.TrimSpace(param.Title)
	if title == "" {
		return nil, errno.RequestErr.WithMessage("All fields are required")
	}
	if len(title) > constants.MaxTitleLength {
		return nil, errno.RequestErr.WithMessage("Title too long")
	}
	if param.VideoPath == "" {
		return nil, errno.RequestErr.WithMessage("Video File not found")
	}
	defer cleanupTemp(ctx, param.VideoPath, param.ThumbnailPath)

	duration, err := utils.GetVideoDuration(param.VideoPath)
	if err != nil {
		return nil, errno.RequestErr.WithMessage("Unreadable video file")
	}

	thumbnailPath := param.ThumbnailPath
	if thumbnailPath == "" {
		thumbnailPath, err = utils.GetVideoThumbnail(param.VideoPath, os.TempDir())
		if err != nil {
			return nil, errno.UpstreamErr.WithMessage("Error while generating thumbnail")
		}
		defer cleanupTemp(ctx, thumbnailPath)
	}

	videoId := utils.GenID()
	videoUrl, err := oss.UploadVideo(ctx, param.VideoPath, videoId)
	if err != nil {
		return nil, errno.UpstreamErr.WithMessage("Error while Uploading Video File")
	}
	coverUrl, err := oss.UploadThumbnail(ctx, thumbnailPath, videoId)
	if err != nil {
		return nil, errno.UpstreamErr.WithMessage("Error while uploading thumbnail file")
	}

	video := &model.Video{
		VideoId:     videoId,
		UserId:      param.UserId,
		Title:       title,
		Description: strings.TrimSpace(param.Description),
		VideoUrl:    videoUrl,
		CoverUrl:    coverUrl,
		Duration:    duration,
		IsPublished: true,
	}
	if err := db.InsertVideo(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

func cleanupTemp(ctx context.Context, paths ...string) {
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			hlog.CtxWarnf(ctx, "failed to remove temp file %s: %v", path, err)
		}
	}
}
