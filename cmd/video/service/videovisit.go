package service

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"

	"playtube.com/cmd/model"
	userdb "playtube.com/cmd/user/dal/db"
	"playtube.com/cmd/video/dal/db"
	"playtube.com/pkg/cache"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/mq"
	"playtube.com/pkg/utils"
)

type VideoVisitService struct {
	ctx      context.Context
	producer *mq.Producer
}

func NewVideoVisitService(ctx context.Context, producer *mq.Producer) *VideoVisitService {
	return &VideoVisitService{ctx: ctx, producer: producer}
}

// Visit records a watch. The increment and the watch-history update travel
// through the queue so the player's progress call stays cheap; the response
// carries the last known count, which may trail the store by one event.
func (s *VideoVisitService) Visit(ctx context.Context, viewerId, videoId int64) (int64, error) {
	video, err := db.FindVideo(ctx, videoId)
	if err != nil {
		return 0, err
	}
	if video == nil {
		return 0, errno.NotFoundErr.WithMessage("Video is not found")
	}

	event := &mq.ViewEvent{
		UserId:    viewerId,
		VideoId:   videoId,
		Timestamp: time.Now().Unix(),
		EventID:   uuid.New().String(),
	}
	if err := s.producer.PublishViewEvent(ctx, event); err != nil {
		// broker down: apply inline so the view is not lost
		hlog.CtxWarnf(ctx, "failed to publish view event, applying inline: %v", err)
		return ApplyViewEvent(ctx, event)
	}

	if count, err := cache.GetVisitCount(ctx, videoId); err == nil {
		return count, nil
	}
	return video.VisitCount, nil
}

// ApplyViewEvent is the consumer side: bump the counter, refresh the cache
// and move the video to the front of the viewer's history.
func ApplyViewEvent(ctx context.Context, event *mq.ViewEvent) (int64, error) {
	count, err := db.IncrementVisit(ctx, event.VideoId)
	if err != nil {
		return 0, err
	}
	cache.SetVisitCount(ctx, event.VideoId, count)

	if event.UserId != 0 {
		record := &model.WatchRecord{
			Id:        utils.GenID(),
			UserId:    event.UserId,
			VideoId:   event.VideoId,
			WatchedAt: time.Unix(event.Timestamp, 0),
		}
		if err := userdb.TouchWatchRecord(ctx, record); err != nil {
			hlog.CtxErrorf(ctx, "failed to touch watch record: %v", err)
		}
	}
	return count, nil
}
