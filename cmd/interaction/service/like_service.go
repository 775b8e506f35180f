package service

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"

	"playtube.com/cmd/interaction/dal/db"
	"playtube.com/cmd/model"
	postdb "playtube.com/cmd/post/dal/db"
	videodb "playtube.com/cmd/video/dal/db"
	"playtube.com/pkg/cache"
	"playtube.com/pkg/constants"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/lock"
	"playtube.com/pkg/mq"
	"playtube.com/pkg/utils"
)

type LikeService struct {
	ctx      context.Context
	producer *mq.Producer
}

func NewLikeService(ctx context.Context, producer *mq.Producer) *LikeService {
	return &LikeService{ctx: ctx, producer: producer}
}

type ToggleResult struct {
	Engagement
}

// targetOwner checks that the target exists and returns its owner.
func targetOwner(ctx context.Context, kind string, targetId int64) (int64, error) {
	switch kind {
	case constants.TargetVideo:
		video, err := videodb.FindVideo(ctx, targetId)
		if err != nil {
			return 0, err
		}
		if video == nil {
			return 0, errno.NotFoundErr.WithMessage("No video found")
		}
		return video.UserId, nil
	case constants.TargetComment:
		comment, err := db.FindComment(ctx, targetId)
		if err != nil {
			return 0, err
		}
		if comment == nil {
			return 0, errno.NotFoundErr.WithMessage("No comment found")
		}
		return comment.UserId, nil
	case constants.TargetPost:
		post, err := postdb.FindPost(ctx, targetId)
		if err != nil {
			return 0, err
		}
		if post == nil {
			return 0, errno.NotFoundErr.WithMessage("No post found")
		}
		return post.UserId, nil
	}
	return 0, errno.RequestErr.WithMessage("Unknown like target")
}

// Toggle applies the tri-state transition for (viewer, target) and returns
// the refreshed engagement summary. The mutex serializes concurrent toggles
// by the same viewer on the same target; counts are recomputed from the
// store afterwards rather than patched incrementally.
func (s *LikeService) Toggle(ctx context.Context, viewerId int64, kind string, targetId int64, wantLike bool) (*ToggleResult, error) {
	if viewerId == 0 {
		return nil, errno.TokenInvailedErr
	}

	ownerId, err := targetOwner(ctx, kind, targetId)
	if err != nil {
		return nil, err
	}

	mutex := lock.ToggleMutex(kind, targetId, viewerId)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, errno.ServiceErr.WithMessage("Busy, please retry")
	}
	defer func() {
		if _, err := mutex.UnlockContext(ctx); err != nil {
			hlog.CtxWarnf(ctx, "failed to release toggle lock: %v", err)
		}
	}()

	current, err := db.GetLike(ctx, viewerId, kind, targetId)
	if err != nil {
		return nil, err
	}

	outcome := ResolveToggle(current != nil, current != nil && current.Liked, wantLike)
	switch outcome.Action {
	case ToggleCreate:
		err = db.CreateLike(ctx, &model.Like{
			LikeId:     utils.GenID(),
			UserId:     viewerId,
			TargetKind: kind,
			TargetId:   targetId,
			Liked:      outcome.Liked,
		})
	case ToggleDelete:
		err = db.DeleteLike(ctx, current.LikeId)
	case ToggleFlip:
		err = db.FlipLike(ctx, current.LikeId, outcome.Liked)
	}
	if err != nil {
		return nil, err
	}

	cache.InvalidateEngagementCounts(ctx, kind, targetId)

	summary, err := Summary(ctx, kind, targetId, viewerId)
	if err != nil {
		return nil, err
	}

	if outcome.IsLiked && viewerId != ownerId {
		event := &mq.LikeEvent{
			UserId:     viewerId,
			OwnerId:    ownerId,
			TargetKind: kind,
			TargetId:   targetId,
			Liked:      true,
			Timestamp:  time.Now().Unix(),
			EventID:    uuid.New().String(),
		}
		if err := s.producer.PublishLikeEvent(ctx, event); err != nil {
			// notification only, the toggle itself already succeeded
			hlog.CtxWarnf(ctx, "failed to publish like event: %v", err)
		}
	}

	return &ToggleResult{Engagement: summary}, nil
}

type LikedVideo struct {
	*model.Video
	Owner model.UserBrief `json:"owner"`
}

// LikedVideos lists the videos the viewer currently likes, newest like first.
// Videos unpublished since the like stay hidden, same as Detail hides them.
func (s *LikeService) LikedVideos(ctx context.Context, viewerId int64) ([]*LikedVideo, error) {
	if viewerId == 0 {
		return nil, errno.TokenInvailedErr
	}
	videoIds, err := db.LikedVideoIds(ctx, viewerId)
	if err != nil {
		return nil, err
	}
	videos, err := videodb.GetVideosByIds(ctx, videoIds)
	if err != nil {
		return nil, err
	}
	ownerIds := make([]int64, 0, len(videos))
	for _, video := range videos {
		ownerIds = append(ownerIds, video.UserId)
	}
	briefs, err := ownerBriefs(ctx, ownerIds)
	if err != nil {
		return nil, err
	}
	return assembleLikedVideos(videoIds, videos, briefs), nil
}

// assembleLikedVideos keeps the like order, drops ids whose video is gone
// and skips unpublished videos.
func assembleLikedVideos(videoIds []int64, videos []*model.Video, briefs map[int64]model.UserBrief) []*LikedVideo {
	byId := make(map[int64]*model.Video, len(videos))
	for _, video := range videos {
		byId[video.VideoId] = video
	}
	result := make([]*LikedVideo, 0, len(videoIds))
	for _, videoId := range videoIds {
		video, ok := byId[videoId]
		if !ok || !video.IsPublished {
			continue
		}
		result = append(result, &LikedVideo{Video: video, Owner: briefs[video.UserId]})
	}
	return result
}
