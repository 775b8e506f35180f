package cache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"

	"playtube.com/pkg/constants"
)

// Engagement counters are a read-through cache over the like table. They are
// dropped (not patched) after a toggle; the next read recounts from the
// store, so the cache can never drift for long.
const (
	likeCountKey    = "%s:like_count:%d"
	dislikeCountKey = "%s:dislike_count:%d"
	visitCountKey   = "video:visit_count:%d"
)

func GetEngagementCounts(ctx context.Context, kind string, targetId int64) (likes, dislikes int64, ok bool) {
	likeStr, err := rdb.Get(ctx, fmt.Sprintf(likeCountKey, kind, targetId)).Result()
	if err != nil {
		return 0, 0, false
	}
	dislikeStr, err := rdb.Get(ctx, fmt.Sprintf(dislikeCountKey, kind, targetId)).Result()
	if err != nil {
		return 0, 0, false
	}
	likes, _ = strconv.ParseInt(likeStr, 10, 64)
	dislikes, _ = strconv.ParseInt(dislikeStr, 10, 64)
	return likes, dislikes, true
}

func SetEngagementCounts(ctx context.Context, kind string, targetId, likes, dislikes int64) {
	if err := rdb.Set(ctx, fmt.Sprintf(likeCountKey, kind, targetId),
		likes, constants.CounterExpire).Err(); err != nil {
		hlog.CtxWarnf(ctx, "failed to cache like count: %v", err)
		return
	}
	if err := rdb.Set(ctx, fmt.Sprintf(dislikeCountKey, kind, targetId),
		dislikes, constants.CounterExpire).Err(); err != nil {
		hlog.CtxWarnf(ctx, "failed to cache dislike count: %v", err)
	}
}

func InvalidateEngagementCounts(ctx context.Context, kind string, targetId int64) {
	keys := []string{
		fmt.Sprintf(likeCountKey, kind, targetId),
		fmt.Sprintf(dislikeCountKey, kind, targetId),
	}
	if err := rdb.Del(ctx, keys...).Err(); err != nil {
		hlog.CtxWarnf(ctx, "failed to invalidate engagement counters: %v", err)
	}
}

// GetVisitCount returns the cached view counter; redis.Nil means no entry.
func GetVisitCount(ctx context.Context, videoId int64) (int64, error) {
	val, err := rdb.Get(ctx, fmt.Sprintf(visitCountKey, videoId)).Result()
	if err == redis.Nil {
		return 0, err
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(val, 10, 64)
}

func SetVisitCount(ctx context.Context, videoId, count int64) {
	if err := rdb.Set(ctx, fmt.Sprintf(visitCountKey, videoId),
		count, constants.CounterExpire).Err(); err != nil {
		hlog.CtxWarnf(ctx, "failed to cache visit count: %v", err)
	}
}
