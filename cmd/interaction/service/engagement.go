package service

import (
	"context"

	"playtube.com/cmd/interaction/dal/db"
	"playtube.com/pkg/cache"
)

// Engagement is the viewer-relative summary attached to a video, comment or
// post: total counts plus the viewer's own stance. A target nobody has rated
// yields zeros and false flags.
type Engagement struct {
	TotalLikes    int64 `json:"total_likes"`
	TotalDislikes int64 `json:"total_dislikes"`
	IsLiked       bool  `json:"is_liked"`
	IsDisliked    bool  `json:"is_disliked"`
}

// Summaries computes engagement for a batch of targets of one kind. The same
// two queries serve videos, comments and posts; kind only selects the rows.
func Summaries(ctx context.Context, kind string, targetIds []int64, viewerId int64) (map[int64]Engagement, error) {
	result := make(map[int64]Engagement, len(targetIds))
	if len(targetIds) == 0 {
		return result, nil
	}

	counts, err := db.CountEngagement(ctx, kind, targetIds)
	if err != nil {
		return nil, err
	}
	viewerFlags, err := db.GetViewerLikes(ctx, viewerId, kind, targetIds)
	if err != nil {
		return nil, err
	}

	for _, targetId := range targetIds {
		summary := Engagement{}
		if count, ok := counts[targetId]; ok {
			summary.TotalLikes = count.Likes
			summary.TotalDislikes = count.Dislikes
		}
		if liked, ok := viewerFlags[targetId]; ok {
			summary.IsLiked = liked
			summary.IsDisliked = !liked
		}
		result[targetId] = summary
	}
	return result, nil
}

// Summary is the single-target variant. Counts come from the redis counter
// cache when warm; viewer flags always come from the store.
func Summary(ctx context.Context, kind string, targetId, viewerId int64) (Engagement, error) {
	summary := Engagement{}

	likes, dislikes, ok := cache.GetEngagementCounts(ctx, kind, targetId)
	if ok {
		summary.TotalLikes = likes
		summary.TotalDislikes = dislikes
	} else {
		counts, err := db.CountEngagement(ctx, kind, []int64{targetId})
		if err != nil {
			return summary, err
		}
		if count, found := counts[targetId]; found {
			summary.TotalLikes = count.Likes
			summary.TotalDislikes = count.Dislikes
		}
		cache.SetEngagementCounts(ctx, kind, targetId, summary.TotalLikes, summary.TotalDislikes)
	}

	if viewerId != 0 {
		like, err := db.GetLike(ctx, viewerId, kind, targetId)
		if err != nil {
			return summary, err
		}
		if like != nil {
			summary.IsLiked = like.Liked
			summary.IsDisliked = !like.Liked
		}
	}
	return summary, nil
}
