package service

import (
	"context"

	"playtube.com/cmd/model"
	"playtube.com/cmd/user/dal/db"
	"playtube.com/pkg/errno"
)

type WatchHistoryService struct {
	ctx context.Context
}

func NewWatchHistoryService(ctx context.Context) *WatchHistoryService {
	return &WatchHistoryService{ctx: ctx}
}

type HistoryEntry struct {
	*model.Video
	Owner model.UserBrief `json:"owner"`
}

// History lists watched videos most recent first, each at most once.
func (s *WatchHistoryService) History(ctx context.Context, viewerId int64) ([]*HistoryEntry, error) {
	if viewerId == 0 {
		return nil, errno.TokenInvailedErr
	}
	videos, err := db.GetWatchHistory(ctx, viewerId)
	if err != nil {
		return nil, err
	}

	ownerIds := make([]int64, 0, len(videos))
	for _, video := range videos {
		ownerIds = append(ownerIds, video.UserId)
	}
	briefs, err := db.GetUserBriefs(ctx, ownerIds)
	if err != nil {
		return nil, err
	}

	entries := make([]*HistoryEntry, 0, len(videos))
	for _, video := range videos {
		entries = append(entries, &HistoryEntry{Video: video, Owner: briefs[video.UserId]})
	}
	return entries, nil
}

func (s *WatchHistoryService) Clear(ctx context.Context, viewerId int64) error {
	if viewerId == 0 {
		return errno.TokenInvailedErr
	}
	return db.ClearWatchHistory(ctx, viewerId)
}
