package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"playtube.com/cmd/model"
)

func GetLike(ctx context.Context, userId int64, kind string, targetId int64) (*model.Like, error) {
	var like model.Like
	err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND target_kind = ? AND target_id = ?", userId, kind, targetId).
		First(&like).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "GetLike failed")
	}
	return &like, nil
}

func CreateLike(ctx context.Context, like *model.Like) error {
	if err := DB.WithContext(ctx).Create(like).Error; err != nil {
		return errors.Wrapf(err, "CreateLike failed")
	}
	return nil
}

func DeleteLike(ctx context.Context, likeId int64) error {
	if err := DB.WithContext(ctx).Where("like_id = ?", likeId).Delete(&model.Like{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteLike failed")
	}
	return nil
}

// FlipLike switches an existing row between like and dislike in place.
func FlipLike(ctx context.Context, likeId int64, liked bool) error {
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("like_id = ?", likeId).Update("liked", liked).Error; err != nil {
		return errors.Wrapf(err, "FlipLike failed")
	}
	return nil
}

type EngagementCount struct {
	TargetId int64
	Likes    int64
	Dislikes int64
}

// CountEngagement groups the like table by target and partitions each group
// by the liked flag. Targets with no rows are simply absent from the result.
func CountEngagement(ctx context.Context, kind string, targetIds []int64) (map[int64]EngagementCount, error) {
	counts := make(map[int64]EngagementCount, len(targetIds))
	if len(targetIds) == 0 {
		return counts, nil
	}
	var rows []EngagementCount
	err := DB.WithContext(ctx).Model(&model.Like{}).
		Select("target_id, SUM(liked = true) AS likes, SUM(liked = false) AS dislikes").
		Where("target_kind = ? AND target_id IN (?)", kind, targetIds).
		Group("target_id").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrapf(err, "CountEngagement failed")
	}
	for _, row := range rows {
		counts[row.TargetId] = row
	}
	return counts, nil
}

// GetViewerLikes returns the viewer's own rows among the targets, keyed by
// target id; the value is the liked flag.
func GetViewerLikes(ctx context.Context, userId int64, kind string, targetIds []int64) (map[int64]bool, error) {
	flags := make(map[int64]bool, len(targetIds))
	if userId == 0 || len(targetIds) == 0 {
		return flags, nil
	}
	var likes []*model.Like
	err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND target_kind = ? AND target_id IN (?)", userId, kind, targetIds).
		Find(&likes).Error
	if err != nil {
		return nil, errors.Wrapf(err, "GetViewerLikes failed")
	}
	for _, like := range likes {
		flags[like.TargetId] = like.Liked
	}
	return flags, nil
}

// LikedVideoIds lists ids of videos the user currently likes, newest first.
func LikedVideoIds(ctx context.Context, userId int64) ([]int64, error) {
	var videoIds []int64
	err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND target_kind = ? AND liked = ?", userId, "video", true).
		Order("created_at DESC").
		Pluck("target_id", &videoIds).Error
	if err != nil {
		return nil, errors.Wrapf(err, "LikedVideoIds failed")
	}
	return videoIds, nil
}

// CountVideoLikes sums liked=true rows across all videos of one owner, for
// the channel dashboard.
func CountVideoLikes(ctx context.Context, ownerId int64) (int64, error) {
	var count int64
	err := DB.WithContext(ctx).Model(&model.Like{}).
		Joins("JOIN videos ON videos.video_id = likes.target_id").
		Where("likes.target_kind = ? AND likes.liked = ? AND videos.user_id = ?", "video", true, ownerId).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrapf(err, "CountVideoLikes failed")
	}
	return count, nil
}
